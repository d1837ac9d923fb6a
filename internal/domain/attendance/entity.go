package attendance

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/hr-backend-go/internal/pkg/timeofday"
)

// Status enum
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
	StatusHalfDay Status = "Half Day"
)

// EntryExit is one matched punch pair.
type EntryExit struct {
	Entry timeofday.TimeOfDay `json:"entry"`
	Exit  timeofday.TimeOfDay `json:"exit"`
}

// EntryExitTimes is the ordered pair list stored as JSONB.
type EntryExitTimes []EntryExit

// Value implements driver.Valuer for JSONB storage
func (e EntryExitTimes) Value() (driver.Value, error) {
	if e == nil {
		return "[]", nil
	}
	b, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB retrieval
func (e *EntryExitTimes) Scan(value interface{}) error {
	if value == nil {
		*e = EntryExitTimes{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("cannot scan entry/exit times: unsupported type")
	}

	return json.Unmarshal(data, e)
}

// AttendanceRecord is one classified day for one employee. Records are
// created only by the import pipeline and appended, never rewritten, unless
// the upsert policy is selected at the writer boundary.
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	DaySalary  decimal.Decimal
	EntryExit  EntryExitTimes
	CreatedAt  time.Time
}
