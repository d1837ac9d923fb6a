package notification

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Payload carries the references a notification points at, stored as JSONB.
type Payload struct {
	ApplicationID string `json:"application_id,omitempty"`
	EmployeeID    string `json:"employee_id,omitempty"`
}

// Value implements driver.Valuer for JSONB storage
func (p Payload) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSONB retrieval
func (p *Payload) Scan(value interface{}) error {
	if value == nil {
		*p = Payload{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("cannot scan notification payload: unsupported type")
	}

	return json.Unmarshal(data, p)
}

type Notification struct {
	ID         string
	EmployeeID string
	Message    string
	Payload    Payload
	IsRead     bool
	CreatedAt  time.Time
}
