package department

import (
	"time"

	"github.com/staffdesk/hr-backend-go/internal/pkg/timeofday"
)

// Department carries the office hours the attendance engine measures
// presence against. Open and Close are wall-clock values; the calendar
// date they are stored on is meaningless.
type Department struct {
	ID        string
	Name      string
	Open      timeofday.TimeOfDay
	Close     timeofday.TimeOfDay
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the office window for presence calculations.
func (d Department) Window() timeofday.Window {
	return timeofday.Window{Open: d.Open, Close: d.Close}
}
