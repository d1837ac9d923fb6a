package leave

import "time"

// LeaveType enum
type LeaveType string

const (
	LeaveTypeSick     LeaveType = "Sick Leave"
	LeaveTypePersonal LeaveType = "Personal Leave"
	LeaveTypeOthers   LeaveType = "Others"
)

// Paid reports whether a day on this leave type is credited a full day's
// salary. Only sick leave is paid.
func (t LeaveType) Paid() bool {
	return t == LeaveTypeSick
}

// Status enum
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// LeaveApplication - a request for leave over an inclusive date range.
// Only Approved applications participate in attendance classification.
type LeaveApplication struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	FromDate   time.Time
	ToDate     time.Time
	Reason     string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// Covers reports whether date falls inside the application's inclusive range.
func (l LeaveApplication) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(l.FromDate.Truncate(24*time.Hour)) && !d.After(l.ToDate.Truncate(24*time.Hour))
}
