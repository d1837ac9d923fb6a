package leave

import (
	"context"
	"time"
)

// ListFilter selects a page of applications, optionally for one employee.
type ListFilter struct {
	EmployeeID  *string
	Page        int
	RowsPerPage int
}

// LeaveApplicationRepository - interface for leave_applications table
type LeaveApplicationRepository interface {
	Create(ctx context.Context, application LeaveApplication) (LeaveApplication, error)
	GetByID(ctx context.Context, id string) (LeaveApplication, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	List(ctx context.Context, filter ListFilter) ([]LeaveApplication, int64, error)

	// FindApprovedOnDate returns the approved application whose inclusive
	// range covers date, or nil when none exists. If the store holds more
	// than one, the first is used.
	FindApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (*LeaveApplication, error)
}
