package attendance

import (
	"context"
	"io"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ImportPunchExport runs the import pipeline over one CSV punch-clock
	// export. Row-level failures are isolated and reported; only an
	// unreadable stream fails the whole call.
	ImportPunchExport(ctx context.Context, r io.Reader) (ImportReport, error)

	// GetEmployeeAttendance returns one page of an employee's history in
	// append order.
	GetEmployeeAttendance(ctx context.Context, req FetchAttendanceRequest) (ListRecordsResponse, error)
}
