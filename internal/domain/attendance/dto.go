package attendance

import (
	"time"

	"github.com/staffdesk/hr-backend-go/internal/pkg/validator"
)

// RowFailure describes one row the import pipeline could not apply.
type RowFailure struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportReport summarizes one import run. A failed or skipped row never
// aborts the batch; it is recorded here instead.
type ImportReport struct {
	Processed int          `json:"processed"`
	Skipped   int          `json:"skipped"`
	Failures  []RowFailure `json:"failures,omitempty"`
}

type FetchAttendanceRequest struct {
	EmployeeID  string
	Page        int
	RowsPerPage int
}

func (r FetchAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "Invalid Employee ID"})
	}
	if r.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "Page cannot be negative"})
	}
	if r.RowsPerPage <= 0 || r.RowsPerPage > 100 {
		errs = append(errs, validator.ValidationError{Field: "rows_per_page", Message: "Rows per page must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID        string         `json:"id"`
	Date      time.Time      `json:"date"`
	Status    Status         `json:"status"`
	DaySalary string         `json:"day_salary"`
	EntryExit EntryExitTimes `json:"entry_exit_time"`
}

type ListRecordsResponse struct {
	Attendance []RecordResponse `json:"attendance"`
	Total      int64            `json:"total"`
}

func ToResponse(rec AttendanceRecord) RecordResponse {
	return RecordResponse{
		ID:        rec.ID,
		Date:      rec.Date,
		Status:    rec.Status,
		DaySalary: rec.DaySalary.String(),
		EntryExit: rec.EntryExit,
	}
}
