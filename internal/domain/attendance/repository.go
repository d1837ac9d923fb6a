package attendance

import "context"

// RecordPolicy selects how the writer treats a re-imported (employee, date).
type RecordPolicy string

const (
	// PolicyAppend stores every processed row as a new record, duplicates
	// included. This matches the historical behavior of the system.
	PolicyAppend RecordPolicy = "append"

	// PolicyUpsert replaces an existing record for the same employee and
	// date instead of duplicating it.
	PolicyUpsert RecordPolicy = "upsert"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Append inserts a new record unconditionally.
	Append(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// UpsertByDate inserts the record or replaces the existing one for the
	// same (employee, date).
	UpsertByDate(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	// ListByEmployee returns one page of an employee's records in append
	// order plus the total count.
	ListByEmployee(ctx context.Context, employeeID string, page, rowsPerPage int) ([]AttendanceRecord, int64, error)
}
