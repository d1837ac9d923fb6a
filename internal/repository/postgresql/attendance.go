package postgresql

import (
	"context"
	"fmt"

	"github.com/staffdesk/hr-backend-go/internal/domain/attendance"
	"github.com/staffdesk/hr-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Append implements attendance.AttendanceRepository.
func (a *attendanceRepository) Append(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, status, day_salary, entry_exit
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.Status,
		record.DaySalary,
		record.EntryExit,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to append attendance record: %w", err)
	}

	return record, nil
}

// UpsertByDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpsertByDate(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	// Requires the partial unique index on (employee_id, date) that backs
	// the upsert policy.
	query := `
		INSERT INTO attendance_records (
			employee_id, date, status, day_salary, entry_exit
		) VALUES (
			$1, $2, $3, $4, $5
		)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET status = EXCLUDED.status,
			day_salary = EXCLUDED.day_salary,
			entry_exit = EXCLUDED.entry_exit
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.Status,
		record.DaySalary,
		record.EntryExit,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return record, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, page, rowsPerPage int) ([]attendance.AttendanceRecord, int64, error) {
	q := GetQuerier(ctx, a.db)

	var total int64
	countQuery := `SELECT COUNT(*) FROM attendance_records WHERE employee_id = $1`
	if err := q.QueryRow(ctx, countQuery, employeeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	// Append order: created_at with id as tiebreaker for records written in
	// the same instant.
	query := `
		SELECT id, employee_id, date, status, day_salary, entry_exit, created_at
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY created_at, id
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, employeeID, rowsPerPage, page*rowsPerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status,
			&rec.DaySalary, &rec.EntryExit, &rec.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}
