package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/hr-backend-go/internal/domain/leave"
	"github.com/staffdesk/hr-backend-go/internal/pkg/database"
)

type leaveApplicationRepository struct {
	db *database.DB
}

func NewLeaveApplicationRepository(db *database.DB) leave.LeaveApplicationRepository {
	return &leaveApplicationRepository{db: db}
}

// Create implements leave.LeaveApplicationRepository.
func (l *leaveApplicationRepository) Create(ctx context.Context, application leave.LeaveApplication) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leave_applications (
			employee_id, leave_type, from_date, to_date, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		application.EmployeeID,
		application.LeaveType,
		application.FromDate,
		application.ToDate,
		application.Reason,
		application.Status,
	).Scan(&application.ID, &application.CreatedAt, &application.UpdatedAt)

	if err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return application, nil
}

// GetByID implements leave.LeaveApplicationRepository.
func (l *leaveApplicationRepository) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT la.id, la.employee_id, la.leave_type, la.from_date, la.to_date,
			   la.reason, la.status, la.created_at, la.updated_at,
			   e.full_name, e.employee_code
		FROM leave_applications la
		JOIN employees e ON e.id = la.employee_id
		WHERE la.id = $1
	`

	var app leave.LeaveApplication
	err := q.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.EmployeeID, &app.LeaveType, &app.FromDate, &app.ToDate,
		&app.Reason, &app.Status, &app.CreatedAt, &app.UpdatedAt,
		&app.EmployeeName, &app.EmployeeCode,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveApplication{}, leave.ErrApplicationNotFound
		}
		return leave.LeaveApplication{}, fmt.Errorf("failed to get leave application by id: %w", err)
	}

	return app, nil
}

// UpdateStatus implements leave.LeaveApplicationRepository.
func (l *leaveApplicationRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leave_applications
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update leave application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}

	return nil
}

// List implements leave.LeaveApplicationRepository.
func (l *leaveApplicationRepository) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveApplication, int64, error) {
	q := GetQuerier(ctx, l.db)

	baseQuery := `
		SELECT la.id, la.employee_id, la.leave_type, la.from_date, la.to_date,
			   la.reason, la.status, la.created_at, la.updated_at,
			   e.full_name, e.employee_code
		FROM leave_applications la
		JOIN employees e ON e.id = la.employee_id
	`
	countQuery := `SELECT COUNT(*) FROM leave_applications la`

	var args []interface{}
	if filter.EmployeeID != nil {
		baseQuery += ` WHERE la.employee_id = $1`
		countQuery += ` WHERE la.employee_id = $1`
		args = append(args, *filter.EmployeeID)
	}

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave applications: %w", err)
	}

	baseQuery += fmt.Sprintf(` ORDER BY la.created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, filter.RowsPerPage, filter.Page*filter.RowsPerPage)

	rows, err := q.Query(ctx, baseQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	var applications []leave.LeaveApplication
	for rows.Next() {
		var app leave.LeaveApplication
		if err := rows.Scan(
			&app.ID, &app.EmployeeID, &app.LeaveType, &app.FromDate, &app.ToDate,
			&app.Reason, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&app.EmployeeName, &app.EmployeeCode,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave application: %w", err)
		}
		applications = append(applications, app)
	}

	return applications, total, rows.Err()
}

// FindApprovedOnDate implements leave.LeaveApplicationRepository.
func (l *leaveApplicationRepository) FindApprovedOnDate(ctx context.Context, employeeID string, date time.Time) (*leave.LeaveApplication, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, leave_type, from_date, to_date,
			   reason, status, created_at, updated_at
		FROM leave_applications
		WHERE employee_id = $1
		  AND from_date <= $2
		  AND to_date >= $2
		  AND status = $3
		ORDER BY created_at
		LIMIT 1
	`

	var app leave.LeaveApplication
	err := q.QueryRow(ctx, query, employeeID, date, leave.StatusApproved).Scan(
		&app.ID, &app.EmployeeID, &app.LeaveType, &app.FromDate, &app.ToDate,
		&app.Reason, &app.Status, &app.CreatedAt, &app.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find approved leave on date: %w", err)
	}

	return &app, nil
}
