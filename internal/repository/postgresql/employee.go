package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/hr-backend-go/internal/domain/employee"
	"github.com/staffdesk/hr-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.employee_code, e.full_name, e.email, e.department_id,
			   e.base_salary, e.deductions, e.final_amount, e.salary_updated_at,
			   e.created_at, e.updated_at,
			   d.name, d.open_time, d.close_time
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.DepartmentID,
		&emp.Salary.Base, &emp.Salary.Deductions, &emp.Salary.FinalAmount, &emp.Salary.LastUpdated,
		&emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName, &emp.OfficeOpen, &emp.OfficeClose,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByCode implements employee.EmployeeRepository.
func (e *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.employee_code, e.full_name, e.email, e.department_id,
			   e.base_salary, e.deductions, e.final_amount, e.salary_updated_at,
			   e.created_at, e.updated_at,
			   d.name, d.open_time, d.close_time
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.employee_code = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, code).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.DepartmentID,
		&emp.Salary.Base, &emp.Salary.Deductions, &emp.Salary.FinalAmount, &emp.Salary.LastUpdated,
		&emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName, &emp.OfficeOpen, &emp.OfficeClose,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}

// UpdateSalary implements employee.EmployeeRepository.
func (e *employeeRepository) UpdateSalary(ctx context.Context, employeeID string, salary employee.Salary) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET base_salary = $2,
			deductions = $3,
			final_amount = $4,
			salary_updated_at = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		employeeID,
		salary.Base,
		salary.Deductions,
		salary.FinalAmount,
		salary.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
