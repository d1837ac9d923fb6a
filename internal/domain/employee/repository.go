package employee

import "context"

// EmployeeRepository defines data access for employees. GetByCode resolves
// the department office hours in the same query; the import engine depends
// on that join.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode looks an employee up by punch-clock code with the
	// department joined.
	GetByCode(ctx context.Context, code string) (Employee, error)

	// UpdateSalary persists the salary accumulators for one employee.
	UpdateSalary(ctx context.Context, employeeID string, salary Salary) error
}
