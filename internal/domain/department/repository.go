package department

import "context"

// DepartmentRepository - interface for departments table
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
}
