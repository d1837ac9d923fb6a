package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrInvalidEmployeeID    = errors.New("invalid employee ID")
	ErrUnauthorized         = errors.New("unauthorized to access this employee")
	ErrDepartmentUnresolved = errors.New("employee has no resolved department")
)
