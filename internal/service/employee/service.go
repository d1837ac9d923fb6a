package employee

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/hr-backend-go/internal/domain/employee"
	"github.com/staffdesk/hr-backend-go/internal/pkg/validator"
)

type EmployeeService interface {
	// Get returns one employee profile; admins see everyone, employees
	// only themselves.
	Get(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{EmployeeRepository: employeeRepo}
}

// Get implements EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	if !validator.IsValidUUID(id) {
		return employee.EmployeeResponse{}, employee.ErrInvalidEmployeeID
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	isAdmin, _ := claims["is_admin"].(bool)
	if !isAdmin {
		employeeID, _ := claims["employee_id"].(string)
		if employeeID != id {
			return employee.EmployeeResponse{}, employee.ErrUnauthorized
		}
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}
