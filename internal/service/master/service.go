package master

import (
	"context"
	"fmt"

	"github.com/staffdesk/hr-backend-go/internal/domain/department"
)

// MasterService serves organization reference data.
type MasterService interface {
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error)
}

type MasterServiceImpl struct {
	department.DepartmentRepository
}

func NewMasterService(departmentRepo department.DepartmentRepository) MasterService {
	return &MasterServiceImpl{DepartmentRepository: departmentRepo}
}

// ListDepartments implements MasterService.
func (m *MasterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := m.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, d.ToResponse())
	}
	return responses, nil
}

// GetDepartment implements MasterService.
func (m *MasterServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := m.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return d.ToResponse(), nil
}
