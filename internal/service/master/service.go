package master

import (
	"context"
	"fmt"

	"github.com/staffhub-hr/workforce-backend-go/internal/domain/master/department"
)

// MasterService groups organization master-data operations.
type MasterService interface {
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id string) error
}

type MasterServiceImpl struct {
	department.DepartmentRepository
}

func NewMasterService(departmentRepository department.DepartmentRepository) MasterService {
	return &MasterServiceImpl{DepartmentRepository: departmentRepository}
}

// CreateDepartment implements MasterService.
func (s *MasterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.DepartmentResponse{
		ID:       created.ID,
		Name:     created.Name,
		IsActive: created.IsActive,
	}, nil
}

// ListDepartments implements MasterService.
func (s *MasterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.DepartmentResponse{
			ID:       d.ID,
			Name:     d.Name,
			IsActive: d.IsActive,
		})
	}
	return responses, nil
}

// UpdateDepartment implements MasterService.
func (s *MasterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.DepartmentRepository.Update(ctx, req)
}

// DeleteDepartment implements MasterService.
func (s *MasterServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.DepartmentRepository.Delete(ctx, id)
}
