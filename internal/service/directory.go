package service

import (
	"context"

	"github.com/deppfellow/org-directory/internal/model"
	"github.com/deppfellow/org-directory/internal/repository"
	"github.com/deppfellow/org-directory/internal/server"
)

// DirectoryService serves the read-only reference data: departments and
// buildings with their floors.
type DirectoryService struct {
	server      *server.Server
	departments *repository.DepartmentRepository
	buildings   *repository.BuildingRepository
}

func NewDirectoryService(s *server.Server, departments *repository.DepartmentRepository, buildings *repository.BuildingRepository) *DirectoryService {
	return &DirectoryService{
		server:      s,
		departments: departments,
		buildings:   buildings,
	}
}

func (s *DirectoryService) ListDepartments(ctx context.Context) (*model.DepartmentsResponse, error) {
	departments, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	return &model.DepartmentsResponse{Departments: departments}, nil
}

func (s *DirectoryService) ListBuildings(ctx context.Context) (*model.BuildingsResponse, error) {
	buildings, err := s.buildings.List(ctx)
	if err != nil {
		return nil, err
	}
	return &model.BuildingsResponse{Buildings: buildings}, nil
}
