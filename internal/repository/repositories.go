package repository

import (
	"github.com/deppfellow/org-directory/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Departments *DepartmentRepository
	Buildings   *BuildingRepository
	Sections    *SectionRepository
	Divisions   *DivisionRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository on db.
func New(db DBTX) *Repositories {
	return &Repositories{
		Departments: NewDepartmentRepository(db),
		Buildings:   NewBuildingRepository(db),
		Sections:    NewSectionRepository(db),
		Divisions:   NewDivisionRepository(db),
	}
}
