package service

import (
	"github.com/deppfellow/org-directory/internal/repository"
	"github.com/deppfellow/org-directory/internal/server"
)

type Services struct {
	Directory *DirectoryService
	Sections  *SectionService
	Divisions *DivisionService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Directory: NewDirectoryService(s, repos.Departments, repos.Buildings),
		Sections:  NewSectionService(s, repos.Sections),
		Divisions: NewDivisionService(s, repos.Divisions),
	}, nil
}
