package handler

import (
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/deppfellow/org-directory/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	System    *SystemHandler
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Directory *DirectoryHandler
	Section   *SectionHandler
	Division  *DivisionHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		System:    NewSystemHandler(s),
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Directory: NewDirectoryHandler(s, services.Directory),
		Section:   NewSectionHandler(s, services.Sections),
		Division:  NewDivisionHandler(s, services.Divisions),
	}
}
