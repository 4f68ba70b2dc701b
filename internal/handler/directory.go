package handler

import (
	"github.com/deppfellow/org-directory/internal/model"
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/deppfellow/org-directory/internal/service"
	"github.com/deppfellow/org-directory/internal/sqlerr"
	"github.com/labstack/echo/v4"
)

type DirectoryHandler struct {
	Handler
	directory *service.DirectoryService
}

func NewDirectoryHandler(s *server.Server, directory *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		Handler:   NewHandler(s),
		directory: directory,
	}
}

func (h *DirectoryHandler) ListDepartments(c echo.Context, _ *model.NoParams) (*model.DepartmentsResponse, error) {
	resp, err := h.directory.ListDepartments(c.Request().Context())
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return resp, nil
}

func (h *DirectoryHandler) ListBuildings(c echo.Context, _ *model.NoParams) (*model.BuildingsResponse, error) {
	resp, err := h.directory.ListBuildings(c.Request().Context())
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return resp, nil
}
