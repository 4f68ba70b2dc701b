package handler

import (
	"github.com/deppfellow/org-directory/internal/model"
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/deppfellow/org-directory/internal/service"
	"github.com/labstack/echo/v4"
)

const divisionEntity = "Division"

type DivisionHandler struct {
	Handler
	divisions *service.DivisionService
}

func NewDivisionHandler(s *server.Server, divisions *service.DivisionService) *DivisionHandler {
	return &DivisionHandler{
		Handler:   NewHandler(s),
		divisions: divisions,
	}
}

func (h *DivisionHandler) List(c echo.Context, _ *model.NoParams) ([]model.Division, error) {
	divisions, err := h.divisions.List(c.Request().Context())
	if err != nil {
		return nil, mapError(err, divisionEntity)
	}
	return divisions, nil
}

// ListBySection serves GET /read/division/:id, where id is a section id.
func (h *DivisionHandler) ListBySection(c echo.Context, req *model.IDParam) ([]model.DivisionDetail, error) {
	divisions, err := h.divisions.ListBySection(c.Request().Context(), req.ID)
	if err != nil {
		return nil, mapError(err, divisionEntity)
	}
	return divisions, nil
}

func (h *DivisionHandler) Create(c echo.Context, req *model.CreateDivisionRequest) (*model.Division, error) {
	division, err := h.divisions.Create(c.Request().Context(), req.Input())
	if err != nil {
		return nil, mapError(err, divisionEntity)
	}
	return division, nil
}

func (h *DivisionHandler) Update(c echo.Context, req *model.UpdateDivisionRequest) (*model.Division, error) {
	division, err := h.divisions.Update(c.Request().Context(), req.ID, req.Input())
	if err != nil {
		return nil, mapError(err, divisionEntity)
	}
	return division, nil
}

func (h *DivisionHandler) Delete(c echo.Context, req *model.IDParam) (*model.MessageResponse, error) {
	resp, err := h.divisions.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return nil, mapError(err, divisionEntity)
	}
	return resp, nil
}
