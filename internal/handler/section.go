package handler

import (
	"github.com/deppfellow/org-directory/internal/model"
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/deppfellow/org-directory/internal/service"
	"github.com/labstack/echo/v4"
)

const sectionEntity = "Section"

type SectionHandler struct {
	Handler
	sections *service.SectionService
}

func NewSectionHandler(s *server.Server, sections *service.SectionService) *SectionHandler {
	return &SectionHandler{
		Handler:  NewHandler(s),
		sections: sections,
	}
}

func (h *SectionHandler) List(c echo.Context, _ *model.NoParams) ([]model.Section, error) {
	sections, err := h.sections.List(c.Request().Context())
	if err != nil {
		return nil, mapError(err, sectionEntity)
	}
	return sections, nil
}

func (h *SectionHandler) Get(c echo.Context, req *model.IDParam) (*model.Section, error) {
	section, err := h.sections.Get(c.Request().Context(), req.ID)
	if err != nil {
		return nil, mapError(err, sectionEntity)
	}
	return section, nil
}

func (h *SectionHandler) Create(c echo.Context, req *model.CreateSectionRequest) (*model.Section, error) {
	section, err := h.sections.Create(c.Request().Context(), req.Input())
	if err != nil {
		return nil, mapError(err, sectionEntity)
	}
	return section, nil
}

func (h *SectionHandler) Update(c echo.Context, req *model.UpdateSectionRequest) (*model.Section, error) {
	section, err := h.sections.Update(c.Request().Context(), req.ID, req.Input())
	if err != nil {
		return nil, mapError(err, sectionEntity)
	}
	return section, nil
}

func (h *SectionHandler) Delete(c echo.Context, req *model.IDParam) (*model.MessageResponse, error) {
	resp, err := h.sections.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return nil, mapError(err, sectionEntity)
	}
	return resp, nil
}
