package router

import (
	"net/http"

	"github.com/deppfellow/org-directory/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerDirectoryRoutes(r *echo.Echo, h *handler.Handlers) {
	d := h.Directory

	r.GET("/departments", handler.Handle(d.Handler, d.ListDepartments, http.StatusOK))
	r.GET("/buildings", handler.Handle(d.Handler, d.ListBuildings, http.StatusOK))
}

func registerSectionRoutes(r *echo.Echo, h *handler.Handlers) {
	s := h.Section

	r.GET("/read/section", handler.Handle(s.Handler, s.List, http.StatusOK))
	r.POST("/create/section", handler.Handle(s.Handler, s.Create, http.StatusOK))
	r.GET("/read/section/:id", handler.Handle(s.Handler, s.Get, http.StatusOK))
	r.PUT("/update/section/:id", handler.Handle(s.Handler, s.Update, http.StatusOK))
	r.DELETE("/delete/section/:id", handler.Handle(s.Handler, s.Delete, http.StatusOK))
}

// The :id of GET /read/division/:id is a section id.
func registerDivisionRoutes(r *echo.Echo, h *handler.Handlers) {
	d := h.Division

	r.GET("/read/division", handler.Handle(d.Handler, d.List, http.StatusOK))
	r.POST("/create/division", handler.Handle(d.Handler, d.Create, http.StatusOK))
	r.GET("/read/division/:id", handler.Handle(d.Handler, d.ListBySection, http.StatusOK))
	r.PUT("/update/division/:id", handler.Handle(d.Handler, d.Update, http.StatusOK))
	r.DELETE("/delete/division/:id", handler.Handle(d.Handler, d.Delete, http.StatusOK))
}
