package handler

import (
	"github.com/deppfellow/org-directory/internal/model"
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/labstack/echo/v4"
)

// SystemHandler answers the liveness and deployment marker routes.
type SystemHandler struct {
	Handler
}

func NewSystemHandler(s *server.Server) *SystemHandler {
	return &SystemHandler{
		Handler: NewHandler(s),
	}
}

func (h *SystemHandler) Root(c echo.Context, _ *model.NoParams) (*model.MessageResponse, error) {
	return &model.MessageResponse{Message: "Success"}, nil
}

func (h *SystemHandler) Deploy(c echo.Context, _ *model.NoParams) (*model.MessageResponse, error) {
	return &model.MessageResponse{Message: h.server.Config.Server.DeployMessage}, nil
}
