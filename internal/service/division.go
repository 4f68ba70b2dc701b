package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/org-directory/internal/model"
	"github.com/deppfellow/org-directory/internal/repository"
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/rs/zerolog"
)

type DivisionService struct {
	server    *server.Server
	divisions *repository.DivisionRepository
}

func NewDivisionService(s *server.Server, divisions *repository.DivisionRepository) *DivisionService {
	return &DivisionService{
		server:    s,
		divisions: divisions,
	}
}

func (s *DivisionService) List(ctx context.Context) ([]model.Division, error) {
	return s.divisions.List(ctx)
}

// ListBySection returns the active divisions of the active section with
// sectionID, each with the section's id and name.
func (s *DivisionService) ListBySection(ctx context.Context, sectionID int64) ([]model.DivisionDetail, error) {
	return s.divisions.ListBySection(ctx, sectionID)
}

func (s *DivisionService) Create(ctx context.Context, in model.DivisionInput) (*model.Division, error) {
	division, err := s.divisions.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("division_id", division.ID).
		Str("code_section", division.CodeSection).
		Msg("division created")
	return division, nil
}

func (s *DivisionService) Update(ctx context.Context, id int64, in model.DivisionInput) (*model.Division, error) {
	division, err := s.divisions.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("division_id", id).Msg("division updated")
	return division, nil
}

func (s *DivisionService) Delete(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if err := s.divisions.Delete(ctx, id); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("division_id", id).Msg("division deleted")
	return &model.MessageResponse{Message: deletedMessage("Division", id)}, nil
}

func deletedMessage(entity string, id int64) string {
	return fmt.Sprintf("%s %d deleted", entity, id)
}
