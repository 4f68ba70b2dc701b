package service

import (
	"context"

	"github.com/deppfellow/org-directory/internal/model"
	"github.com/deppfellow/org-directory/internal/repository"
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/rs/zerolog"
)

type SectionService struct {
	server   *server.Server
	sections *repository.SectionRepository
}

func NewSectionService(s *server.Server, sections *repository.SectionRepository) *SectionService {
	return &SectionService{
		server:   s,
		sections: sections,
	}
}

func (s *SectionService) List(ctx context.Context) ([]model.Section, error) {
	return s.sections.List(ctx)
}

func (s *SectionService) Get(ctx context.Context, id int64) (*model.Section, error) {
	return s.sections.GetByID(ctx, id)
}

func (s *SectionService) Create(ctx context.Context, in model.SectionInput) (*model.Section, error) {
	section, err := s.sections.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("section_id", section.ID).
		Str("section_code", section.Code).
		Msg("section created")
	return section, nil
}

func (s *SectionService) Update(ctx context.Context, id int64, in model.SectionInput) (*model.Section, error) {
	section, err := s.sections.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("section_id", id).Msg("section updated")
	return section, nil
}

// Delete soft-deletes the section. Divisions that reference it by code are
// left as they are.
func (s *SectionService) Delete(ctx context.Context, id int64) (*model.MessageResponse, error) {
	if err := s.sections.Delete(ctx, id); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Int64("section_id", id).Msg("section deleted")
	return &model.MessageResponse{Message: deletedMessage("Section", id)}, nil
}
