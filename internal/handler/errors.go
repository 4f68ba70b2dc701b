package handler

import (
	"errors"

	"github.com/deppfellow/org-directory/internal/errs"
	"github.com/deppfellow/org-directory/internal/repository"
	"github.com/deppfellow/org-directory/internal/sqlerr"
)

// mapError translates a service outcome: ErrNotFound becomes a 404 naming
// the entity, everything else is classified by sqlerr.
func mapError(err error, entity string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return errs.NewNotFoundError(entity+" not found", false, nil).WithCause(err)
	}
	return sqlerr.HandleError(err)
}
