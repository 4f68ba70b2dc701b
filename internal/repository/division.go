package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/org-directory/internal/model"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var divisionColumns = []string{"id", "code", "name", "code_section", "del_flag", "created_at", "updated_at"}

type DivisionRepository struct {
	db DBTX
}

func NewDivisionRepository(db DBTX) *DivisionRepository {
	return &DivisionRepository{db: db}
}

// List returns active divisions ordered by id.
func (r *DivisionRepository) List(ctx context.Context) ([]model.Division, error) {
	query, args, err := psql.Select(divisionColumns...).
		From("divisions").
		Where(squirrel.Eq{"del_flag": model.ActiveFlag}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	divisions := []model.Division{}
	if err := pgxscan.Select(ctx, r.db, &divisions, query, args...); err != nil {
		return nil, fmt.Errorf("scanning divisions: %w", err)
	}
	return divisions, nil
}

// ListBySection returns the active divisions of the active section with
// sectionID, joined on the section code. No rows is ErrNotFound.
func (r *DivisionRepository) ListBySection(ctx context.Context, sectionID int64) ([]model.DivisionDetail, error) {
	query, args, err := psql.Select(
		"d.id",
		"d.code",
		"d.name",
		"d.code_section",
		"d.del_flag",
		"d.created_at",
		"d.updated_at",
		"s.id AS section_id",
		"s.name AS section_name",
	).
		From("divisions d").
		Join("sections s ON s.code = d.code_section").
		Where(squirrel.Eq{"s.id": sectionID}).
		Where(squirrel.Eq{"s.del_flag": model.ActiveFlag}).
		Where(squirrel.Eq{"d.del_flag": model.ActiveFlag}).
		OrderBy("d.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var divisions []model.DivisionDetail
	if err := pgxscan.Select(ctx, r.db, &divisions, query, args...); err != nil {
		return nil, fmt.Errorf("scanning divisions of section %d: %w", sectionID, err)
	}
	if len(divisions) == 0 {
		return nil, fmt.Errorf("divisions of section %d: %w", sectionID, ErrNotFound)
	}
	return divisions, nil
}

// Create inserts an active division and returns the persisted row.
func (r *DivisionRepository) Create(ctx context.Context, in model.DivisionInput) (*model.Division, error) {
	query, args, err := psql.Insert("divisions").
		Columns("code", "name", "code_section", "del_flag").
		Values(in.Code, in.Name, in.CodeSection, model.ActiveFlag).
		Suffix(returning(divisionColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	var division model.Division
	if err := pgxscan.Get(ctx, r.db, &division, query, args...); err != nil {
		return nil, fmt.Errorf("inserting division: %w", err)
	}
	return &division, nil
}

// Update overwrites code, name and code_section of the active division with
// id, stamps updated_at and returns the persisted row.
func (r *DivisionRepository) Update(ctx context.Context, id int64, in model.DivisionInput) (*model.Division, error) {
	query, args, err := psql.Update("divisions").
		Set("code", in.Code).
		Set("name", in.Name).
		Set("code_section", in.CodeSection).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"del_flag": model.ActiveFlag}).
		Suffix(returning(divisionColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	var division model.Division
	if err := pgxscan.Get(ctx, r.db, &division, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("division %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("updating division %d: %w", id, err)
	}
	return &division, nil
}

// Delete soft-deletes the active division with id.
func (r *DivisionRepository) Delete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.db, "divisions", "division", id)
}
