package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/org-directory/internal/model"
	"github.com/georgysavva/scany/v2/pgxscan"
)

var sectionColumns = []string{"id", "code", "name", "del_flag", "created_at", "updated_at"}

type SectionRepository struct {
	db DBTX
}

func NewSectionRepository(db DBTX) *SectionRepository {
	return &SectionRepository{db: db}
}

// List returns active sections ordered by id.
func (r *SectionRepository) List(ctx context.Context) ([]model.Section, error) {
	query, args, err := psql.Select(sectionColumns...).
		From("sections").
		Where(squirrel.Eq{"del_flag": model.ActiveFlag}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	sections := []model.Section{}
	if err := pgxscan.Select(ctx, r.db, &sections, query, args...); err != nil {
		return nil, fmt.Errorf("scanning sections: %w", err)
	}
	return sections, nil
}

// GetByID returns the active section with id.
func (r *SectionRepository) GetByID(ctx context.Context, id int64) (*model.Section, error) {
	query, args, err := psql.Select(sectionColumns...).
		From("sections").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"del_flag": model.ActiveFlag}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	return r.getOne(ctx, id, query, args)
}

// Create inserts an active section and returns the persisted row.
func (r *SectionRepository) Create(ctx context.Context, in model.SectionInput) (*model.Section, error) {
	query, args, err := psql.Insert("sections").
		Columns("code", "name", "del_flag").
		Values(in.Code, in.Name, model.ActiveFlag).
		Suffix(returning(sectionColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	var section model.Section
	if err := pgxscan.Get(ctx, r.db, &section, query, args...); err != nil {
		return nil, fmt.Errorf("inserting section: %w", err)
	}
	return &section, nil
}

// Update overwrites code and name of the active section with id, stamps
// updated_at and returns the persisted row. created_at is left untouched.
func (r *SectionRepository) Update(ctx context.Context, id int64, in model.SectionInput) (*model.Section, error) {
	query, args, err := psql.Update("sections").
		Set("code", in.Code).
		Set("name", in.Name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"del_flag": model.ActiveFlag}).
		Suffix(returning(sectionColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building update query: %w", err)
	}

	return r.getOne(ctx, id, query, args)
}

// Delete soft-deletes the active section with id.
func (r *SectionRepository) Delete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.db, "sections", "section", id)
}

func (r *SectionRepository) getOne(ctx context.Context, id int64, query string, args []any) (*model.Section, error) {
	var section model.Section
	if err := pgxscan.Get(ctx, r.db, &section, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("section %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning section %d: %w", id, err)
	}
	return &section, nil
}

// softDelete flips del_flag of one active row in table. Zero affected rows
// means the row is absent or already deleted.
func softDelete(ctx context.Context, db DBTX, table, entity string, id int64) error {
	query, args, err := psql.Update(table).
		Set("del_flag", model.DeletedFlag).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"del_flag": model.ActiveFlag}).
		ToSql()
	if err != nil {
		return fmt.Errorf("building update query: %w", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting %s %d: %w", entity, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return nil
}
