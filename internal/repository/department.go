package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/org-directory/internal/model"
	"github.com/georgysavva/scany/v2/pgxscan"
)

type DepartmentRepository struct {
	db DBTX
}

func NewDepartmentRepository(db DBTX) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// List returns active departments ordered by id.
func (r *DepartmentRepository) List(ctx context.Context) ([]model.Department, error) {
	query, args, err := psql.Select("id", "name", "code", "del_flag").
		From("departments").
		Where(squirrel.Eq{"del_flag": model.ActiveFlag}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	departments := []model.Department{}
	if err := pgxscan.Select(ctx, r.db, &departments, query, args...); err != nil {
		return nil, fmt.Errorf("scanning departments: %w", err)
	}
	return departments, nil
}
