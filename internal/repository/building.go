package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/deppfellow/org-directory/internal/model"
	"github.com/georgysavva/scany/v2/pgxscan"
)

type BuildingRepository struct {
	db DBTX
}

func NewBuildingRepository(db DBTX) *BuildingRepository {
	return &BuildingRepository{db: db}
}

// List returns active buildings ordered by id, each with the names of its
// active floors ordered by floor id. Buildings without floors get an empty list.
func (r *BuildingRepository) List(ctx context.Context) ([]model.Building, error) {
	query, args, err := psql.Select(
		"b.id",
		"b.name",
		"COALESCE(array_agg(f.name ORDER BY f.id) FILTER (WHERE f.id IS NOT NULL), '{}') AS floors",
	).
		From("buildings b").
		LeftJoin("floors f ON f.building_id = b.id AND f.del_flag = ?", model.ActiveFlag).
		Where(squirrel.Eq{"b.del_flag": model.ActiveFlag}).
		GroupBy("b.id", "b.name").
		OrderBy("b.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	buildings := []model.Building{}
	if err := pgxscan.Select(ctx, r.db, &buildings, query, args...); err != nil {
		return nil, fmt.Errorf("scanning buildings: %w", err)
	}

	for i := range buildings {
		if buildings[i].Floors == nil {
			buildings[i].Floors = []string{}
		}
	}
	return buildings, nil
}
