package repository_test

import (
	"context"
	"testing"

	"github.com/deppfellow/org-directory/internal/model"
	"github.com/deppfellow/org-directory/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingRepository_List(t *testing.T) {
	t.Run("Should aggregate active floors per building", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		repo := repository.NewBuildingRepository(mockPool)
		mockPool.ExpectQuery(`SELECT b.id, b.name, COALESCE\(array_agg\(f.name ORDER BY f.id\) (.+) FROM buildings b LEFT JOIN floors f ON f.building_id = b.id AND f.del_flag = \$1 WHERE b.del_flag = \$2 GROUP BY b.id, b.name ORDER BY b.id ASC`).
			WithArgs(model.ActiveFlag, model.ActiveFlag).
			WillReturnRows(mockPool.NewRows([]string{"id", "name", "floors"}).
				AddRow(int64(1), "HQ", []string{"Ground", "First", "Second"}).
				AddRow(int64(2), "Annex", []string{}))

		buildings, err := repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, buildings, 2)
		assert.Equal(t, []string{"Ground", "First", "Second"}, buildings[0].Floors)
		assert.Equal(t, "Annex", buildings[1].Name)
		assert.NotNil(t, buildings[1].Floors)
		assert.Empty(t, buildings[1].Floors)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should replace a null floor list with an empty one", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		repo := repository.NewBuildingRepository(mockPool)
		var noFloors []string
		mockPool.ExpectQuery(`FROM buildings b`).
			WithArgs(model.ActiveFlag, model.ActiveFlag).
			WillReturnRows(mockPool.NewRows([]string{"id", "name", "floors"}).AddRow(int64(4), "Depot", noFloors))

		buildings, err := repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, buildings, 1)
		assert.Equal(t, []string{}, buildings[0].Floors)
	})
}
