package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/deppfellow/org-directory/internal/model"
	"github.com/deppfellow/org-directory/internal/repository"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var divisionCols = []string{"id", "code", "name", "code_section", "del_flag", "created_at", "updated_at"}

func TestDivisionRepository_List(t *testing.T) {
	t.Run("Should list active divisions ordered by id", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		repo := repository.NewDivisionRepository(mockPool)
		now := time.Now()
		var nilTime *time.Time
		mockPool.ExpectQuery(`SELECT (.+) FROM divisions WHERE del_flag = \$1 ORDER BY id ASC`).
			WithArgs(model.ActiveFlag).
			WillReturnRows(mockPool.NewRows(divisionCols).
				AddRow(int64(2), "BE", "Backend", "ENG", model.ActiveFlag, now, nilTime).
				AddRow(int64(5), "FE", "Frontend", "ENG", model.ActiveFlag, now, nilTime))

		divisions, err := repo.List(context.Background())

		require.NoError(t, err)
		require.Len(t, divisions, 2)
		assert.Equal(t, "BE", divisions[0].Code)
		assert.Equal(t, "ENG", divisions[1].CodeSection)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestDivisionRepository_ListBySection(t *testing.T) {
	detailCols := append(append([]string{}, divisionCols...), "section_id", "section_name")

	t.Run("Should join divisions to the active section by code", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		repo := repository.NewDivisionRepository(mockPool)
		now := time.Now()
		var nilTime *time.Time
		mockPool.ExpectQuery(`SELECT (.+) FROM divisions d JOIN sections s ON s.code = d.code_section WHERE s.id = \$1 AND s.del_flag = \$2 AND d.del_flag = \$3 ORDER BY d.id ASC`).
			WithArgs(int64(1), model.ActiveFlag, model.ActiveFlag).
			WillReturnRows(mockPool.NewRows(detailCols).
				AddRow(int64(2), "BE", "Backend", "ENG", model.ActiveFlag, now, nilTime, int64(1), "Engineering"))

		details, err := repo.ListBySection(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Equal(t, int64(2), details[0].ID)
		assert.Equal(t, "Backend", details[0].Name)
		assert.Equal(t, int64(1), details[0].SectionID)
		assert.Equal(t, "Engineering", details[0].SectionName)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should report not found when the section has no active divisions", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		repo := repository.NewDivisionRepository(mockPool)
		mockPool.ExpectQuery(`FROM divisions d JOIN sections s`).
			WithArgs(int64(9), model.ActiveFlag, model.ActiveFlag).
			WillReturnRows(mockPool.NewRows(detailCols))

		details, err := repo.ListBySection(context.Background(), 9)

		assert.Nil(t, details)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestDivisionRepository_Create(t *testing.T) {
	t.Run("Should insert an active division", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		repo := repository.NewDivisionRepository(mockPool)
		now := time.Now()
		var nilTime *time.Time
		mockPool.ExpectQuery(`INSERT INTO divisions (.+) RETURNING id, code, name, code_section, del_flag, created_at, updated_at`).
			WithArgs("BE", "Backend", "ENG", model.ActiveFlag).
			WillReturnRows(mockPool.NewRows(divisionCols).AddRow(int64(3), "BE", "Backend", "ENG", model.ActiveFlag, now, nilTime))

		division, err := repo.Create(context.Background(), model.DivisionInput{Code: "BE", Name: "Backend", CodeSection: "ENG"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), division.ID)
		assert.Equal(t, model.ActiveFlag, division.DelFlag)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestDivisionRepository_Update(t *testing.T) {
	t.Run("Should update the division with the requested id", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		repo := repository.NewDivisionRepository(mockPool)
		now := time.Now()
		mockPool.ExpectQuery(`UPDATE divisions SET code = \$1, name = \$2, code_section = \$3, updated_at = NOW\(\) WHERE id = \$4 AND del_flag = \$5`).
			WithArgs("BE", "Platform", "OPS", int64(3), model.ActiveFlag).
			WillReturnRows(mockPool.NewRows(divisionCols).AddRow(int64(3), "BE", "Platform", "OPS", model.ActiveFlag, now, &now))

		division, err := repo.Update(context.Background(), 3, model.DivisionInput{Code: "BE", Name: "Platform", CodeSection: "OPS"})

		require.NoError(t, err)
		assert.Equal(t, int64(3), division.ID)
		assert.Equal(t, "OPS", division.CodeSection)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("Should report not found for a deleted division", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		repo := repository.NewDivisionRepository(mockPool)
		mockPool.ExpectQuery(`UPDATE divisions`).
			WithArgs("BE", "Platform", "OPS", int64(3), model.ActiveFlag).
			WillReturnRows(mockPool.NewRows(divisionCols))

		_, err = repo.Update(context.Background(), 3, model.DivisionInput{Code: "BE", Name: "Platform", CodeSection: "OPS"})

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestDivisionRepository_Delete(t *testing.T) {
	t.Run("Should soft delete the division", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		repo := repository.NewDivisionRepository(mockPool)
		mockPool.ExpectExec(`UPDATE divisions SET del_flag = \$1`).
			WithArgs(model.DeletedFlag, int64(3), model.ActiveFlag).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.Delete(context.Background(), 3))
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}

func TestRepositories_ConcurrentCreates(t *testing.T) {
	t.Run("Should not interfere when creating a section and a division at once", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()
		mockPool.MatchExpectationsInOrder(false)
		repos := repository.New(mockPool)
		now := time.Now()
		var nilTime *time.Time
		mockPool.ExpectQuery(`INSERT INTO sections`).
			WithArgs("ENG", "Engineering", model.ActiveFlag).
			WillReturnRows(mockPool.NewRows(sectionCols).AddRow(int64(1), "ENG", "Engineering", model.ActiveFlag, now, nilTime))
		mockPool.ExpectQuery(`INSERT INTO divisions`).
			WithArgs("BE", "Backend", "ENG", model.ActiveFlag).
			WillReturnRows(mockPool.NewRows(divisionCols).AddRow(int64(1), "BE", "Backend", "ENG", model.ActiveFlag, now, nilTime))

		var (
			wg          sync.WaitGroup
			section     *model.Section
			division    *model.Division
			sectionErr  error
			divisionErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			section, sectionErr = repos.Sections.Create(context.Background(), model.SectionInput{Code: "ENG", Name: "Engineering"})
		}()
		go func() {
			defer wg.Done()
			division, divisionErr = repos.Divisions.Create(context.Background(), model.DivisionInput{Code: "BE", Name: "Backend", CodeSection: "ENG"})
		}()
		wg.Wait()

		require.NoError(t, sectionErr)
		require.NoError(t, divisionErr)
		assert.Equal(t, "Engineering", section.Name)
		assert.Equal(t, "Backend", division.Name)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})
}
