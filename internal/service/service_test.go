package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/org-directory/internal/model"
	"github.com/deppfellow/org-directory/internal/repository"
	"github.com/deppfellow/org-directory/internal/server"
	"github.com/deppfellow/org-directory/internal/service"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(t *testing.T) (*service.Services, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	services, err := service.NewService(&server.Server{}, repository.New(mockPool))
	require.NoError(t, err)
	return services, mockPool
}

func TestDirectoryService(t *testing.T) {
	t.Run("Should wrap departments in their response envelope", func(t *testing.T) {
		services, mockPool := newServices(t)
		mockPool.ExpectQuery(`FROM departments`).
			WithArgs(model.ActiveFlag).
			WillReturnRows(mockPool.NewRows([]string{"id", "name", "code", "del_flag"}).
				AddRow(int64(1), "Finance", "FIN", model.ActiveFlag))

		resp, err := services.Directory.ListDepartments(context.Background())

		require.NoError(t, err)
		require.Len(t, resp.Departments, 1)
		assert.Equal(t, "FIN", resp.Departments[0].Code)
	})

	t.Run("Should wrap buildings in their response envelope", func(t *testing.T) {
		services, mockPool := newServices(t)
		mockPool.ExpectQuery(`FROM buildings b`).
			WithArgs(model.ActiveFlag, model.ActiveFlag).
			WillReturnRows(mockPool.NewRows([]string{"id", "name", "floors"}))

		resp, err := services.Directory.ListBuildings(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, resp.Buildings)
		assert.Empty(t, resp.Buildings)
	})
}

func TestSectionService_Delete(t *testing.T) {
	t.Run("Should confirm the deleted id", func(t *testing.T) {
		services, mockPool := newServices(t)
		mockPool.ExpectExec(`UPDATE sections SET del_flag`).
			WithArgs(model.DeletedFlag, int64(12), model.ActiveFlag).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		resp, err := services.Sections.Delete(context.Background(), 12)

		require.NoError(t, err)
		assert.Equal(t, "Section 12 deleted", resp.Message)
	})

	t.Run("Should pass not found through", func(t *testing.T) {
		services, mockPool := newServices(t)
		mockPool.ExpectExec(`UPDATE sections SET del_flag`).
			WithArgs(model.DeletedFlag, int64(12), model.ActiveFlag).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		resp, err := services.Sections.Delete(context.Background(), 12)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestDivisionService(t *testing.T) {
	t.Run("Should create a division", func(t *testing.T) {
		services, mockPool := newServices(t)
		var nilTime *time.Time
		mockPool.ExpectQuery(`INSERT INTO divisions`).
			WithArgs("BE", "Backend", "ENG", model.ActiveFlag).
			WillReturnRows(mockPool.NewRows([]string{"id", "code", "name", "code_section", "del_flag", "created_at", "updated_at"}).
				AddRow(int64(8), "BE", "Backend", "ENG", model.ActiveFlag, time.Now(), nilTime))

		division, err := services.Divisions.Create(context.Background(), model.DivisionInput{Code: "BE", Name: "Backend", CodeSection: "ENG"})

		require.NoError(t, err)
		assert.Equal(t, int64(8), division.ID)
	})

	t.Run("Should confirm division deletion", func(t *testing.T) {
		services, mockPool := newServices(t)
		mockPool.ExpectExec(`UPDATE divisions SET del_flag`).
			WithArgs(model.DeletedFlag, int64(8), model.ActiveFlag).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		resp, err := services.Divisions.Delete(context.Background(), 8)

		require.NoError(t, err)
		assert.Equal(t, "Division 8 deleted", resp.Message)
	})
}
