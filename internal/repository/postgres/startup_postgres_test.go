package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

var startupRowColumns = []string{
	"id", "name", "description", "website", "industry", "stage", "founded_year", "logo_url", "visible", "created_at", "updated_at",
}

func TestStartupPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStartupPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()
	s := &model.Startup{ID: "startup-1", Name: "Analytical Engines", Stage: "seed", FoundedYear: 2024, Visible: true, CreatedAt: now, UpdatedAt: now}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO startups").
			WithArgs(s.ID, s.Name, "", "", "", "seed", 2024, "", true, now, now).
			WillReturnRows(sqlmock.NewRows(startupRowColumns).
				AddRow(s.ID, s.Name, "", "", "", "seed", 2024, "", true, now, now))

		got, err := repo.Create(ctx, s)

		require.NoError(t, err)
		assert.Equal(t, s.Name, got.Name)
		assert.Equal(t, 2024, got.FoundedYear)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO startups").
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

		_, err := repo.Create(ctx, s)

		assert.ErrorIs(t, err, repository.ErrConflict)
	})
}

func TestStartupPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM startups WHERE visible = FALSE`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`FROM startups WHERE visible = FALSE ORDER BY founded_year ASC, id ASC LIMIT \$1 OFFSET \$2`).
		WithArgs(5, 0).
		WillReturnRows(sqlmock.NewRows(startupRowColumns).
			AddRow("a", "A", "", "", "", "", 2020, "", false, time.Now(), time.Now()).
			AddRow("b", "B", "", "", "", "", 2021, "", false, time.Now(), time.Now()))

	res, err := NewStartupPostgres(db).List(context.Background(), repository.ListQuery{
		Limit:      5,
		Sort:       "founded_year",
		Visibility: repository.VisibilityHidden,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStartupPostgres_FindByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE lower\(name\) = lower\(\$1\)`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err = NewStartupPostgres(db).FindByName(context.Background(), "ghost")

	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestStartupPostgres_SetVisibilityAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewStartupPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE startups SET visible").WithArgs("startup-1", true).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM startups").WithArgs("startup-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM startups").WithArgs("startup-1").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.SetVisibility(ctx, "startup-1", true))
	assert.NoError(t, repo.Delete(ctx, "startup-1"))
	assert.ErrorIs(t, repo.Delete(ctx, "startup-1"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
