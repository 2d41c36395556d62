package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

func TestSkillPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSkillPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()
	cols := []string{"id", "name", "category", "created_at", "updated_at"}

	t.Run("create", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO skills").
			WithArgs("skill-1", "Go", "engineering", now, now).
			WillReturnRows(sqlmock.NewRows(cols).AddRow("skill-1", "Go", "engineering", now, now))

		got, err := repo.Create(ctx, &model.Skill{ID: "skill-1", Name: "Go", Category: "engineering", CreatedAt: now, UpdatedAt: now})

		require.NoError(t, err)
		assert.Equal(t, "engineering", got.Category)
	})

	t.Run("search list", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM skills WHERE \(name ILIKE \$1 OR category ILIKE \$1\)`).
			WithArgs(`%50\%%`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`ORDER BY name ASC, id ASC LIMIT \$2 OFFSET \$3`).
			WithArgs(`%50\%%`, 20, 0).
			WillReturnRows(sqlmock.NewRows(cols))

		res, err := repo.List(ctx, repository.ListQuery{Limit: 20, Search: "50%"})

		require.NoError(t, err)
		assert.Empty(t, res.Items)
	})

	t.Run("rename to existing", func(t *testing.T) {
		mock.ExpectQuery("UPDATE skills").
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "skills_name_key"})

		_, err := repo.Update(ctx, &model.Skill{ID: "skill-1", Name: "Rust"})

		assert.ErrorIs(t, err, repository.ErrConflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHobbyPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewHobbyPostgres(db)
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM hobbies WHERE id = ").
		WithArgs("hobby-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).AddRow("hobby-1", "Climbing", now, now))
	mock.ExpectExec("DELETE FROM hobbies").WithArgs("hobby-1").WillReturnResult(sqlmock.NewResult(0, 1))

	h, err := repo.FindByID(ctx, "hobby-1")
	require.NoError(t, err)
	assert.Equal(t, "Climbing", h.Name)
	assert.NoError(t, repo.Delete(ctx, "hobby-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
