package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestEnsureMigrated(t *testing.T) {
	ctx := context.Background()

	t.Run("skips when schema exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		core, logs := observer.New(zap.DebugLevel)
		mock.ExpectQuery(`SELECT to_regclass\('public.founders'\) IS NOT NULL`).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		require.NoError(t, EnsureMigrated(ctx, db, zap.New(core), "db.local"))
		assert.Equal(t, 1, logs.FilterMessage("db_migration_skip").Len())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("runs every step in order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		for range steps {
			mock.ExpectExec(".+").WillReturnResult(sqlmock.NewResult(0, 0))
		}

		core, logs := observer.New(zap.DebugLevel)
		require.NoError(t, EnsureMigrated(ctx, db, zap.New(core), "db.local"))
		assert.Equal(t, len(steps), logs.FilterMessage("db_migration_step").Len())
		assert.Equal(t, 1, logs.FilterMessage("db_migration_success").Len())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops at failing step", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("CREATE EXTENSION").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS startups").WillReturnError(errors.New("permission denied"))

		err = EnsureMigrated(ctx, db, zap.NewNop(), "db.local")

		assert.ErrorContains(t, err, "migration step create_table_startups failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sentinel check error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT to_regclass").WillReturnError(errors.New("connection reset"))

		err = EnsureMigrated(ctx, db, zap.NewNop(), "db.local")
		assert.ErrorContains(t, err, "failed to check sentinel table")
	})
}

func TestStepsReferenceTablesAfterCreation(t *testing.T) {
	created := map[string]int{}
	for i, s := range steps {
		created[s.Name] = i
	}
	assert.Less(t, created["create_table_startups"], created["create_table_founders"])
	assert.Less(t, created["create_table_founders"], created["create_table_founder_skills"])
	assert.Less(t, created["create_table_skills"], created["create_table_founder_skills"])
	assert.Less(t, created["create_table_founders"], created["create_table_help_requests"])
}
