package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

var eventRowColumns = []string{"id", "title", "description", "location", "url", "starts_at", "ends_at", "visible", "created_at", "updated_at"}

func TestEventPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2026, 10, 20, 18, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	e := &model.Event{ID: "event-1", Title: "Demo night", StartsAt: start, EndsAt: &end, Visible: true, CreatedAt: start, UpdatedAt: start}

	mock.ExpectQuery("INSERT INTO events").
		WithArgs("event-1", "Demo night", "", "", "", start, end, true, start, start).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow("event-1", "Demo night", "", "", "", start, end, true, start, start))

	got, err := NewEventPostgres(db).Create(context.Background(), e)

	require.NoError(t, err)
	require.NotNil(t, got.EndsAt)
	assert.True(t, got.EndsAt.Equal(end))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventPostgres_ListWindow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events WHERE visible = TRUE AND COALESCE\(ends_at, starts_at\) >= \$1 AND starts_at < \$2`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`ORDER BY starts_at ASC, id ASC LIMIT \$3 OFFSET \$4`).
		WithArgs(from, to, 100, 0).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).
			AddRow("event-1", "Demo night", "", "", "", from, nil, true, from, from))

	res, err := NewEventPostgres(db).List(context.Background(), repository.ListQuery{
		Limit:      100,
		Visibility: repository.VisibilityVisible,
		From:       &from,
		To:         &to,
	})

	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Nil(t, res.Items[0].EndsAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
