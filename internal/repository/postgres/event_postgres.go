package postgres

import (
	"context"
	"database/sql"
	"time"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// EventPostgres is a PostgreSQL implementation of repository.EventRepository.
type EventPostgres struct {
	db *sql.DB
}

func NewEventPostgres(db *sql.DB) *EventPostgres {
	return &EventPostgres{db: db}
}

var _ repository.EventRepository = (*EventPostgres)(nil)

const eventColumns = `id, title, description, location, url, starts_at, ends_at, visible, created_at, updated_at`

var eventSortable = map[string]string{
	"title":      "title",
	"starts_at":  "starts_at",
	"created_at": "created_at",
}

func scanEvent(s scanner) (*model.Event, error) {
	var (
		e    model.Event
		ends sql.NullTime
	)
	if err := s.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.URL,
		&e.StartsAt,
		&ends,
		&e.Visible,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if ends.Valid {
		t := ends.Time
		e.EndsAt = &t
	}
	return &e, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func (r *EventPostgres) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	const q = `
		INSERT INTO events (id, title, description, location, url, starts_at, ends_at, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + eventColumns
	out, err := scanEvent(r.db.QueryRowContext(ctx, q,
		e.ID,
		e.Title,
		e.Description,
		e.Location,
		e.URL,
		e.StartsAt,
		nullTime(e.EndsAt),
		e.Visible,
		e.CreatedAt,
		e.UpdatedAt,
	))
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *EventPostgres) FindByID(ctx context.Context, id string) (*model.Event, error) {
	return scanEvent(r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
}

// List defaults to chronological order by start time.
func (r *EventPostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Event], error) {
	var w whereBuilder
	w.search(lq.Search, "title", "description", "location")
	w.visibility(lq.Visibility, "visible")
	if lq.From != nil {
		w.add("COALESCE(ends_at, starts_at) >= " + w.arg(*lq.From))
	}
	if lq.To != nil {
		w.add("starts_at < " + w.arg(*lq.To))
	}
	where := w.sql()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`+where, w.args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + eventColumns + ` FROM events` + where +
		orderBy(eventSortable, lq.Sort, "starts_at", "id", lq.Desc) +
		w.page(lq.Limit, lq.Offset)
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Event]{Items: items, Total: total}, nil
}

func (r *EventPostgres) Update(ctx context.Context, e *model.Event) (*model.Event, error) {
	const q = `
		UPDATE events
		SET title = $2, description = $3, location = $4, url = $5, starts_at = $6,
		    ends_at = $7, visible = $8, updated_at = $9
		WHERE id = $1
		RETURNING ` + eventColumns
	out, err := scanEvent(r.db.QueryRowContext(ctx, q,
		e.ID,
		e.Title,
		e.Description,
		e.Location,
		e.URL,
		e.StartsAt,
		nullTime(e.EndsAt),
		e.Visible,
		e.UpdatedAt,
	))
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *EventPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
