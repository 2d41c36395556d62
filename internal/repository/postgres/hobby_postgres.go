package postgres

import (
	"context"
	"database/sql"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// HobbyPostgres is a PostgreSQL implementation of repository.HobbyRepository.
type HobbyPostgres struct {
	db *sql.DB
}

func NewHobbyPostgres(db *sql.DB) *HobbyPostgres {
	return &HobbyPostgres{db: db}
}

var _ repository.HobbyRepository = (*HobbyPostgres)(nil)

const hobbyColumns = `id, name, created_at, updated_at`

var hobbySortable = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

func scanHobby(s scanner) (*model.Hobby, error) {
	var h model.Hobby
	if err := s.Scan(&h.ID, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HobbyPostgres) Create(ctx context.Context, h *model.Hobby) (*model.Hobby, error) {
	const q = `
		INSERT INTO hobbies (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + hobbyColumns
	out, err := scanHobby(r.db.QueryRowContext(ctx, q, h.ID, h.Name, h.CreatedAt, h.UpdatedAt))
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *HobbyPostgres) FindByID(ctx context.Context, id string) (*model.Hobby, error) {
	return scanHobby(r.db.QueryRowContext(ctx, `SELECT `+hobbyColumns+` FROM hobbies WHERE id = $1`, id))
}

func (r *HobbyPostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Hobby], error) {
	var w whereBuilder
	w.search(lq.Search, "name")
	where := w.sql()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM hobbies`+where, w.args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + hobbyColumns + ` FROM hobbies` + where +
		orderBy(hobbySortable, lq.Sort, "name", "id", lq.Desc) +
		w.page(lq.Limit, lq.Offset)
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Hobby, 0)
	for rows.Next() {
		h, err := scanHobby(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Hobby]{Items: items, Total: total}, nil
}

func (r *HobbyPostgres) Update(ctx context.Context, h *model.Hobby) (*model.Hobby, error) {
	const q = `UPDATE hobbies SET name = $2, updated_at = $3 WHERE id = $1 RETURNING ` + hobbyColumns
	out, err := scanHobby(r.db.QueryRowContext(ctx, q, h.ID, h.Name, h.UpdatedAt))
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *HobbyPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hobbies WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	return expectOneRow(res)
}
