package postgres

import (
	"context"
	"database/sql"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// StartupPostgres is a PostgreSQL implementation of repository.StartupRepository.
type StartupPostgres struct {
	db *sql.DB
}

// NewStartupPostgres creates a new StartupPostgres repository.
func NewStartupPostgres(db *sql.DB) *StartupPostgres {
	return &StartupPostgres{db: db}
}

var _ repository.StartupRepository = (*StartupPostgres)(nil)

const startupColumns = `id, name, description, website, industry, stage, founded_year, logo_url, visible, created_at, updated_at`

var startupSortable = map[string]string{
	"name":         "name",
	"industry":     "industry",
	"stage":        "stage",
	"founded_year": "founded_year",
	"created_at":   "created_at",
}

func scanStartup(s scanner) (*model.Startup, error) {
	var st model.Startup
	if err := s.Scan(
		&st.ID,
		&st.Name,
		&st.Description,
		&st.Website,
		&st.Industry,
		&st.Stage,
		&st.FoundedYear,
		&st.LogoURL,
		&st.Visible,
		&st.CreatedAt,
		&st.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &st, nil
}

// Create inserts a new startup row and returns the stored record.
func (r *StartupPostgres) Create(ctx context.Context, s *model.Startup) (*model.Startup, error) {
	const q = `
		INSERT INTO startups (id, name, description, website, industry, stage, founded_year, logo_url, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + startupColumns
	out, err := scanStartup(r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Name,
		s.Description,
		s.Website,
		s.Industry,
		s.Stage,
		s.FoundedYear,
		s.LogoURL,
		s.Visible,
		s.CreatedAt,
		s.UpdatedAt,
	))
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// FindByID fetches a single startup by its ID.
func (r *StartupPostgres) FindByID(ctx context.Context, id string) (*model.Startup, error) {
	q := `SELECT ` + startupColumns + ` FROM startups WHERE id = $1`
	return scanStartup(r.db.QueryRowContext(ctx, q, id))
}

// FindByName fetches a startup by name, ignoring case.
func (r *StartupPostgres) FindByName(ctx context.Context, name string) (*model.Startup, error) {
	q := `SELECT ` + startupColumns + ` FROM startups WHERE lower(name) = lower($1)`
	return scanStartup(r.db.QueryRowContext(ctx, q, name))
}

// List returns startups using LIMIT/OFFSET pagination and a total count.
func (r *StartupPostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Startup], error) {
	var w whereBuilder
	w.search(lq.Search, "name", "description", "industry")
	w.visibility(lq.Visibility, "visible")
	where := w.sql()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM startups`+where, w.args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + startupColumns + ` FROM startups` + where +
		orderBy(startupSortable, lq.Sort, "name", "id", lq.Desc) +
		w.page(lq.Limit, lq.Offset)
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Startup, 0)
	for rows.Next() {
		s, err := scanStartup(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Startup]{Items: items, Total: total}, nil
}

// Update overwrites a startup row and returns the stored record.
func (r *StartupPostgres) Update(ctx context.Context, s *model.Startup) (*model.Startup, error) {
	const q = `
		UPDATE startups
		SET name = $2, description = $3, website = $4, industry = $5, stage = $6,
		    founded_year = $7, logo_url = $8, visible = $9, updated_at = $10
		WHERE id = $1
		RETURNING ` + startupColumns
	out, err := scanStartup(r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Name,
		s.Description,
		s.Website,
		s.Industry,
		s.Stage,
		s.FoundedYear,
		s.LogoURL,
		s.Visible,
		s.UpdatedAt,
	))
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// SetVisibility flips the visible flag. It returns sql.ErrNoRows when the startup does not exist.
func (r *StartupPostgres) SetVisibility(ctx context.Context, id string, visible bool) error {
	const q = `UPDATE startups SET visible = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, visible)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// Delete removes a startup. Founders pointing at it are detached by the FK's ON DELETE SET NULL.
func (r *StartupPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM startups WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	return expectOneRow(res)
}
