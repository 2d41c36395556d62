package postgres

import (
	"context"
	"database/sql"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// HelpRequestPostgres is a PostgreSQL implementation of repository.HelpRequestRepository.
type HelpRequestPostgres struct {
	db *sql.DB
}

func NewHelpRequestPostgres(db *sql.DB) *HelpRequestPostgres {
	return &HelpRequestPostgres{db: db}
}

var _ repository.HelpRequestRepository = (*HelpRequestPostgres)(nil)

const helpRequestColumns = `id, founder_id, skill_id, title, description, status, created_at, updated_at`

var helpRequestSortable = map[string]string{
	"title":      "title",
	"status":     "status",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

func scanHelpRequest(s scanner) (*model.HelpRequest, error) {
	var (
		hr      model.HelpRequest
		skillID sql.NullString
		status  string
	)
	if err := s.Scan(
		&hr.ID,
		&hr.FounderID,
		&skillID,
		&hr.Title,
		&hr.Description,
		&status,
		&hr.CreatedAt,
		&hr.UpdatedAt,
	); err != nil {
		return nil, err
	}
	hr.SkillID = stringPtr(skillID)
	hr.Status = model.HelpRequestStatus(status)
	return &hr, nil
}

func (r *HelpRequestPostgres) Create(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error) {
	const q = `
		INSERT INTO help_requests (id, founder_id, skill_id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + helpRequestColumns
	out, err := scanHelpRequest(r.db.QueryRowContext(ctx, q,
		hr.ID,
		hr.FounderID,
		nullString(hr.SkillID),
		hr.Title,
		hr.Description,
		string(hr.Status),
		hr.CreatedAt,
		hr.UpdatedAt,
	))
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *HelpRequestPostgres) FindByID(ctx context.Context, id string) (*model.HelpRequest, error) {
	q := `SELECT ` + helpRequestColumns + ` FROM help_requests WHERE id = $1`
	return scanHelpRequest(r.db.QueryRowContext(ctx, q, id))
}

// List defaults to newest first.
func (r *HelpRequestPostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.HelpRequest], error) {
	var w whereBuilder
	w.search(lq.Search, "title", "description")
	if lq.Status != "" {
		w.add("status = " + w.arg(string(lq.Status)))
	}
	if lq.FounderID != "" {
		w.add("founder_id = " + w.arg(lq.FounderID))
	}
	if lq.SkillID != "" {
		w.add("skill_id = " + w.arg(lq.SkillID))
	}
	switch lq.Visibility {
	case repository.VisibilityVisible:
		owners := "visible = TRUE"
		if lq.OwnerEmail != "" {
			owners += " OR lower(email) = lower(" + w.arg(lq.OwnerEmail) + ")"
		}
		w.add("founder_id IN (SELECT id FROM founders WHERE " + owners + ")")
	case repository.VisibilityHidden:
		w.add("founder_id IN (SELECT id FROM founders WHERE visible = FALSE)")
	}
	where := w.sql()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM help_requests`+where, w.args...).Scan(&total); err != nil {
		return nil, err
	}

	desc := lq.Desc
	if lq.Sort == "" {
		desc = true
	}
	q := `SELECT ` + helpRequestColumns + ` FROM help_requests` + where +
		orderBy(helpRequestSortable, lq.Sort, "created_at", "id", desc) +
		w.page(lq.Limit, lq.Offset)
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.HelpRequest, 0)
	for rows.Next() {
		hr, err := scanHelpRequest(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *hr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.HelpRequest]{Items: items, Total: total}, nil
}

func (r *HelpRequestPostgres) Update(ctx context.Context, hr *model.HelpRequest) (*model.HelpRequest, error) {
	const q = `
		UPDATE help_requests
		SET skill_id = $2, title = $3, description = $4, status = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + helpRequestColumns
	out, err := scanHelpRequest(r.db.QueryRowContext(ctx, q,
		hr.ID,
		nullString(hr.SkillID),
		hr.Title,
		hr.Description,
		string(hr.Status),
		hr.UpdatedAt,
	))
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *HelpRequestPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM help_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
