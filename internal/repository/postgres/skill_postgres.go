package postgres

import (
	"context"
	"database/sql"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// SkillPostgres is a PostgreSQL implementation of repository.SkillRepository.
type SkillPostgres struct {
	db *sql.DB
}

func NewSkillPostgres(db *sql.DB) *SkillPostgres {
	return &SkillPostgres{db: db}
}

var _ repository.SkillRepository = (*SkillPostgres)(nil)

const skillColumns = `id, name, category, created_at, updated_at`

var skillSortable = map[string]string{
	"name":       "name",
	"category":   "category",
	"created_at": "created_at",
}

func scanSkill(s scanner) (*model.Skill, error) {
	var sk model.Skill
	if err := s.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.CreatedAt, &sk.UpdatedAt); err != nil {
		return nil, err
	}
	return &sk, nil
}

func (r *SkillPostgres) Create(ctx context.Context, s *model.Skill) (*model.Skill, error) {
	const q = `
		INSERT INTO skills (id, name, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + skillColumns
	out, err := scanSkill(r.db.QueryRowContext(ctx, q, s.ID, s.Name, s.Category, s.CreatedAt, s.UpdatedAt))
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *SkillPostgres) FindByID(ctx context.Context, id string) (*model.Skill, error) {
	return scanSkill(r.db.QueryRowContext(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
}

// FindByName matches case-insensitively; the CSV importer resolves skill names through it.
func (r *SkillPostgres) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	return scanSkill(r.db.QueryRowContext(ctx, `SELECT `+skillColumns+` FROM skills WHERE lower(name) = lower($1)`, name))
}

func (r *SkillPostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Skill], error) {
	var w whereBuilder
	w.search(lq.Search, "name", "category")
	where := w.sql()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM skills`+where, w.args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT ` + skillColumns + ` FROM skills` + where +
		orderBy(skillSortable, lq.Sort, "name", "id", lq.Desc) +
		w.page(lq.Limit, lq.Offset)
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Skill]{Items: items, Total: total}, nil
}

func (r *SkillPostgres) Update(ctx context.Context, s *model.Skill) (*model.Skill, error) {
	const q = `
		UPDATE skills SET name = $2, category = $3, updated_at = $4
		WHERE id = $1
		RETURNING ` + skillColumns
	out, err := scanSkill(r.db.QueryRowContext(ctx, q, s.ID, s.Name, s.Category, s.UpdatedAt))
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

func (r *SkillPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	return expectOneRow(res)
}
