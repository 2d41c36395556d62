package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// FounderPostgres is a PostgreSQL implementation of repository.FounderRepository.
// Skill and hobby links live in the founder_skills and founder_hobbies join tables
// and are written in the same transaction as the founder row.
type FounderPostgres struct {
	db *sql.DB
}

// NewFounderPostgres creates a new FounderPostgres repository.
func NewFounderPostgres(db *sql.DB) *FounderPostgres {
	return &FounderPostgres{db: db}
}

var _ repository.FounderRepository = (*FounderPostgres)(nil)

const founderColumns = `
	f.id, f.name, f.email, f.bio, f.location, f.linkedin_url, f.image_url,
	f.startup_id, f.visible, f.created_at, f.updated_at,
	COALESCE((SELECT string_agg(fs.skill_id::text, ',' ORDER BY fs.skill_id::text)
		FROM founder_skills fs WHERE fs.founder_id = f.id), '') AS skill_ids,
	COALESCE((SELECT string_agg(fh.hobby_id::text, ',' ORDER BY fh.hobby_id::text)
		FROM founder_hobbies fh WHERE fh.founder_id = f.id), '') AS hobby_ids`

var founderSortable = map[string]string{
	"name":       "f.name",
	"email":      "f.email",
	"location":   "f.location",
	"created_at": "f.created_at",
	"updated_at": "f.updated_at",
}

func scanFounder(s scanner) (*model.Founder, error) {
	var (
		f         model.Founder
		startupID sql.NullString
		skills    string
		hobbies   string
	)
	if err := s.Scan(
		&f.ID,
		&f.Name,
		&f.Email,
		&f.Bio,
		&f.Location,
		&f.LinkedInURL,
		&f.ImageURL,
		&startupID,
		&f.Visible,
		&f.CreatedAt,
		&f.UpdatedAt,
		&skills,
		&hobbies,
	); err != nil {
		return nil, err
	}
	f.StartupID = stringPtr(startupID)
	f.SkillIDs = splitIDs(skills)
	f.HobbyIDs = splitIDs(hobbies)
	return &f, nil
}

// Create inserts the founder and its links, then returns the stored record.
func (r *FounderPostgres) Create(ctx context.Context, f *model.Founder) (*model.Founder, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	const q = `
		INSERT INTO founders (id, name, email, bio, location, linkedin_url, image_url, startup_id, visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	if _, err := tx.ExecContext(ctx, q,
		f.ID,
		f.Name,
		f.Email,
		f.Bio,
		f.Location,
		f.LinkedInURL,
		f.ImageURL,
		nullString(f.StartupID),
		f.Visible,
		f.CreatedAt,
		f.UpdatedAt,
	); err != nil {
		return nil, classify(err)
	}
	if err := writeLinks(ctx, tx, f); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, f.ID)
}

// FindByID fetches a single founder by its ID.
func (r *FounderPostgres) FindByID(ctx context.Context, id string) (*model.Founder, error) {
	q := `SELECT` + founderColumns + ` FROM founders f WHERE f.id = $1`
	return scanFounder(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches a founder by email, ignoring case.
func (r *FounderPostgres) FindByEmail(ctx context.Context, email string) (*model.Founder, error) {
	q := `SELECT` + founderColumns + ` FROM founders f WHERE lower(f.email) = lower($1)`
	return scanFounder(r.db.QueryRowContext(ctx, q, email))
}

// List returns founders matching the query using LIMIT/OFFSET pagination and a total count.
func (r *FounderPostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Founder], error) {
	var w whereBuilder
	w.search(lq.Search, "f.name", "f.email", "f.bio", "f.location")
	w.visibility(lq.Visibility, "f.visible")
	if lq.StartupID != "" {
		w.add("f.startup_id = " + w.arg(lq.StartupID))
	}
	if lq.SkillID != "" {
		w.add("EXISTS (SELECT 1 FROM founder_skills fs WHERE fs.founder_id = f.id AND fs.skill_id = " + w.arg(lq.SkillID) + ")")
	}
	if lq.HobbyID != "" {
		w.add("EXISTS (SELECT 1 FROM founder_hobbies fh WHERE fh.founder_id = f.id AND fh.hobby_id = " + w.arg(lq.HobbyID) + ")")
	}
	where := w.sql()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM founders f`+where, w.args...).Scan(&total); err != nil {
		return nil, err
	}

	q := `SELECT` + founderColumns + ` FROM founders f` + where +
		orderBy(founderSortable, lq.Sort, "name", "f.id", lq.Desc) +
		w.page(lq.Limit, lq.Offset)
	rows, err := r.db.QueryContext(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Founder, 0)
	for rows.Next() {
		f, err := scanFounder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Founder]{
		Items: items,
		Total: total,
	}, nil
}

// Update overwrites the founder row and replaces its links.
func (r *FounderPostgres) Update(ctx context.Context, f *model.Founder) (*model.Founder, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer rollback(tx)

	const q = `
		UPDATE founders
		SET name = $2, email = $3, bio = $4, location = $5, linkedin_url = $6,
		    image_url = $7, startup_id = $8, visible = $9, updated_at = $10
		WHERE id = $1
	`
	res, err := tx.ExecContext(ctx, q,
		f.ID,
		f.Name,
		f.Email,
		f.Bio,
		f.Location,
		f.LinkedInURL,
		f.ImageURL,
		nullString(f.StartupID),
		f.Visible,
		f.UpdatedAt,
	)
	if err != nil {
		return nil, classify(err)
	}
	if err := expectOneRow(res); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM founder_skills WHERE founder_id = $1`, f.ID); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM founder_hobbies WHERE founder_id = $1`, f.ID); err != nil {
		return nil, err
	}
	if err := writeLinks(ctx, tx, f); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, f.ID)
}

// SetVisibility flips the visible flag. It returns sql.ErrNoRows when the founder does not exist.
func (r *FounderPostgres) SetVisibility(ctx context.Context, id string, visible bool) error {
	const q = `UPDATE founders SET visible = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, visible)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// Delete removes a founder; links cascade. It returns sql.ErrNoRows when nothing was deleted.
func (r *FounderPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM founders WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	return expectOneRow(res)
}

func writeLinks(ctx context.Context, tx *sql.Tx, f *model.Founder) error {
	for _, sid := range f.SkillIDs {
		const q = `INSERT INTO founder_skills (founder_id, skill_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := tx.ExecContext(ctx, q, f.ID, sid); err != nil {
			return fmt.Errorf("link skill %s: %w", sid, classify(err))
		}
	}
	for _, hid := range f.HobbyIDs {
		const q = `INSERT INTO founder_hobbies (founder_id, hobby_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := tx.ExecContext(ctx, q, f.ID, hid); err != nil {
			return fmt.Errorf("link hobby %s: %w", hid, classify(err))
		}
	}
	return nil
}
