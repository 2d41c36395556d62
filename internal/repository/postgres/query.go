package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"founderhub/internal/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// whereBuilder collects WHERE clauses with numbered placeholders.
type whereBuilder struct {
	clauses []string
	args    []any
}

// arg registers v and returns its placeholder ($1, $2, ...).
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) add(clause string) {
	w.clauses = append(w.clauses, clause)
}

// search adds an ILIKE match of term against any of the given columns.
func (w *whereBuilder) search(term string, cols ...string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	p := w.arg("%" + escapeLike(term) + "%")
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = c + " ILIKE " + p
	}
	w.add("(" + strings.Join(parts, " OR ") + ")")
}

func (w *whereBuilder) visibility(v repository.Visibility, col string) {
	switch v {
	case repository.VisibilityVisible:
		w.add(col + " = TRUE")
	case repository.VisibilityHidden:
		w.add(col + " = FALSE")
	}
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// page appends LIMIT/OFFSET placeholders and returns the clause.
func (w *whereBuilder) page(limit, offset int) string {
	return fmt.Sprintf(" LIMIT %s OFFSET %s", w.arg(limit), w.arg(offset))
}

// orderBy resolves an API sort field through a column whitelist.
// The id column is always appended as a tiebreaker so pages are stable.
func orderBy(sortable map[string]string, field, fallback, idCol string, desc bool) string {
	col, ok := sortable[field]
	if !ok {
		col = sortable[fallback]
	}
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, %s %s", col, dir, idCol, dir)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// classify maps driver errors onto repository sentinels.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", repository.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", repository.ErrInvalidReference, pgErr.ConstraintName)
		}
	}
	return err
}

// expectOneRow turns an exec result that touched nothing into sql.ErrNoRows.
func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func nullString(p *string) sql.NullString {
	if p == nil || *p == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// splitIDs turns a string_agg result back into a slice. Empty input yields an empty, non-nil slice.
func splitIDs(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

// rollback is deferred after BeginTx; it is a no-op once the tx committed.
func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}
