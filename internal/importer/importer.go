// Package importer parses bulk CSV uploads and tallies what happened to each row.
//
// Files are header-driven: column order is free, header names are matched
// case-insensitively, and unknown columns are ignored. Row numbers count the
// header as row 1, so they match what a spreadsheet shows.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind is the resource a file imports.
type Kind string

const (
	KindFounders Kind = "founders"
	KindStartups Kind = "startups"
)

var (
	ErrUnknownKind   = errors.New("unknown import kind")
	ErrEmptyFile     = errors.New("file has no header row")
	ErrMissingColumn = errors.New("required column missing")
)

// ParseKind validates a kind coming from a URL or flag.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindFounders, KindStartups:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// RequiredColumns lists the header names a file of this kind must carry.
func (k Kind) RequiredColumns() []string {
	switch k {
	case KindFounders:
		return []string{"name", "email"}
	case KindStartups:
		return []string{"name"}
	}
	return nil
}

// Row is one data line of the file.
type Row struct {
	Number int
	fields map[string]string
}

// Has reports whether the file had the column at all, which lets an import leave
// stored values alone when a column is absent.
func (r Row) Has(col string) bool {
	_, ok := r.fields[col]
	return ok
}

// Get returns the trimmed cell value, or "" when the column is absent.
func (r Row) Get(col string) string {
	return r.fields[col]
}

// List splits a semicolon separated cell into trimmed, non-empty values.
func (r Row) List(col string) []string {
	raw := r.fields[col]
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Bool parses a yes/no style cell. Empty cells yield def.
func (r Row) Bool(col string, def bool) (bool, error) {
	raw := strings.ToLower(r.fields[col])
	switch raw {
	case "":
		return def, nil
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// Int parses an integer cell. Empty cells yield 0.
func (r Row) Int(col string) (int, error) {
	raw := r.fields[col]
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// Parse reads the whole file. It fails before returning any row when the
// header lacks a required column; malformed lines become row failures on the
// returned summary instead of aborting the import.
func Parse(r io.Reader, kind Kind) ([]Row, []RowError, error) {
	required := kind.RequiredColumns()
	if required == nil {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	cols := make([]string, len(header))
	present := make(map[string]bool, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		cols[i] = h
		present[h] = true
	}
	for _, req := range required {
		if !present[req] {
			return nil, nil, fmt.Errorf("%w: %s", ErrMissingColumn, req)
		}
	}

	var (
		rows []Row
		bad  []RowError
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				bad = append(bad, RowError{Row: pe.StartLine, Message: pe.Err.Error()})
				continue
			}
			return nil, nil, err
		}
		line, _ := cr.FieldPos(0)
		if blank(rec) {
			continue
		}
		row := Row{Number: line, fields: make(map[string]string, len(cols))}
		for i, col := range cols {
			if col == "" {
				continue
			}
			if i < len(rec) {
				row.fields[col] = strings.TrimSpace(rec[i])
			} else {
				row.fields[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, bad, nil
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
