package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"founderhub/internal/importer"
	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// ImportService reconciles bulk CSV uploads against the directory.
type ImportService interface {
	// Import parses r as a CSV file of kind and creates or updates one record per row.
	// Rows matching an existing record (founders by email, startups by name) update it
	// unless nothing changed, in which case they are skipped; repeated keys within one
	// file are skipped too. With dryRun nothing is written but the summary is the same.
	// Only header problems fail the whole call; row problems land in the summary.
	Import(ctx context.Context, kind importer.Kind, r io.Reader, dryRun bool) (*importer.Summary, error)
}

type importService struct {
	founders repository.FounderRepository
	startups repository.StartupRepository
	skills   repository.SkillRepository
	log      *zap.Logger
}

func NewImportService(founders repository.FounderRepository, startups repository.StartupRepository, skills repository.SkillRepository, log *zap.Logger) ImportService {
	return &importService{founders: founders, startups: startups, skills: skills, log: log}
}

func (s *importService) Import(ctx context.Context, kind importer.Kind, r io.Reader, dryRun bool) (*importer.Summary, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	rows, bad, err := importer.Parse(r, kind)
	if err != nil {
		return nil, err
	}

	sum := importer.NewSummary(kind, dryRun)
	for _, e := range bad {
		sum.Fail(e)
	}

	run := &importRun{svc: s, dryRun: dryRun, seen: map[string]bool{}, skillIDs: map[string]string{}, startupIDs: map[string]string{}}
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var (
			outcome importer.Outcome
			rowErr  *importer.RowError
		)
		switch kind {
		case importer.KindFounders:
			outcome, rowErr, err = run.founder(ctx, row)
		case importer.KindStartups:
			outcome, rowErr, err = run.startup(ctx, row)
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row.Number, err)
		}
		if rowErr != nil {
			sum.Fail(*rowErr)
			continue
		}
		sum.Record(outcome)
	}

	s.log.Info("import finished",
		zap.String("kind", string(kind)),
		zap.Bool("dry_run", dryRun),
		zap.Int("total", sum.Total),
		zap.Int("created", sum.Created),
		zap.Int("updated", sum.Updated),
		zap.Int("skipped", sum.Skipped),
		zap.Int("failed", sum.Failed),
	)
	return sum, nil
}

// importRun carries the per-file state: keys already handled and resolved names.
type importRun struct {
	svc        *importService
	dryRun     bool
	seen       map[string]bool
	skillIDs   map[string]string
	startupIDs map[string]string
}

// founder reconciles one founder row. A non-nil error aborts the whole import;
// row-level problems come back as a RowError.
func (run *importRun) founder(ctx context.Context, row importer.Row) (importer.Outcome, *importer.RowError, error) {
	email := strings.TrimSpace(row.Get("email"))
	key := strings.ToLower(email)
	if key != "" && run.seen[key] {
		return importer.Skipped, nil, nil
	}

	var existing *model.Founder
	if email != "" {
		found, err := run.svc.founders.FindByEmail(ctx, email)
		if err != nil && !errors.Is(translate(err), ErrNotFound) {
			return "", nil, err
		}
		existing = found
	}

	var f model.Founder
	if existing != nil {
		f = *existing
	} else {
		f = model.Founder{Visible: true, SkillIDs: []string{}, HobbyIDs: []string{}}
	}

	f.Name = row.Get("name")
	f.Email = email
	for col, dst := range map[string]*string{
		"bio":          &f.Bio,
		"location":     &f.Location,
		"linkedin_url": &f.LinkedInURL,
		"image_url":    &f.ImageURL,
	} {
		if row.Has(col) {
			*dst = row.Get(col)
		}
	}
	if row.Has("visible") {
		v, err := row.Bool("visible", f.Visible)
		if err != nil {
			return "", &importer.RowError{Row: row.Number, Field: "visible", Message: "must be yes/no or true/false"}, nil
		}
		f.Visible = v
	}
	if row.Has("skills") {
		ids, rowErr, err := run.resolveSkills(ctx, row)
		if rowErr != nil || err != nil {
			return "", rowErr, err
		}
		f.SkillIDs = ids
	}
	if row.Has("startup") {
		id, rowErr, err := run.resolveStartup(ctx, row)
		if rowErr != nil || err != nil {
			return "", rowErr, err
		}
		f.StartupID = id
	}

	in := model.FounderInput{
		Name:        f.Name,
		Email:       f.Email,
		Bio:         f.Bio,
		Location:    f.Location,
		LinkedInURL: f.LinkedInURL,
		ImageURL:    f.ImageURL,
		StartupID:   f.StartupID,
		SkillIDs:    f.SkillIDs,
		HobbyIDs:    f.HobbyIDs,
	}
	if rowErr := validationRowError(row.Number, Validate(in)); rowErr != nil {
		return "", rowErr, nil
	}
	run.seen[key] = true

	if existing != nil && sameFounder(*existing, f) {
		return importer.Skipped, nil, nil
	}
	if run.dryRun {
		if existing != nil {
			return importer.Updated, nil, nil
		}
		return importer.Created, nil, nil
	}

	now := time.Now().UTC()
	f.UpdatedAt = now
	if existing != nil {
		if _, err := run.svc.founders.Update(ctx, &f); err != nil {
			return "", writeRowError(row.Number, err), nil
		}
		return importer.Updated, nil, nil
	}
	f.ID = uuid.New().String()
	f.CreatedAt = now
	if _, err := run.svc.founders.Create(ctx, &f); err != nil {
		return "", writeRowError(row.Number, err), nil
	}
	return importer.Created, nil, nil
}

func (run *importRun) startup(ctx context.Context, row importer.Row) (importer.Outcome, *importer.RowError, error) {
	name := row.Get("name")
	key := strings.ToLower(name)
	if key != "" && run.seen[key] {
		return importer.Skipped, nil, nil
	}

	var existing *model.Startup
	if name != "" {
		found, err := run.svc.startups.FindByName(ctx, name)
		if err != nil && !errors.Is(translate(err), ErrNotFound) {
			return "", nil, err
		}
		existing = found
	}

	var st model.Startup
	if existing != nil {
		st = *existing
	} else {
		st = model.Startup{Visible: true}
	}
	st.Name = name
	for col, dst := range map[string]*string{
		"description": &st.Description,
		"website":     &st.Website,
		"industry":    &st.Industry,
		"stage":       &st.Stage,
		"logo_url":    &st.LogoURL,
	} {
		if row.Has(col) {
			*dst = row.Get(col)
		}
	}
	if row.Has("stage") {
		st.Stage = strings.ToLower(st.Stage)
	}
	if row.Has("founded_year") {
		y, err := row.Int("founded_year")
		if err != nil {
			return "", &importer.RowError{Row: row.Number, Field: "founded_year", Message: "must be a whole number"}, nil
		}
		st.FoundedYear = y
	}
	if row.Has("visible") {
		v, err := row.Bool("visible", st.Visible)
		if err != nil {
			return "", &importer.RowError{Row: row.Number, Field: "visible", Message: "must be yes/no or true/false"}, nil
		}
		st.Visible = v
	}

	in := model.StartupInput{
		Name:        st.Name,
		Description: st.Description,
		Website:     st.Website,
		Industry:    st.Industry,
		Stage:       st.Stage,
		FoundedYear: st.FoundedYear,
		LogoURL:     st.LogoURL,
	}
	if rowErr := validationRowError(row.Number, Validate(in)); rowErr != nil {
		return "", rowErr, nil
	}
	run.seen[key] = true

	if existing != nil && *existing == st {
		return importer.Skipped, nil, nil
	}
	if run.dryRun {
		if existing != nil {
			return importer.Updated, nil, nil
		}
		return importer.Created, nil, nil
	}

	now := time.Now().UTC()
	st.UpdatedAt = now
	if existing != nil {
		if _, err := run.svc.startups.Update(ctx, &st); err != nil {
			return "", writeRowError(row.Number, err), nil
		}
		return importer.Updated, nil, nil
	}
	st.ID = uuid.New().String()
	st.CreatedAt = now
	if _, err := run.svc.startups.Create(ctx, &st); err != nil {
		return "", writeRowError(row.Number, err), nil
	}
	return importer.Created, nil, nil
}

// resolveSkills maps skill names to IDs, caching lookups for the run.
func (run *importRun) resolveSkills(ctx context.Context, row importer.Row) ([]string, *importer.RowError, error) {
	ids := []string{}
	var unknown []string
	for _, name := range row.List("skills") {
		key := strings.ToLower(name)
		id, ok := run.skillIDs[key]
		if !ok {
			sk, err := run.svc.skills.FindByName(ctx, name)
			if err != nil {
				if !errors.Is(translate(err), ErrNotFound) {
					return nil, nil, err
				}
			} else {
				id = sk.ID
			}
			run.skillIDs[key] = id
		}
		if id == "" {
			unknown = append(unknown, name)
			continue
		}
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	if len(unknown) > 0 {
		return nil, &importer.RowError{Row: row.Number, Field: "skills", Message: "unknown skill: " + strings.Join(unknown, ", ")}, nil
	}
	return ids, nil, nil
}

// resolveStartup maps a startup name to its ID. An empty cell clears the link.
func (run *importRun) resolveStartup(ctx context.Context, row importer.Row) (*string, *importer.RowError, error) {
	name := row.Get("startup")
	if name == "" {
		return nil, nil, nil
	}
	key := strings.ToLower(name)
	id, ok := run.startupIDs[key]
	if !ok {
		st, err := run.svc.startups.FindByName(ctx, name)
		if err != nil {
			if !errors.Is(translate(err), ErrNotFound) {
				return nil, nil, err
			}
		} else {
			id = st.ID
		}
		run.startupIDs[key] = id
	}
	if id == "" {
		return nil, &importer.RowError{Row: row.Number, Field: "startup", Message: "unknown startup: " + name}, nil
	}
	return &id, nil, nil
}

func validationRowError(row int, err error) *importer.RowError {
	if err == nil {
		return nil
	}
	var verr *ValidationError
	if errors.As(err, &verr) && len(verr.Fields) > 0 {
		return &importer.RowError{Row: row, Field: verr.Fields[0].Field, Message: verr.Fields[0].Message}
	}
	return &importer.RowError{Row: row, Message: err.Error()}
}

func writeRowError(row int, err error) *importer.RowError {
	switch err = translate(err); {
	case errors.Is(err, ErrConflict):
		return &importer.RowError{Row: row, Message: "conflicts with an existing record"}
	case errors.Is(err, ErrInvalidReference):
		return &importer.RowError{Row: row, Message: "references a record that does not exist"}
	}
	return &importer.RowError{Row: row, Message: "could not be saved"}
}

func sameFounder(a, b model.Founder) bool {
	return a.Name == b.Name &&
		a.Email == b.Email &&
		a.Bio == b.Bio &&
		a.Location == b.Location &&
		a.LinkedInURL == b.LinkedInURL &&
		a.ImageURL == b.ImageURL &&
		a.Visible == b.Visible &&
		sameOptional(a.StartupID, b.StartupID) &&
		sameSet(a.SkillIDs, b.SkillIDs) &&
		sameSet(a.HobbyIDs, b.HobbyIDs)
}

func sameOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x, y := slices.Clone(a), slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}
