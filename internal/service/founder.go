package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"founderhub/internal/auth"
	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// FounderService defines the use cases for the founder directory.
type FounderService interface {
	// List returns a page of founders. Non-admin callers only ever see visible founders.
	List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*ListResult[model.Founder], error)
	// Get returns a founder. Hidden founders are reported as not found to everyone but
	// admins and the founder themself.
	Get(ctx context.Context, who auth.Identity, id string) (*model.Founder, error)
	// Self returns the founder whose email matches the caller's token.
	Self(ctx context.Context, who auth.Identity) (*model.Founder, error)
	Create(ctx context.Context, in model.FounderInput) (*model.Founder, error)
	// Update is allowed for admins and for the founder whose email matches the caller.
	// Non-admins cannot change their email or visibility.
	Update(ctx context.Context, who auth.Identity, id string, in model.FounderInput) (*model.Founder, error)
	SetVisibility(ctx context.Context, id string, visible bool) error
	Delete(ctx context.Context, id string) error
}

type founderService struct {
	repo repository.FounderRepository
	log  *zap.Logger
}

func NewFounderService(repo repository.FounderRepository, log *zap.Logger) FounderService {
	return &founderService{repo: repo, log: log}
}

func (s *founderService) List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*ListResult[model.Founder], error) {
	q = scopeVisibility(who, normalize(q))
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return newListResult(page, q), nil
}

func (s *founderService) Get(ctx context.Context, who auth.Identity, id string) (*model.Founder, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if !f.Visible && !who.Admin && !auth.SameEmail(f.Email, who.Email) {
		return nil, ErrNotFound
	}
	return f, nil
}

func (s *founderService) Self(ctx context.Context, who auth.Identity) (*model.Founder, error) {
	if strings.TrimSpace(who.Email) == "" {
		return nil, ErrNotFound
	}
	f, err := s.repo.FindByEmail(ctx, who.Email)
	if err != nil {
		return nil, translate(err)
	}
	return f, nil
}

func (s *founderService) Create(ctx context.Context, in model.FounderInput) (*model.Founder, error) {
	in = cleanFounderInput(in)
	if err := Validate(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	f := &model.Founder{
		ID:        uuid.New().String(),
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.Apply(f)

	stored, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, translate(err)
	}
	return stored, nil
}

func (s *founderService) Update(ctx context.Context, who auth.Identity, id string, in model.FounderInput) (*model.Founder, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if !who.Admin {
		if !auth.SameEmail(existing.Email, who.Email) {
			return nil, ErrForbidden
		}
		in.Email = existing.Email
		in.Visible = nil
	}

	in = cleanFounderInput(in)
	if err := Validate(in); err != nil {
		return nil, err
	}

	f := *existing
	in.Apply(&f)
	f.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, &f)
	if err != nil {
		return nil, translate(err)
	}
	return stored, nil
}

func (s *founderService) SetVisibility(ctx context.Context, id string, visible bool) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.SetVisibility(ctx, id, visible); err != nil {
		return translate(err)
	}
	s.log.Info("founder visibility changed", zap.String("founder_id", id), zap.Bool("visible", visible))
	return nil
}

func (s *founderService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.log.Info("founder deleted", zap.String("founder_id", id))
	return nil
}

func cleanFounderInput(in model.FounderInput) model.FounderInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.LinkedInURL = strings.TrimSpace(in.LinkedInURL)
	if in.StartupID != nil && strings.TrimSpace(*in.StartupID) == "" {
		in.StartupID = nil
	}
	if in.SkillIDs == nil {
		in.SkillIDs = []string{}
	}
	if in.HobbyIDs == nil {
		in.HobbyIDs = []string{}
	}
	return in
}
