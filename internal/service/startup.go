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

// StartupService defines the use cases for startups.
type StartupService interface {
	List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*ListResult[model.Startup], error)
	Get(ctx context.Context, who auth.Identity, id string) (*model.Startup, error)
	Create(ctx context.Context, in model.StartupInput) (*model.Startup, error)
	Update(ctx context.Context, id string, in model.StartupInput) (*model.Startup, error)
	SetVisibility(ctx context.Context, id string, visible bool) error
	Delete(ctx context.Context, id string) error
}

type startupService struct {
	repo repository.StartupRepository
	log  *zap.Logger
}

func NewStartupService(repo repository.StartupRepository, log *zap.Logger) StartupService {
	return &startupService{repo: repo, log: log}
}

func (s *startupService) List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*ListResult[model.Startup], error) {
	q = scopeVisibility(who, normalize(q))
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return newListResult(page, q), nil
}

func (s *startupService) Get(ctx context.Context, who auth.Identity, id string) (*model.Startup, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if !st.Visible && !who.Admin {
		return nil, ErrNotFound
	}
	return st, nil
}

func (s *startupService) Create(ctx context.Context, in model.StartupInput) (*model.Startup, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := Validate(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	st := &model.Startup{
		ID:        uuid.New().String(),
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.Apply(st)

	stored, err := s.repo.Create(ctx, st)
	if err != nil {
		return nil, translate(err)
	}
	return stored, nil
}

func (s *startupService) Update(ctx context.Context, id string, in model.StartupInput) (*model.Startup, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := Validate(in); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	st := *existing
	in.Apply(&st)
	st.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, &st)
	if err != nil {
		return nil, translate(err)
	}
	return stored, nil
}

func (s *startupService) SetVisibility(ctx context.Context, id string, visible bool) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.SetVisibility(ctx, id, visible); err != nil {
		return translate(err)
	}
	s.log.Info("startup visibility changed", zap.String("startup_id", id), zap.Bool("visible", visible))
	return nil
}

func (s *startupService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.log.Info("startup deleted", zap.String("startup_id", id))
	return nil
}
