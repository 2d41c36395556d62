package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// SkillService manages the skill catalogue.
type SkillService interface {
	List(ctx context.Context, q repository.ListQuery) (*ListResult[model.Skill], error)
	Get(ctx context.Context, id string) (*model.Skill, error)
	Create(ctx context.Context, in model.SkillInput) (*model.Skill, error)
	Update(ctx context.Context, id string, in model.SkillInput) (*model.Skill, error)
	Delete(ctx context.Context, id string) error
}

// HobbyService manages the hobby catalogue.
type HobbyService interface {
	List(ctx context.Context, q repository.ListQuery) (*ListResult[model.Hobby], error)
	Get(ctx context.Context, id string) (*model.Hobby, error)
	Create(ctx context.Context, in model.HobbyInput) (*model.Hobby, error)
	Update(ctx context.Context, id string, in model.HobbyInput) (*model.Hobby, error)
	Delete(ctx context.Context, id string) error
}

type skillService struct {
	repo repository.SkillRepository
}

func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{repo: repo}
}

func (s *skillService) List(ctx context.Context, q repository.ListQuery) (*ListResult[model.Skill], error) {
	q = normalize(q)
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return newListResult(page, q), nil
}

func (s *skillService) Get(ctx context.Context, id string) (*model.Skill, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	sk, err := s.repo.FindByID(ctx, id)
	return sk, translate(err)
}

func (s *skillService) Create(ctx context.Context, in model.SkillInput) (*model.Skill, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if err := Validate(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	sk := &model.Skill{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored, err := s.repo.Create(ctx, sk)
	return stored, translate(err)
}

func (s *skillService) Update(ctx context.Context, id string, in model.SkillInput) (*model.Skill, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if err := Validate(in); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	existing.Name = in.Name
	existing.Category = in.Category
	existing.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, existing)
	return stored, translate(err)
}

func (s *skillService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return translate(s.repo.Delete(ctx, id))
}

type hobbyService struct {
	repo repository.HobbyRepository
}

func NewHobbyService(repo repository.HobbyRepository) HobbyService {
	return &hobbyService{repo: repo}
}

func (s *hobbyService) List(ctx context.Context, q repository.ListQuery) (*ListResult[model.Hobby], error) {
	q = normalize(q)
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return newListResult(page, q), nil
}

func (s *hobbyService) Get(ctx context.Context, id string) (*model.Hobby, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	h, err := s.repo.FindByID(ctx, id)
	return h, translate(err)
}

func (s *hobbyService) Create(ctx context.Context, in model.HobbyInput) (*model.Hobby, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := Validate(in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	h := &model.Hobby{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored, err := s.repo.Create(ctx, h)
	return stored, translate(err)
}

func (s *hobbyService) Update(ctx context.Context, id string, in model.HobbyInput) (*model.Hobby, error) {
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
	existing.Name = in.Name
	existing.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, existing)
	return stored, translate(err)
}

func (s *hobbyService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return translate(s.repo.Delete(ctx, id))
}
