package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/model"
	"founderhub/internal/repository"
	"founderhub/internal/service"
)

type MockSkillService struct {
	mock.Mock
}

var _ service.SkillService = (*MockSkillService)(nil)

func (m *MockSkillService) List(ctx context.Context, q repository.ListQuery) (*service.ListResult[model.Skill], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Skill]), args.Error(1)
}

func (m *MockSkillService) Get(ctx context.Context, id string) (*model.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillService) Create(ctx context.Context, in model.SkillInput) (*model.Skill, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillService) Update(ctx context.Context, id string, in model.SkillInput) (*model.Skill, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
