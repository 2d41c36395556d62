package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

type MockSkillRepository struct {
	mock.Mock
}

var _ repository.SkillRepository = (*MockSkillRepository)(nil)

func (m *MockSkillRepository) Create(ctx context.Context, v *model.Skill) (*model.Skill, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillRepository) FindByID(ctx context.Context, id string) (*model.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillRepository) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.Skill], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Skill]), args.Error(1)
}

func (m *MockSkillRepository) Update(ctx context.Context, v *model.Skill) (*model.Skill, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}

func (m *MockSkillRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSkillRepository) FindByName(ctx context.Context, name string) (*model.Skill, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Skill), args.Error(1)
}
