package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

type MockFounderRepository struct {
	mock.Mock
}

var _ repository.FounderRepository = (*MockFounderRepository)(nil)

func (m *MockFounderRepository) Create(ctx context.Context, v *model.Founder) (*model.Founder, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Founder), args.Error(1)
}

func (m *MockFounderRepository) FindByID(ctx context.Context, id string) (*model.Founder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Founder), args.Error(1)
}

func (m *MockFounderRepository) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.Founder], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Founder]), args.Error(1)
}

func (m *MockFounderRepository) Update(ctx context.Context, v *model.Founder) (*model.Founder, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Founder), args.Error(1)
}

func (m *MockFounderRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFounderRepository) FindByEmail(ctx context.Context, email string) (*model.Founder, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Founder), args.Error(1)
}

func (m *MockFounderRepository) SetVisibility(ctx context.Context, id string, visible bool) error {
	args := m.Called(ctx, id, visible)
	return args.Error(0)
}
