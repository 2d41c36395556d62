package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

type MockStartupRepository struct {
	mock.Mock
}

var _ repository.StartupRepository = (*MockStartupRepository)(nil)

func (m *MockStartupRepository) Create(ctx context.Context, v *model.Startup) (*model.Startup, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Startup), args.Error(1)
}

func (m *MockStartupRepository) FindByID(ctx context.Context, id string) (*model.Startup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Startup), args.Error(1)
}

func (m *MockStartupRepository) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.Startup], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Startup]), args.Error(1)
}

func (m *MockStartupRepository) Update(ctx context.Context, v *model.Startup) (*model.Startup, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Startup), args.Error(1)
}

func (m *MockStartupRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStartupRepository) FindByName(ctx context.Context, name string) (*model.Startup, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Startup), args.Error(1)
}

func (m *MockStartupRepository) SetVisibility(ctx context.Context, id string, visible bool) error {
	args := m.Called(ctx, id, visible)
	return args.Error(0)
}
