package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/auth"
	"founderhub/internal/model"
	"founderhub/internal/repository"
	"founderhub/internal/service"
)

type MockStartupService struct {
	mock.Mock
}

var _ service.StartupService = (*MockStartupService)(nil)

func (m *MockStartupService) List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*service.ListResult[model.Startup], error) {
	args := m.Called(ctx, who, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Startup]), args.Error(1)
}

func (m *MockStartupService) Get(ctx context.Context, who auth.Identity, id string) (*model.Startup, error) {
	args := m.Called(ctx, who, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Startup), args.Error(1)
}

func (m *MockStartupService) Create(ctx context.Context, in model.StartupInput) (*model.Startup, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Startup), args.Error(1)
}

func (m *MockStartupService) Update(ctx context.Context, id string, in model.StartupInput) (*model.Startup, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Startup), args.Error(1)
}

func (m *MockStartupService) SetVisibility(ctx context.Context, id string, visible bool) error {
	args := m.Called(ctx, id, visible)
	return args.Error(0)
}

func (m *MockStartupService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
