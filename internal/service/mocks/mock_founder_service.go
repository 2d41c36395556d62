package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/auth"
	"founderhub/internal/model"
	"founderhub/internal/repository"
	"founderhub/internal/service"
)

type MockFounderService struct {
	mock.Mock
}

var _ service.FounderService = (*MockFounderService)(nil)

func (m *MockFounderService) List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*service.ListResult[model.Founder], error) {
	args := m.Called(ctx, who, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Founder]), args.Error(1)
}

func (m *MockFounderService) Get(ctx context.Context, who auth.Identity, id string) (*model.Founder, error) {
	args := m.Called(ctx, who, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Founder), args.Error(1)
}

func (m *MockFounderService) Self(ctx context.Context, who auth.Identity) (*model.Founder, error) {
	args := m.Called(ctx, who)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Founder), args.Error(1)
}

func (m *MockFounderService) Create(ctx context.Context, in model.FounderInput) (*model.Founder, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Founder), args.Error(1)
}

func (m *MockFounderService) Update(ctx context.Context, who auth.Identity, id string, in model.FounderInput) (*model.Founder, error) {
	args := m.Called(ctx, who, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Founder), args.Error(1)
}

func (m *MockFounderService) SetVisibility(ctx context.Context, id string, visible bool) error {
	args := m.Called(ctx, id, visible)
	return args.Error(0)
}

func (m *MockFounderService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
