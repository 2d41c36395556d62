package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/model"
	"founderhub/internal/repository"
	"founderhub/internal/service"
)

type MockHobbyService struct {
	mock.Mock
}

var _ service.HobbyService = (*MockHobbyService)(nil)

func (m *MockHobbyService) List(ctx context.Context, q repository.ListQuery) (*service.ListResult[model.Hobby], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Hobby]), args.Error(1)
}

func (m *MockHobbyService) Get(ctx context.Context, id string) (*model.Hobby, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hobby), args.Error(1)
}

func (m *MockHobbyService) Create(ctx context.Context, in model.HobbyInput) (*model.Hobby, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hobby), args.Error(1)
}

func (m *MockHobbyService) Update(ctx context.Context, id string, in model.HobbyInput) (*model.Hobby, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hobby), args.Error(1)
}

func (m *MockHobbyService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
