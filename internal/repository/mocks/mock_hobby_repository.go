package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

type MockHobbyRepository struct {
	mock.Mock
}

var _ repository.HobbyRepository = (*MockHobbyRepository)(nil)

func (m *MockHobbyRepository) Create(ctx context.Context, v *model.Hobby) (*model.Hobby, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hobby), args.Error(1)
}

func (m *MockHobbyRepository) FindByID(ctx context.Context, id string) (*model.Hobby, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hobby), args.Error(1)
}

func (m *MockHobbyRepository) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.Hobby], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Hobby]), args.Error(1)
}

func (m *MockHobbyRepository) Update(ctx context.Context, v *model.Hobby) (*model.Hobby, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Hobby), args.Error(1)
}

func (m *MockHobbyRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
