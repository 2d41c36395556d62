package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

type MockEventRepository struct {
	mock.Mock
}

var _ repository.EventRepository = (*MockEventRepository)(nil)

func (m *MockEventRepository) Create(ctx context.Context, v *model.Event) (*model.Event, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id string) (*model.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.Event], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Event]), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, v *model.Event) (*model.Event, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
