package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

type MockHelpRequestRepository struct {
	mock.Mock
}

var _ repository.HelpRequestRepository = (*MockHelpRequestRepository)(nil)

func (m *MockHelpRequestRepository) Create(ctx context.Context, v *model.HelpRequest) (*model.HelpRequest, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestRepository) FindByID(ctx context.Context, id string) (*model.HelpRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestRepository) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.HelpRequest], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.HelpRequest]), args.Error(1)
}

func (m *MockHelpRequestRepository) Update(ctx context.Context, v *model.HelpRequest) (*model.HelpRequest, error) {
	args := m.Called(ctx, v)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
