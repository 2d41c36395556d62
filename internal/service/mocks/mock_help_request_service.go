package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/auth"
	"founderhub/internal/model"
	"founderhub/internal/repository"
	"founderhub/internal/service"
)

type MockHelpRequestService struct {
	mock.Mock
}

var _ service.HelpRequestService = (*MockHelpRequestService)(nil)

func (m *MockHelpRequestService) List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*service.ListResult[model.HelpRequest], error) {
	args := m.Called(ctx, who, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.HelpRequest]), args.Error(1)
}

func (m *MockHelpRequestService) Get(ctx context.Context, who auth.Identity, id string) (*model.HelpRequest, error) {
	args := m.Called(ctx, who, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestService) Create(ctx context.Context, who auth.Identity, in model.HelpRequestInput) (*model.HelpRequest, error) {
	args := m.Called(ctx, who, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestService) Update(ctx context.Context, who auth.Identity, id string, in model.HelpRequestInput) (*model.HelpRequest, error) {
	args := m.Called(ctx, who, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestService) SetStatus(ctx context.Context, who auth.Identity, id string, status model.HelpRequestStatus) (*model.HelpRequest, error) {
	args := m.Called(ctx, who, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HelpRequest), args.Error(1)
}

func (m *MockHelpRequestService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
