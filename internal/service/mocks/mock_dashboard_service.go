package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/service"
)

type MockDashboardService struct {
	mock.Mock
}

var _ service.DashboardService = (*MockDashboardService)(nil)

func (m *MockDashboardService) Summary(ctx context.Context) (*service.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}
