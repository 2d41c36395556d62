package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/auth"
	"founderhub/internal/calendar"
	"founderhub/internal/model"
	"founderhub/internal/repository"
	"founderhub/internal/service"
)

type MockEventService struct {
	mock.Mock
}

var _ service.EventService = (*MockEventService)(nil)

func (m *MockEventService) List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*service.ListResult[model.Event], error) {
	args := m.Called(ctx, who, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Event]), args.Error(1)
}

func (m *MockEventService) Get(ctx context.Context, who auth.Identity, id string) (*model.Event, error) {
	args := m.Called(ctx, who, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Create(ctx context.Context, in model.EventInput) (*model.Event, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Update(ctx context.Context, id string, in model.EventInput) (*model.Event, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MockEventService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventService) Calendar(ctx context.Context, who auth.Identity, year int, month time.Month, weekStart time.Weekday, loc *time.Location) (*calendar.Month, error) {
	args := m.Called(ctx, who, year, month, weekStart, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calendar.Month), args.Error(1)
}

func (m *MockEventService) Agenda(ctx context.Context, who auth.Identity, from, to time.Time, loc *time.Location) ([]calendar.DayGroup, error) {
	args := m.Called(ctx, who, from, to, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]calendar.DayGroup), args.Error(1)
}
