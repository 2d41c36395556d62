package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"founderhub/internal/model"
	"founderhub/internal/repository"
	repoMocks "founderhub/internal/repository/mocks"
)

type dashboardMocks struct {
	founders     *repoMocks.MockFounderRepository
	startups     *repoMocks.MockStartupRepository
	skills       *repoMocks.MockSkillRepository
	hobbies      *repoMocks.MockHobbyRepository
	helpRequests *repoMocks.MockHelpRequestRepository
	events       *repoMocks.MockEventRepository
}

func newDashboardMocks() dashboardMocks {
	return dashboardMocks{
		founders:     new(repoMocks.MockFounderRepository),
		startups:     new(repoMocks.MockStartupRepository),
		skills:       new(repoMocks.MockSkillRepository),
		hobbies:      new(repoMocks.MockHobbyRepository),
		helpRequests: new(repoMocks.MockHelpRequestRepository),
		events:       new(repoMocks.MockEventRepository),
	}
}

func (m dashboardMocks) service(now time.Time) DashboardService {
	return &dashboardService{
		founders:     m.founders,
		startups:     m.startups,
		skills:       m.skills,
		hobbies:      m.hobbies,
		helpRequests: m.helpRequests,
		events:       m.events,
		now:          func() time.Time { return now },
	}
}

func byVisibility(v repository.Visibility) any {
	return mock.MatchedBy(func(q repository.ListQuery) bool { return q.Visibility == v })
}

func TestDashboardService_Summary(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	m := newDashboardMocks()

	m.founders.On("List", mock.Anything, byVisibility(repository.VisibilityAll)).
		Return(&repository.PageResult[model.Founder]{Total: 42}, nil)
	m.founders.On("List", mock.Anything, byVisibility(repository.VisibilityHidden)).
		Return(&repository.PageResult[model.Founder]{Total: 3}, nil)
	m.startups.On("List", mock.Anything, byVisibility(repository.VisibilityAll)).
		Return(&repository.PageResult[model.Startup]{Total: 17}, nil)
	m.startups.On("List", mock.Anything, byVisibility(repository.VisibilityHidden)).
		Return(&repository.PageResult[model.Startup]{Total: 1}, nil)
	m.skills.On("List", mock.Anything, mock.Anything).Return(&repository.PageResult[model.Skill]{Total: 12}, nil)
	m.hobbies.On("List", mock.Anything, mock.Anything).Return(&repository.PageResult[model.Hobby]{Total: 8}, nil)
	m.helpRequests.On("List", mock.Anything, mock.MatchedBy(func(q repository.ListQuery) bool { return q.Status == "" })).
		Return(&repository.PageResult[model.HelpRequest]{Total: 9}, nil)
	m.helpRequests.On("List", mock.Anything, mock.MatchedBy(func(q repository.ListQuery) bool { return q.Status == model.StatusOpen })).
		Return(&repository.PageResult[model.HelpRequest]{Total: 4}, nil)
	m.events.On("List", mock.Anything, mock.MatchedBy(func(q repository.ListQuery) bool { return q.From == nil })).
		Return(&repository.PageResult[model.Event]{Total: 6}, nil)
	m.events.On("List", mock.Anything, mock.MatchedBy(func(q repository.ListQuery) bool {
		return q.From != nil && q.From.Equal(now) && q.Limit == upcomingEvents
	})).Return(&repository.PageResult[model.Event]{Items: []model.Event{{ID: "next"}}, Total: 2}, nil)

	d, err := m.service(now).Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Dashboard{
		Founders:         42,
		HiddenFounders:   3,
		Startups:         17,
		HiddenStartups:   1,
		Skills:           12,
		Hobbies:          8,
		HelpRequests:     9,
		OpenHelpRequests: 4,
		Events:           6,
		UpcomingEvents:   []model.Event{{ID: "next"}},
	}, *d)
}

func TestDashboardService_FirstErrorCancelsTheRest(t *testing.T) {
	m := newDashboardMocks()
	boom := errors.New("founders table locked")

	m.founders.On("List", mock.Anything, mock.Anything).Return(nil, boom)

	// Every other query blocks until the group context is cancelled.
	waitCancel := func(args mock.Arguments) {
		<-args.Get(0).(context.Context).Done()
	}
	m.startups.On("List", mock.Anything, mock.Anything).Run(waitCancel).Return(nil, context.Canceled)
	m.skills.On("List", mock.Anything, mock.Anything).Run(waitCancel).Return(nil, context.Canceled)
	m.hobbies.On("List", mock.Anything, mock.Anything).Run(waitCancel).Return(nil, context.Canceled)
	m.helpRequests.On("List", mock.Anything, mock.Anything).Run(waitCancel).Return(nil, context.Canceled)
	m.events.On("List", mock.Anything, mock.Anything).Run(waitCancel).Return(nil, context.Canceled)

	done := make(chan struct{})
	var err error
	go func() {
		defer close(done)
		_, err = m.service(time.Now()).Summary(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("summary did not return after the first failure")
	}
	assert.ErrorIs(t, err, boom)
}
