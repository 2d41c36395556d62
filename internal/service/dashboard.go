package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"founderhub/internal/model"
	"founderhub/internal/repository"
)

const upcomingEvents = 5

// Dashboard is the admin overview.
type Dashboard struct {
	Founders         int           `json:"founders"`
	HiddenFounders   int           `json:"hidden_founders"`
	Startups         int           `json:"startups"`
	HiddenStartups   int           `json:"hidden_startups"`
	Skills           int           `json:"skills"`
	Hobbies          int           `json:"hobbies"`
	HelpRequests     int           `json:"help_requests"`
	OpenHelpRequests int           `json:"open_help_requests"`
	Events           int           `json:"events"`
	UpcomingEvents   []model.Event `json:"upcoming_events"`
}

// DashboardService aggregates counts across all resources.
type DashboardService interface {
	// Summary runs its queries concurrently. The first failure cancels the rest
	// and is returned.
	Summary(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	founders     repository.FounderRepository
	startups     repository.StartupRepository
	skills       repository.SkillRepository
	hobbies      repository.HobbyRepository
	helpRequests repository.HelpRequestRepository
	events       repository.EventRepository
	now          func() time.Time
}

func NewDashboardService(
	founders repository.FounderRepository,
	startups repository.StartupRepository,
	skills repository.SkillRepository,
	hobbies repository.HobbyRepository,
	helpRequests repository.HelpRequestRepository,
	events repository.EventRepository,
) DashboardService {
	return &dashboardService{
		founders:     founders,
		startups:     startups,
		skills:       skills,
		hobbies:      hobbies,
		helpRequests: helpRequests,
		events:       events,
		now:          time.Now,
	}
}

// countOnly asks for the total without needing any rows back.
var countOnly = repository.ListQuery{Limit: 1, Visibility: repository.VisibilityAll}

func (s *dashboardService) Summary(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, ctx := errgroup.WithContext(ctx)

	hidden := countOnly
	hidden.Visibility = repository.VisibilityHidden
	open := countOnly
	open.Status = model.StatusOpen
	now := s.now().UTC()

	g.Go(func() error { return total(ctx, s.founders.List, countOnly, &d.Founders) })
	g.Go(func() error { return total(ctx, s.founders.List, hidden, &d.HiddenFounders) })
	g.Go(func() error { return total(ctx, s.startups.List, countOnly, &d.Startups) })
	g.Go(func() error { return total(ctx, s.startups.List, hidden, &d.HiddenStartups) })
	g.Go(func() error { return total(ctx, s.skills.List, countOnly, &d.Skills) })
	g.Go(func() error { return total(ctx, s.hobbies.List, countOnly, &d.Hobbies) })
	g.Go(func() error { return total(ctx, s.helpRequests.List, countOnly, &d.HelpRequests) })
	g.Go(func() error { return total(ctx, s.helpRequests.List, open, &d.OpenHelpRequests) })
	g.Go(func() error { return total(ctx, s.events.List, countOnly, &d.Events) })
	g.Go(func() error {
		page, err := s.events.List(ctx, repository.ListQuery{
			Limit:      upcomingEvents,
			Visibility: repository.VisibilityAll,
			From:       &now,
			Sort:       "starts_at",
		})
		if err != nil {
			return err
		}
		d.UpcomingEvents = page.Items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if d.UpcomingEvents == nil {
		d.UpcomingEvents = []model.Event{}
	}
	return &d, nil
}

// total stores the Total of a one-row list query into dst.
func total[T any](ctx context.Context, list func(context.Context, repository.ListQuery) (*repository.PageResult[T], error), q repository.ListQuery, dst *int) error {
	page, err := list(ctx, q)
	if err != nil {
		return err
	}
	*dst = page.Total
	return nil
}
