package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"founderhub/internal/auth"
	"founderhub/internal/calendar"
	"founderhub/internal/model"
	"founderhub/internal/repository"
)

// calendarPageSize bounds each repository read while collecting a calendar range.
const calendarPageSize = 500

// maxAgendaSpan caps the window an agenda request may cover.
const maxAgendaSpan = 366 * 24 * time.Hour

// EventService defines the use cases for community events.
type EventService interface {
	List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*ListResult[model.Event], error)
	Get(ctx context.Context, who auth.Identity, id string) (*model.Event, error)
	Create(ctx context.Context, in model.EventInput) (*model.Event, error)
	Update(ctx context.Context, id string, in model.EventInput) (*model.Event, error)
	Delete(ctx context.Context, id string) error
	// Calendar returns the month grid with every event the caller may see placed on its days.
	Calendar(ctx context.Context, who auth.Identity, year int, month time.Month, weekStart time.Weekday, loc *time.Location) (*calendar.Month, error)
	// Agenda groups the events overlapping [from, to) by local day.
	Agenda(ctx context.Context, who auth.Identity, from, to time.Time, loc *time.Location) ([]calendar.DayGroup, error)
}

type eventService struct {
	repo repository.EventRepository
	now  func() time.Time
}

func NewEventService(repo repository.EventRepository) EventService {
	return &eventService{repo: repo, now: time.Now}
}

func (s *eventService) List(ctx context.Context, who auth.Identity, q repository.ListQuery) (*ListResult[model.Event], error) {
	q = scopeVisibility(who, normalize(q))
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return newListResult(page, q), nil
}

func (s *eventService) Get(ctx context.Context, who auth.Identity, id string) (*model.Event, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if !e.Visible && !who.Admin {
		return nil, ErrNotFound
	}
	return e, nil
}

func (s *eventService) Create(ctx context.Context, in model.EventInput) (*model.Event, error) {
	if err := validateEvent(&in); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	e := &model.Event{
		ID:        uuid.New().String(),
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.Apply(e)

	stored, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, translate(err)
	}
	return stored, nil
}

func (s *eventService) Update(ctx context.Context, id string, in model.EventInput) (*model.Event, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if err := validateEvent(&in); err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	e := *existing
	in.Apply(&e)
	e.UpdatedAt = time.Now().UTC()

	stored, err := s.repo.Update(ctx, &e)
	if err != nil {
		return nil, translate(err)
	}
	return stored, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return translate(s.repo.Delete(ctx, id))
}

func (s *eventService) Calendar(ctx context.Context, who auth.Identity, year int, month time.Month, weekStart time.Weekday, loc *time.Location) (*calendar.Month, error) {
	if loc == nil {
		loc = time.UTC
	}
	from, to, err := calendar.GridRange(year, month, weekStart, loc)
	if err != nil {
		return nil, err
	}
	events, err := s.collect(ctx, who, from, to)
	if err != nil {
		return nil, err
	}
	return calendar.MonthGrid(year, month, weekStart, events, loc, s.now())
}

func (s *eventService) Agenda(ctx context.Context, who auth.Identity, from, to time.Time, loc *time.Location) ([]calendar.DayGroup, error) {
	if !to.After(from) {
		return nil, invalidField("to", "must be after from")
	}
	if to.Sub(from) > maxAgendaSpan {
		return nil, invalidField("to", "range must not exceed 366 days")
	}
	events, err := s.collect(ctx, who, from, to)
	if err != nil {
		return nil, err
	}
	return calendar.GroupWithin(events, loc, from, to), nil
}

// collect reads every event overlapping [from, to) page by page.
func (s *eventService) collect(ctx context.Context, who auth.Identity, from, to time.Time) ([]model.Event, error) {
	q := scopeVisibility(who, repository.ListQuery{
		Limit:      calendarPageSize,
		Visibility: repository.VisibilityAll,
		From:       &from,
		To:         &to,
	})

	var events []model.Event
	for {
		page, err := s.repo.List(ctx, q)
		if err != nil {
			return nil, err
		}
		events = append(events, page.Items...)
		if len(page.Items) < q.Limit || len(events) >= page.Total {
			return events, nil
		}
		q.Offset += len(page.Items)
	}
}

func validateEvent(in *model.EventInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	if err := Validate(*in); err != nil {
		return err
	}
	if in.EndsAt != nil && in.EndsAt.Before(in.StartsAt) {
		return invalidField("ends_at", "must not be before starts_at")
	}
	return nil
}
