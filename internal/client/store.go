package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"founderhub/internal/model"
)

// ErrNotLoaded is returned when a mutation targets a row missing from the snapshot.
var ErrNotLoaded = errors.New("row is not in the loaded snapshot")

// Snapshot is one consistent read of the directory as an admin sees it.
type Snapshot struct {
	Founders     []model.Founder
	Startups     []model.Startup
	Skills       []model.Skill
	HelpRequests []model.HelpRequest
	Events       []model.Event
	LoadedAt     time.Time
}

// Store keeps the admin view in memory and applies mutations optimistically:
// the local copy changes first and is rolled back if the API call fails.
type Store struct {
	c   *Client
	now func() time.Time

	mu      sync.Mutex
	snap    Snapshot
	started uint64
	applied uint64
}

func NewStore(c *Client) *Store {
	return &Store{c: c, now: time.Now}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Founders:     slices.Clone(s.snap.Founders),
		Startups:     slices.Clone(s.snap.Startups),
		Skills:       slices.Clone(s.snap.Skills),
		HelpRequests: slices.Clone(s.snap.HelpRequests),
		Events:       slices.Clone(s.snap.Events),
		LoadedAt:     s.snap.LoadedAt,
	}
}

// Load fetches every collection concurrently. The first failure cancels the
// other requests and leaves the previous snapshot in place. When loads overlap,
// a slower older load never replaces the result of a newer one.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.started++
	seq := s.started
	s.mu.Unlock()

	var next Snapshot
	all := Query{Visibility: "all"}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		next.Founders, err = listAll[model.Founder](gctx, s.c, "/api/v1/founders", all)
		return err
	})
	g.Go(func() (err error) {
		next.Startups, err = listAll[model.Startup](gctx, s.c, "/api/v1/startups", all)
		return err
	})
	g.Go(func() (err error) {
		next.Skills, err = listAll[model.Skill](gctx, s.c, "/api/v1/skills", Query{})
		return err
	})
	g.Go(func() (err error) {
		next.HelpRequests, err = listAll[model.HelpRequest](gctx, s.c, "/api/v1/help-requests", Query{})
		return err
	})
	g.Go(func() (err error) {
		next.Events, err = listAll[model.Event](gctx, s.c, "/api/v1/events", all)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied {
		return nil
	}
	next.LoadedAt = s.now()
	s.snap = next
	s.applied = seq
	return nil
}

// ToggleVisibility flips the visible flag of a founder or startup and returns the new value.
func (s *Store) ToggleVisibility(ctx context.Context, r Resource, id string) (bool, error) {
	s.mu.Lock()
	flag, err := s.visibleFlag(r, id)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	prev := *flag
	*flag = !prev
	gen := s.applied
	s.mu.Unlock()

	if err := s.c.SetVisibility(ctx, r, id, !prev); err != nil {
		s.mu.Lock()
		// A snapshot loaded meanwhile reflects the server and wins over the rollback.
		if flag, ferr := s.visibleFlag(r, id); ferr == nil && s.applied == gen && *flag == !prev {
			*flag = prev
		}
		s.mu.Unlock()
		return prev, err
	}
	return !prev, nil
}

// visibleFlag must be called with mu held.
func (s *Store) visibleFlag(r Resource, id string) (*bool, error) {
	switch r {
	case Founders:
		if i := slices.IndexFunc(s.snap.Founders, func(f model.Founder) bool { return f.ID == id }); i >= 0 {
			return &s.snap.Founders[i].Visible, nil
		}
	case Startups:
		if i := slices.IndexFunc(s.snap.Startups, func(st model.Startup) bool { return st.ID == id }); i >= 0 {
			return &s.snap.Startups[i].Visible, nil
		}
	default:
		return nil, fmt.Errorf("unknown resource %q", r)
	}
	return nil, ErrNotLoaded
}

// Delete removes the row locally, then on the server. A failed call puts the
// row back at its old position unless a Load landed in between.
func (s *Store) Delete(ctx context.Context, r Resource, id string) error {
	switch r {
	case Founders:
		return optimisticDelete(ctx, s, &s.snap.Founders, func(f model.Founder) bool { return f.ID == id }, r, id)
	case Startups:
		return optimisticDelete(ctx, s, &s.snap.Startups, func(st model.Startup) bool { return st.ID == id }, r, id)
	}
	return fmt.Errorf("unknown resource %q", r)
}

func optimisticDelete[T any](ctx context.Context, s *Store, rows *[]T, match func(T) bool, r Resource, id string) error {
	s.mu.Lock()
	i := slices.IndexFunc(*rows, match)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotLoaded
	}
	removed := (*rows)[i]
	*rows = slices.Delete(*rows, i, i+1)
	gen := s.applied
	s.mu.Unlock()

	if err := s.c.Delete(ctx, r, id); err != nil {
		s.mu.Lock()
		if s.applied == gen && !slices.ContainsFunc(*rows, match) {
			*rows = slices.Insert(*rows, min(i, len(*rows)), removed)
		}
		s.mu.Unlock()
		return err
	}
	return nil
}
