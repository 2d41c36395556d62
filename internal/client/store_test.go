package client

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"founderhub/internal/model"
	"founderhub/internal/service"
)

// fakeAPI serves a fixed directory and lets tests make individual routes fail.
type fakeAPI struct {
	mu       sync.Mutex
	founders []model.Founder
	startups []model.Startup
	fail     map[string]int
	before   map[string]func()
	block    chan struct{}
	calls    []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		founders: []model.Founder{
			{ID: "f1", Name: "Ada", Visible: true},
			{ID: "f2", Name: "Bob", Visible: false},
			{ID: "f3", Name: "Cy", Visible: true},
		},
		startups: []model.Startup{{ID: "s1", Name: "Acme", Visible: true}},
		fail:     map[string]int{},
		before:   map[string]func(){},
	}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	status, failing := f.fail[r.Method+" "+r.URL.Path]
	hook := f.before[r.Method+" "+r.URL.Path]
	block := f.block
	f.mu.Unlock()

	if hook != nil {
		hook()
	}

	if failing {
		writeJSON(w, status, map[string]any{"error": map[string]string{"code": "BOOM", "message": "boom"}})
		return
	}
	if block != nil && r.URL.Path == "/api/v1/events" {
		select {
		case <-block:
		case <-r.Context().Done():
			return
		}
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/founders":
		f.mu.Lock()
		founders := slices.Clone(f.founders)
		f.mu.Unlock()
		writeJSON(w, http.StatusOK, service.ListResult[model.Founder]{Items: founders, Total: len(founders)})
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/startups":
		writeJSON(w, http.StatusOK, service.ListResult[model.Startup]{Items: f.startups, Total: len(f.startups)})
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/skills":
		writeJSON(w, http.StatusOK, service.ListResult[model.Skill]{Items: []model.Skill{{ID: "k1", Name: "Go"}}, Total: 1})
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/help-requests":
		writeJSON(w, http.StatusOK, service.ListResult[model.HelpRequest]{Items: []model.HelpRequest{}, Total: 0})
	case r.Method == http.MethodGet && r.URL.Path == "/api/v1/events":
		writeJSON(w, http.StatusOK, service.ListResult[model.Event]{Items: []model.Event{{ID: "e1", Title: "Demo day"}}, Total: 1})
	case r.Method == http.MethodPatch && strings.HasSuffix(r.URL.Path, "/visibility"),
		r.Method == http.MethodDelete:
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) failOn(route string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[route] = status
}

// onRequest runs fn before the route is answered.
func (f *fakeAPI) onRequest(route string, fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.before[route] = fn
}

func (f *fakeAPI) setFounderVisible(id string, visible bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.founders {
		if f.founders[i].ID == id {
			f.founders[i].Visible = visible
		}
	}
}

func (f *fakeAPI) removeFounder(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.founders = slices.DeleteFunc(f.founders, func(fd model.Founder) bool { return fd.ID == id })
}

func (f *fakeAPI) called(route string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == route {
			return true
		}
	}
	return false
}

func loadedStore(t *testing.T, api *fakeAPI) *Store {
	t.Helper()
	s := NewStore(newTestClient(t, api))
	s.now = func() time.Time { return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC) }
	require.NoError(t, s.Load(context.Background()))
	return s
}

func founderIDs(s Snapshot) []string {
	ids := make([]string, len(s.Founders))
	for i, f := range s.Founders {
		ids[i] = f.ID
	}
	return ids
}

func TestStore_Load(t *testing.T) {
	api := newFakeAPI()
	s := loadedStore(t, api)

	snap := s.Snapshot()
	assert.Len(t, snap.Founders, 3)
	assert.Len(t, snap.Startups, 1)
	assert.Len(t, snap.Skills, 1)
	assert.Len(t, snap.Events, 1)
	assert.Equal(t, 2026, snap.LoadedAt.Year())
}

func TestStore_LoadFailureKeepsPreviousSnapshot(t *testing.T) {
	api := newFakeAPI()
	s := loadedStore(t, api)
	before := s.Snapshot()

	api.failOn("GET /api/v1/skills", http.StatusInternalServerError)
	err := s.Load(context.Background())
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))

	if diff := cmp.Diff(before, s.Snapshot()); diff != "" {
		t.Errorf("snapshot changed after failed load (-want +got):\n%s", diff)
	}
}

func TestStore_LoadCancelled(t *testing.T) {
	api := newFakeAPI()
	api.block = make(chan struct{})
	defer close(api.block)
	s := NewStore(newTestClient(t, api))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Load(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("load did not return after cancel")
	}
	assert.Empty(t, s.Snapshot().Founders)
}

func TestStore_ToggleVisibility(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newFakeAPI()
		s := loadedStore(t, api)

		visible, err := s.ToggleVisibility(context.Background(), Founders, "f2")
		require.NoError(t, err)
		assert.True(t, visible)
		assert.True(t, s.Snapshot().Founders[1].Visible)
	})

	t.Run("rollback on failure", func(t *testing.T) {
		api := newFakeAPI()
		s := loadedStore(t, api)
		api.failOn("PATCH /api/v1/founders/f1/visibility", http.StatusConflict)

		visible, err := s.ToggleVisibility(context.Background(), Founders, "f1")
		require.Error(t, err)
		assert.True(t, visible)
		assert.True(t, s.Snapshot().Founders[0].Visible)
	})

	t.Run("load during failed call keeps server value", func(t *testing.T) {
		api := newFakeAPI()
		s := loadedStore(t, api)
		api.failOn("PATCH /api/v1/founders/f1/visibility", http.StatusBadGateway)
		api.onRequest("PATCH /api/v1/founders/f1/visibility", func() {
			api.setFounderVisible("f1", false)
			assert.NoError(t, s.Load(context.Background()))
		})

		_, err := s.ToggleVisibility(context.Background(), Founders, "f1")
		require.Error(t, err)
		assert.False(t, s.Snapshot().Founders[0].Visible)
	})

	t.Run("startup", func(t *testing.T) {
		api := newFakeAPI()
		s := loadedStore(t, api)

		visible, err := s.ToggleVisibility(context.Background(), Startups, "s1")
		require.NoError(t, err)
		assert.False(t, visible)
	})

	t.Run("unknown row", func(t *testing.T) {
		s := loadedStore(t, newFakeAPI())
		_, err := s.ToggleVisibility(context.Background(), Founders, "nope")
		assert.ErrorIs(t, err, ErrNotLoaded)
	})
}

func TestStore_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		api := newFakeAPI()
		s := loadedStore(t, api)

		require.NoError(t, s.Delete(context.Background(), Founders, "f2"))
		assert.Equal(t, []string{"f1", "f3"}, founderIDs(s.Snapshot()))
		assert.True(t, api.called("DELETE /api/v1/founders/f2"))
	})

	t.Run("failure restores position", func(t *testing.T) {
		api := newFakeAPI()
		s := loadedStore(t, api)
		api.failOn("DELETE /api/v1/founders/f2", http.StatusInternalServerError)

		err := s.Delete(context.Background(), Founders, "f2")
		require.Error(t, err)
		assert.Equal(t, []string{"f1", "f2", "f3"}, founderIDs(s.Snapshot()))
	})

	t.Run("load during failed call keeps server rows", func(t *testing.T) {
		api := newFakeAPI()
		s := loadedStore(t, api)
		api.failOn("DELETE /api/v1/founders/f2", http.StatusBadGateway)
		api.onRequest("DELETE /api/v1/founders/f2", func() {
			api.removeFounder("f2")
			assert.NoError(t, s.Load(context.Background()))
		})

		require.Error(t, s.Delete(context.Background(), Founders, "f2"))
		assert.Equal(t, []string{"f1", "f3"}, founderIDs(s.Snapshot()))
	})

	t.Run("unknown row", func(t *testing.T) {
		s := loadedStore(t, newFakeAPI())
		assert.ErrorIs(t, s.Delete(context.Background(), Startups, "nope"), ErrNotLoaded)
	})
}
