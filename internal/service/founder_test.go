package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"founderhub/internal/auth"
	"founderhub/internal/model"
	"founderhub/internal/repository"
	repoMocks "founderhub/internal/repository/mocks"
)

var (
	admin  = auth.Identity{Subject: "auth0|admin", Email: "admin@example.com", Admin: true}
	member = auth.Identity{Subject: "auth0|ada", Email: "Ada@Example.com"}
)

func boolPtr(b bool) *bool { return &b }

func TestFounderService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		who       auth.Identity
		in        repository.ListQuery
		wantQuery repository.ListQuery
	}{
		{
			name:      "member is scoped to visible founders",
			who:       member,
			in:        repository.ListQuery{Visibility: repository.VisibilityHidden, Search: "ada"},
			wantQuery: repository.ListQuery{Limit: DefaultLimit, Visibility: repository.VisibilityVisible, Search: "ada"},
		},
		{
			name:      "admin may list hidden founders",
			who:       admin,
			in:        repository.ListQuery{Limit: 500, Offset: -3, Visibility: repository.VisibilityHidden},
			wantQuery: repository.ListQuery{Limit: MaxLimit, Visibility: repository.VisibilityHidden},
		},
		{
			name:      "admin defaults to all",
			who:       admin,
			in:        repository.ListQuery{Limit: 5, Offset: 10, Sort: "created_at", Desc: true},
			wantQuery: repository.ListQuery{Limit: 5, Offset: 10, Sort: "created_at", Desc: true, Visibility: repository.VisibilityAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockFounderRepository)
			mRepo.On("List", ctx, tt.wantQuery).
				Return(&repository.PageResult[model.Founder]{Items: []model.Founder{{ID: "1"}}, Total: 1}, nil)

			svc := NewFounderService(mRepo, zap.NewNop())
			res, err := svc.List(ctx, tt.who, tt.in)

			require.NoError(t, err)
			assert.Equal(t, 1, res.Total)
			assert.Equal(t, tt.wantQuery.Limit, res.Limit)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestFounderService_Get(t *testing.T) {
	ctx := context.Background()
	hidden := &model.Founder{ID: "f1", Email: "ada@example.com", Visible: false}

	tests := []struct {
		name    string
		who     auth.Identity
		id      string
		setup   func(m *repoMocks.MockFounderRepository)
		wantErr error
	}{
		{name: "empty id", who: admin, id: "", setup: func(m *repoMocks.MockFounderRepository) {}, wantErr: ErrIDRequired},
		{
			name: "not found",
			who:  admin,
			id:   "missing",
			setup: func(m *repoMocks.MockFounderRepository) {
				m.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "hidden founder is not found for other members",
			who:  auth.Identity{Email: "bob@example.com"},
			id:   "f1",
			setup: func(m *repoMocks.MockFounderRepository) {
				m.On("FindByID", ctx, "f1").Return(hidden, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "hidden founder is visible to themself",
			who:  member,
			id:   "f1",
			setup: func(m *repoMocks.MockFounderRepository) {
				m.On("FindByID", ctx, "f1").Return(hidden, nil)
			},
		},
		{
			name: "hidden founder is visible to admins",
			who:  admin,
			id:   "f1",
			setup: func(m *repoMocks.MockFounderRepository) {
				m.On("FindByID", ctx, "f1").Return(hidden, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockFounderRepository)
			tt.setup(mRepo)
			svc := NewFounderService(mRepo, zap.NewNop())

			f, err := svc.Get(ctx, tt.who, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, f)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "f1", f.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestFounderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("validation failure lists every field", func(t *testing.T) {
		svc := NewFounderService(new(repoMocks.MockFounderRepository), zap.NewNop())
		_, err := svc.Create(ctx, model.FounderInput{Email: "not-an-email", SkillIDs: []string{"nope"}})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		fields := map[string]string{}
		for _, f := range verr.Fields {
			fields[f.Field] = f.Message
		}
		assert.Equal(t, "is required", fields["name"])
		assert.Equal(t, "must be a valid email address", fields["email"])
		assert.Equal(t, "must be a UUID", fields["skill_ids[0]"])
	})

	t.Run("defaults to visible and stamps ids", func(t *testing.T) {
		mRepo := new(repoMocks.MockFounderRepository)
		mRepo.On("Create", ctx, mock.MatchedBy(func(f *model.Founder) bool {
			return f.ID != "" && f.Visible && f.Name == "Ada" && !f.CreatedAt.IsZero() && f.SkillIDs != nil
		})).Return(&model.Founder{ID: "new"}, nil)

		svc := NewFounderService(mRepo, zap.NewNop())
		f, err := svc.Create(ctx, model.FounderInput{Name: "  Ada ", Email: "ada@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "new", f.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mRepo := new(repoMocks.MockFounderRepository)
		mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrConflict)

		svc := NewFounderService(mRepo, zap.NewNop())
		_, err := svc.Create(ctx, model.FounderInput{Name: "Ada", Email: "ada@example.com"})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestFounderService_Update(t *testing.T) {
	ctx := context.Background()
	stored := &model.Founder{ID: "f1", Name: "Ada", Email: "ada@example.com", Visible: false}

	t.Run("other member is forbidden", func(t *testing.T) {
		mRepo := new(repoMocks.MockFounderRepository)
		mRepo.On("FindByID", ctx, "f1").Return(stored, nil)

		svc := NewFounderService(mRepo, zap.NewNop())
		_, err := svc.Update(ctx, auth.Identity{Email: "eve@example.com"}, "f1", model.FounderInput{Name: "Eve", Email: "eve@example.com"})

		assert.ErrorIs(t, err, ErrForbidden)
		mRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("self cannot change email or visibility", func(t *testing.T) {
		mRepo := new(repoMocks.MockFounderRepository)
		mRepo.On("FindByID", ctx, "f1").Return(stored, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(f *model.Founder) bool {
			return f.Email == "ada@example.com" && !f.Visible && f.Bio == "compilers"
		})).Return(&model.Founder{ID: "f1"}, nil)

		svc := NewFounderService(mRepo, zap.NewNop())
		_, err := svc.Update(ctx, member, "f1", model.FounderInput{
			Name:    "Ada",
			Email:   "other@example.com",
			Bio:     "compilers",
			Visible: boolPtr(true),
		})

		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("admin can change visibility", func(t *testing.T) {
		mRepo := new(repoMocks.MockFounderRepository)
		mRepo.On("FindByID", ctx, "f1").Return(stored, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(f *model.Founder) bool {
			return f.Visible
		})).Return(&model.Founder{ID: "f1", Visible: true}, nil)

		svc := NewFounderService(mRepo, zap.NewNop())
		f, err := svc.Update(ctx, admin, "f1", model.FounderInput{Name: "Ada", Email: "ada@example.com", Visible: boolPtr(true)})

		require.NoError(t, err)
		assert.True(t, f.Visible)
	})
}

func TestFounderService_SetVisibility(t *testing.T) {
	ctx := context.Background()

	t.Run("logs the change", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		mRepo := new(repoMocks.MockFounderRepository)
		mRepo.On("SetVisibility", ctx, "f1", false).Return(nil)

		svc := NewFounderService(mRepo, zap.New(core))
		require.NoError(t, svc.SetVisibility(ctx, "f1", false))

		entries := logs.FilterMessage("founder visibility changed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "f1", entries[0].ContextMap()["founder_id"])
		assert.Equal(t, false, entries[0].ContextMap()["visible"])
	})

	t.Run("missing founder", func(t *testing.T) {
		mRepo := new(repoMocks.MockFounderRepository)
		mRepo.On("SetVisibility", ctx, "nope", true).Return(sql.ErrNoRows)

		svc := NewFounderService(mRepo, zap.NewNop())
		assert.ErrorIs(t, svc.SetVisibility(ctx, "nope", true), ErrNotFound)
	})

	t.Run("repository error passes through", func(t *testing.T) {
		mRepo := new(repoMocks.MockFounderRepository)
		boom := errors.New("db down")
		mRepo.On("SetVisibility", ctx, "f1", true).Return(boom)

		svc := NewFounderService(mRepo, zap.NewNop())
		assert.ErrorIs(t, svc.SetVisibility(ctx, "f1", true), boom)
	})
}

func TestFounderService_Self(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockFounderRepository)
	mRepo.On("FindByEmail", ctx, member.Email).Return(&model.Founder{ID: "f1"}, nil)

	svc := NewFounderService(mRepo, zap.NewNop())
	f, err := svc.Self(ctx, member)
	require.NoError(t, err)
	assert.Equal(t, "f1", f.ID)

	_, err = svc.Self(ctx, auth.Identity{Subject: "no-email"})
	assert.ErrorIs(t, err, ErrNotFound)
}
