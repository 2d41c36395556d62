package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"founderhub/internal/model"
	"founderhub/internal/repository"
	repoMocks "founderhub/internal/repository/mocks"
)

func TestTranslate(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		in   error
		want error
	}{
		{nil, nil},
		{sql.ErrNoRows, ErrNotFound},
		{fmt.Errorf("%w: founders_email_key", repository.ErrConflict), ErrConflict},
		{repository.ErrInvalidReference, ErrInvalidReference},
		{boom, boom},
	}
	for _, tt := range tests {
		got := translate(tt.in)
		if tt.want == nil {
			assert.NoError(t, got)
			continue
		}
		assert.ErrorIs(t, got, tt.want)
	}
}

func TestValidate_MessagesUseJSONNames(t *testing.T) {
	err := Validate(model.StartupInput{Name: "Acme", Stage: "unicorn", FoundedYear: 1800, Website: "nope"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []FieldError{
		{Field: "website", Message: "must be a valid URL"},
		{Field: "stage", Message: "must be one of: idea pre-seed seed series-a series-b growth"},
		{Field: "founded_year", Message: "must be at least 1900"},
	}, verr.Fields)
	assert.Contains(t, verr.Error(), "stage must be one of")
}

func TestStartupService(t *testing.T) {
	ctx := context.Background()

	t.Run("hidden startup is not found for members", func(t *testing.T) {
		mRepo := new(repoMocks.MockStartupRepository)
		mRepo.On("FindByID", ctx, "s1").Return(&model.Startup{ID: "s1"}, nil)

		_, err := NewStartupService(mRepo, zap.NewNop()).Get(ctx, member, "s1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update keeps visibility when omitted", func(t *testing.T) {
		mRepo := new(repoMocks.MockStartupRepository)
		mRepo.On("FindByID", ctx, "s1").Return(&model.Startup{ID: "s1", Name: "Acme", Visible: false}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(s *model.Startup) bool {
			return s.Name == "Acme Corp" && !s.Visible && s.Stage == "seed"
		})).Return(&model.Startup{ID: "s1", Name: "Acme Corp"}, nil)

		_, err := NewStartupService(mRepo, zap.NewNop()).Update(ctx, "s1", model.StartupInput{Name: "Acme Corp", Stage: "seed"})
		require.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("members only list visible startups", func(t *testing.T) {
		mRepo := new(repoMocks.MockStartupRepository)
		mRepo.On("List", ctx, mock.MatchedBy(func(q repository.ListQuery) bool {
			return q.Visibility == repository.VisibilityVisible
		})).Return(&repository.PageResult[model.Startup]{}, nil)

		res, err := NewStartupService(mRepo, zap.NewNop()).List(ctx, member, repository.ListQuery{Visibility: repository.VisibilityAll})
		require.NoError(t, err)
		assert.NotNil(t, res.Items)
	})

	t.Run("delete missing", func(t *testing.T) {
		mRepo := new(repoMocks.MockStartupRepository)
		mRepo.On("Delete", ctx, "gone").Return(sql.ErrNoRows)

		assert.ErrorIs(t, NewStartupService(mRepo, zap.NewNop()).Delete(ctx, "gone"), ErrNotFound)
	})
}

func TestSkillAndHobbyServices(t *testing.T) {
	ctx := context.Background()

	mSkills := new(repoMocks.MockSkillRepository)
	mSkills.On("Create", ctx, mock.MatchedBy(func(s *model.Skill) bool {
		return s.Name == "Go" && s.Category == "Engineering" && s.ID != ""
	})).Return(&model.Skill{ID: "k1", Name: "Go"}, nil)
	mSkills.On("FindByID", ctx, "missing").Return(nil, sql.ErrNoRows)

	skills := NewSkillService(mSkills)
	sk, err := skills.Create(ctx, model.SkillInput{Name: " Go ", Category: "Engineering "})
	require.NoError(t, err)
	assert.Equal(t, "k1", sk.ID)

	_, err = skills.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	mHobbies := new(repoMocks.MockHobbyRepository)
	mHobbies.On("Create", ctx, mock.Anything).Return(nil, repository.ErrConflict)

	_, err = NewHobbyService(mHobbies).Create(ctx, model.HobbyInput{Name: "Climbing"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = NewHobbyService(mHobbies).Create(ctx, model.HobbyInput{Name: "   "})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
