package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"founderhub/internal/importer"
	"founderhub/internal/model"
	repoMocks "founderhub/internal/repository/mocks"
)

const (
	goSkillID  = "3c1b3a52-8a0d-4d5e-bb0b-6a2cf3f6e001"
	acmeID     = "9a4e2a43-1d2c-4f0c-9d7e-0b5b2f1c7a02"
	existingID = "5f2d8e61-7c3b-4a9e-8f1d-3e4c5b6a7d03"
)

type importMocks struct {
	founders *repoMocks.MockFounderRepository
	startups *repoMocks.MockStartupRepository
	skills   *repoMocks.MockSkillRepository
}

func newImportMocks() importMocks {
	return importMocks{
		founders: new(repoMocks.MockFounderRepository),
		startups: new(repoMocks.MockStartupRepository),
		skills:   new(repoMocks.MockSkillRepository),
	}
}

func (m importMocks) service(log *zap.Logger) ImportService {
	return NewImportService(m.founders, m.startups, m.skills, log)
}

func TestImportService_Founders(t *testing.T) {
	ctx := context.Background()
	csv := strings.Join([]string{
		"Name,Email,Skills,Startup,Bio",
		"Ada Lovelace,ada@example.com,Go; go,Acme,",
		"Grace Hopper,grace@example.com,,,compilers",
		"Same Person,ADA@example.com,,,",
		"",
		"Linus,linus@example.com,Kernel hacking,,",
		"No Email,,,,",
		"Alan Turing,alan@example.com,,Unknown Co,",
	}, "\n")

	m := newImportMocks()
	m.skills.On("FindByName", ctx, "Go").Return(&model.Skill{ID: goSkillID, Name: "Go"}, nil).Once()
	m.skills.On("FindByName", ctx, "Kernel hacking").Return(nil, sql.ErrNoRows).Once()
	m.startups.On("FindByName", ctx, "Acme").Return(&model.Startup{ID: acmeID, Name: "Acme"}, nil).Once()
	m.startups.On("FindByName", ctx, "Unknown Co").Return(nil, sql.ErrNoRows).Once()

	m.founders.On("FindByEmail", ctx, "ada@example.com").Return(nil, sql.ErrNoRows)
	m.founders.On("FindByEmail", ctx, "grace@example.com").Return(&model.Founder{
		ID: existingID, Name: "Grace Hopper", Email: "grace@example.com", Visible: true,
		SkillIDs: []string{}, HobbyIDs: []string{},
	}, nil)
	m.founders.On("FindByEmail", ctx, "linus@example.com").Return(nil, sql.ErrNoRows)
	m.founders.On("FindByEmail", ctx, "alan@example.com").Return(nil, sql.ErrNoRows)

	m.founders.On("Create", ctx, mock.MatchedBy(func(f *model.Founder) bool {
		return f.Email == "ada@example.com" &&
			assert.ObjectsAreEqual([]string{goSkillID}, f.SkillIDs) &&
			f.StartupID != nil && *f.StartupID == acmeID &&
			f.Visible
	})).Return(&model.Founder{ID: "new"}, nil).Once()
	m.founders.On("Update", ctx, mock.MatchedBy(func(f *model.Founder) bool {
		return f.ID == existingID && f.Bio == "compilers"
	})).Return(&model.Founder{ID: existingID}, nil).Once()

	core, logs := observer.New(zapcore.InfoLevel)
	sum, err := m.service(zap.New(core)).Import(ctx, importer.KindFounders, strings.NewReader(csv), false)
	require.NoError(t, err)

	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, 1, sum.Created)
	assert.Equal(t, 1, sum.Updated)
	assert.Equal(t, 1, sum.Skipped)
	assert.Equal(t, 3, sum.Failed)
	assert.Equal(t, []importer.RowError{
		{Row: 6, Field: "skills", Message: "unknown skill: Kernel hacking"},
		{Row: 7, Field: "email", Message: "is required"},
		{Row: 8, Field: "startup", Message: "unknown startup: Unknown Co"},
	}, sum.Errors)

	require.Equal(t, 1, logs.FilterMessage("import finished").Len())
	m.founders.AssertExpectations(t)
	m.skills.AssertExpectations(t)
	m.startups.AssertExpectations(t)
}

func TestImportService_FoundersSkipsIdenticalRows(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()
	m.founders.On("FindByEmail", ctx, "grace@example.com").Return(&model.Founder{
		ID: existingID, Name: "Grace Hopper", Email: "grace@example.com", Bio: "compilers", Visible: false,
		SkillIDs: []string{}, HobbyIDs: []string{},
	}, nil)

	// Absent columns leave stored values alone, so the hidden flag and bio survive.
	sum, err := m.service(zap.NewNop()).Import(ctx, importer.KindFounders,
		strings.NewReader("name,email\nGrace Hopper,grace@example.com\n"), false)

	require.NoError(t, err)
	assert.Equal(t, 1, sum.Skipped)
	m.founders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestImportService_DryRun(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()
	m.startups.On("FindByName", ctx, "Acme").Return(&model.Startup{ID: acmeID, Name: "Acme", Stage: "seed", Visible: true}, nil)
	m.startups.On("FindByName", ctx, "Globex").Return(nil, sql.ErrNoRows)

	csv := "name,stage,founded_year\nAcme,series-a,2019\nGlobex,seed,2024\nInitech,unicorn,\n"
	m.startups.On("FindByName", ctx, "Initech").Return(nil, sql.ErrNoRows)

	sum, err := m.service(zap.NewNop()).Import(ctx, importer.KindStartups, strings.NewReader(csv), true)
	require.NoError(t, err)

	assert.True(t, sum.DryRun)
	assert.Equal(t, 1, sum.Updated)
	assert.Equal(t, 1, sum.Created)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, "stage", sum.Errors[0].Field)
	m.startups.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.startups.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestImportService_HeaderErrors(t *testing.T) {
	m := newImportMocks()
	_, err := m.service(zap.NewNop()).Import(context.Background(), importer.KindFounders, strings.NewReader("name,bio\nAda,x\n"), false)
	assert.ErrorIs(t, err, importer.ErrMissingColumn)

	_, err = m.service(zap.NewNop()).Import(context.Background(), importer.KindFounders, nil, false)
	assert.ErrorIs(t, err, ErrReaderNil)
}

func TestImportService_WriteFailureIsRowError(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()
	m.startups.On("FindByName", ctx, "Acme").Return(nil, sql.ErrNoRows)
	m.startups.On("Create", ctx, mock.Anything).Return(nil, errors.New("connection reset"))

	sum, err := m.service(zap.NewNop()).Import(ctx, importer.KindStartups, strings.NewReader("name\nAcme\n"), false)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, "could not be saved", sum.Errors[0].Message)
}

func TestImportService_LookupFailureAborts(t *testing.T) {
	ctx := context.Background()
	m := newImportMocks()
	m.startups.On("FindByName", ctx, "Acme").Return(nil, errors.New("db down"))

	_, err := m.service(zap.NewNop()).Import(ctx, importer.KindStartups, strings.NewReader("name\nAcme\n"), false)
	assert.ErrorContains(t, err, "row 2: db down")
}
