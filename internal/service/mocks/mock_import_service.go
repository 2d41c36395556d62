package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/importer"
	"founderhub/internal/service"
)

type MockImportService struct {
	mock.Mock
}

var _ service.ImportService = (*MockImportService)(nil)

func (m *MockImportService) Import(ctx context.Context, kind importer.Kind, r io.Reader, dryRun bool) (*importer.Summary, error) {
	args := m.Called(ctx, kind, r, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*importer.Summary), args.Error(1)
}
