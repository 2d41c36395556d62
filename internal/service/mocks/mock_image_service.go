package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"founderhub/internal/model"
	"founderhub/internal/service"
)

type MockImageService struct {
	mock.Mock
}

var _ service.ImageService = (*MockImageService)(nil)

func (m *MockImageService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Image, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}
