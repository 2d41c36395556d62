package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"founderhub/internal/model"
	"founderhub/internal/storage"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported image type")
	ErrFileTooLarge         = errors.New("file too large")
	ErrEmptyFile            = errors.New("file is empty")
)

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageService stores founder pictures and startup logos in object storage.
type ImageService interface {
	// Upload stores the image under a generated key and returns a presigned URL for it.
	// If the URL cannot be signed the object is removed again.
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Image, error)
}

type imageService struct {
	store   storage.Storage
	maxSize int64
	ttl     time.Duration
}

func NewImageService(store storage.Storage, maxSize int64, ttl time.Duration) ImageService {
	return &imageService{store: store, maxSize: maxSize, ttl: ttl}
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.Image, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if s.maxSize > 0 && size > s.maxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, size, s.maxSize)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, contentType)
	}
	ext, ok := imageExt[strings.ToLower(mediaType)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMediaType, mediaType)
	}

	key := path.Join("images", uuid.New().String()+ext)
	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: mediaType,
		Metadata: map[string]string{
			"original-filename": path.Base(originalFilename),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, s.ttl)
	if err != nil {
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	return &model.Image{
		Key:         info.Key,
		URL:         url,
		ContentType: mediaType,
		Size:        info.Size,
	}, nil
}
