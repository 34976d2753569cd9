package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"portfolio-backend/internal/domains/media/model"
	"portfolio-backend/internal/infrastructure/storage"
)

type ServiceInterface interface {
	Upload(ctx context.Context, folder string, data []byte) (*model.UploadResult, error)
	MaxSize() int64
}

type UploadService struct {
	store  storage.ObjectStorage
	images *storage.ImageProcessor
}

func NewUploadService(store storage.ObjectStorage, images *storage.ImageProcessor) *UploadService {
	return &UploadService{store: store, images: images}
}

func (s *UploadService) MaxSize() int64 {
	return s.images.MaxSize
}

// Upload validates the image, then stores the original and a JPEG
// thumbnail concurrently. If either upload fails the other is removed.
func (s *UploadService) Upload(ctx context.Context, folder string, data []byte) (*model.UploadResult, error) {
	folder, err := model.ParseFolder(folder)
	if err != nil {
		return nil, err
	}

	format, err := s.images.ValidateImage(data)
	if err != nil {
		return nil, err
	}

	thumb, err := s.images.Thumbnail(data)
	if err != nil {
		return nil, fmt.Errorf("generate thumbnail: %w", err)
	}

	ext, contentType := "jpg", "image/jpeg"
	if format == "png" {
		ext, contentType = "png", "image/png"
	}

	key := model.ObjectKey(folder, uuid.NewString(), ext)
	thumbKey, _ := model.ThumbnailKey(key)

	var result model.UploadResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		url, err := s.store.Upload(gctx, key, bytes.NewReader(data), int64(len(data)), contentType)
		result.URL = url
		return err
	})
	g.Go(func() error {
		url, err := s.store.Upload(gctx, thumbKey, bytes.NewReader(thumb), int64(len(thumb)), "image/jpeg")
		result.ThumbnailURL = url
		return err
	})
	if err := g.Wait(); err != nil {
		if rmErr := s.store.RemoveObjects(context.WithoutCancel(ctx), []string{key, thumbKey}); rmErr != nil {
			log.Warn().Err(rmErr).Str("key", key).Msg("failed to clean up partial upload")
		}
		return nil, fmt.Errorf("store upload: %w", err)
	}

	result.Key = key
	log.Info().Str("key", key).Int("size", len(data)).Msg("image uploaded")
	return &result, nil
}
