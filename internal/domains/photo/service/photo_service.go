package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/photo/model"
	"portfolio-backend/internal/domains/photo/repository"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/query"
	"portfolio-backend/internal/shared/utils"
)

// QueryOptions are the list defaults for photos.
var QueryOptions = query.Options{DefaultLimit: 20, CategoryCase: query.CategoryUpper}

type PhotoService struct {
	repo    repository.Repository
	cleaner shared.MediaCleaner
	now     func() time.Time
}

func NewService(repo repository.Repository, cleaner shared.MediaCleaner) *PhotoService {
	return &PhotoService{repo: repo, cleaner: cleaner, now: time.Now}
}

func (s *PhotoService) List(ctx context.Context, spec query.Spec) (query.Page[model.PhotoResponse], error) {
	page, err := query.FetchPage[model.Photo](ctx, s.repo, spec)
	if err != nil {
		return query.Page[model.PhotoResponse]{}, err
	}
	return query.Map(page, model.ToResponse), nil
}

func (s *PhotoService) Get(ctx context.Context, id uuid.UUID, publicOnly bool) (*model.PhotoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publicOnly && !p.Visible {
		return nil, model.ErrPhotoNotFound
	}
	resp := model.ToResponse(*p)
	return &resp, nil
}

func (s *PhotoService) Create(ctx context.Context, req model.CreatePhotoRequest) (*model.PhotoResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	p := &model.Photo{
		ID:        uuid.New(),
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		Category:  model.DefaultCategory,
		Tags:      req.Tags,
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != nil {
		p.Description = utils.NilIfEmpty(*req.Description)
	}
	if req.Thumbnail != nil {
		p.Thumbnail = utils.NilIfEmpty(*req.Thumbnail)
	}
	if req.Category != nil && *req.Category != "" {
		p.Category = model.Category(*req.Category)
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Visible != nil {
		p.Visible = *req.Visible
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	log.Info().Str("photo_id", p.ID.String()).Msg("photo created")
	resp := model.ToResponse(*p)
	return &resp, nil
}

func (s *PhotoService) Update(ctx context.Context, id uuid.UUID, req model.UpdatePhotoRequest) (*model.PhotoResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(p)
	p.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	resp := model.ToResponse(*p)
	return &resp, nil
}

// Delete hard-deletes and schedules removal of the stored image files.
func (s *PhotoService) Delete(ctx context.Context, id uuid.UUID) (*model.PhotoResponse, error) {
	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cleaner != nil {
		s.cleaner.ScheduleDelete(ctx, p.MediaURLs()...)
	}

	log.Info().Str("photo_id", p.ID.String()).Msg("photo deleted")
	resp := model.ToResponse(*p)
	return &resp, nil
}
