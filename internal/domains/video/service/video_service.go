package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/video/model"
	"portfolio-backend/internal/domains/video/repository"
	"portfolio-backend/internal/shared/query"
	"portfolio-backend/internal/shared/utils"
)

var QueryOptions = query.Options{DefaultLimit: 12, CategoryCase: query.CategoryUpper}

type VideoService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewService(repo repository.Repository) *VideoService {
	return &VideoService{repo: repo, now: time.Now}
}

func (s *VideoService) List(ctx context.Context, spec query.Spec) (query.Page[model.VideoResponse], error) {
	page, err := query.FetchPage[model.Video](ctx, s.repo, spec)
	if err != nil {
		return query.Page[model.VideoResponse]{}, err
	}
	return query.Map(page, model.ToResponse), nil
}

func (s *VideoService) Get(ctx context.Context, id uuid.UUID, publicOnly bool) (*model.VideoResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if publicOnly && !v.Visible {
		return nil, model.ErrVideoNotFound
	}
	resp := model.ToResponse(*v)
	return &resp, nil
}

// Create derives the YouTube identifier and, unless one is supplied, the thumbnail.
func (s *VideoService) Create(ctx context.Context, req model.CreateVideoRequest) (*model.VideoResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	youtubeID, ok := model.ExtractYouTubeID(req.YoutubeURL)
	if !ok {
		return nil, model.ErrInvalidYouTubeURL
	}

	now := s.now().UTC()
	v := &model.Video{
		ID:        uuid.New(),
		Title:     req.Title,
		YoutubeID: &youtubeID,
		Category:  model.DefaultCategory,
		Tags:      req.Tags,
		Visible:   true,
		Duration:  req.Duration,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Description != nil {
		v.Description = utils.NilIfEmpty(*req.Description)
	}
	if req.VideoURL != nil {
		v.VideoURL = utils.NilIfEmpty(*req.VideoURL)
	}
	thumbnail := model.YouTubeThumbnailURL(youtubeID)
	if req.Thumbnail != nil && *req.Thumbnail != "" {
		thumbnail = *req.Thumbnail
	}
	v.Thumbnail = &thumbnail
	if req.Category != nil && *req.Category != "" {
		v.Category = model.Category(*req.Category)
	}
	if req.Featured != nil {
		v.Featured = *req.Featured
	}
	if req.Visible != nil {
		v.Visible = *req.Visible
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	log.Info().Str("video_id", v.ID.String()).Str("youtube_id", youtubeID).Msg("video created")
	resp := model.ToResponse(*v)
	return &resp, nil
}

// Update re-derives the identifier when youtubeUrl is sent, and the
// thumbnail too unless the same request supplies one.
func (s *VideoService) Update(ctx context.Context, id uuid.UUID, req model.UpdateVideoRequest) (*model.VideoResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var youtubeID string
	if req.YoutubeURL != nil {
		var ok bool
		if youtubeID, ok = model.ExtractYouTubeID(*req.YoutubeURL); !ok {
			return nil, model.ErrInvalidYouTubeURL
		}
	}

	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(v)
	if req.YoutubeURL != nil {
		v.YoutubeID = &youtubeID
		if req.Thumbnail == nil {
			thumbnail := model.YouTubeThumbnailURL(youtubeID)
			v.Thumbnail = &thumbnail
		}
	}
	v.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}

	resp := model.ToResponse(*v)
	return &resp, nil
}

func (s *VideoService) Delete(ctx context.Context, id uuid.UUID) (*model.VideoResponse, error) {
	v, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	log.Info().Str("video_id", v.ID.String()).Msg("video deleted")
	resp := model.ToResponse(*v)
	return &resp, nil
}
