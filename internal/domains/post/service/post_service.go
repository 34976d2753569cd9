package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/post/model"
	"portfolio-backend/internal/domains/post/repository"
	"portfolio-backend/internal/shared"
	"portfolio-backend/internal/shared/query"
	"portfolio-backend/internal/shared/utils"
)

var QueryOptions = query.Options{DefaultLimit: 12, CategoryCase: query.CategoryLower}

const (
	// fallbackSlug is used when a title has no ASCII-foldable characters.
	fallbackSlug = "post"
	// maxSlugAttempts bounds the -2, -3, ... suffix search.
	maxSlugAttempts = 100
	// createAttempts retries a create that lost a slug race.
	createAttempts = 3
)

type PostService struct {
	repo    repository.Repository
	cleaner shared.MediaCleaner
	now     func() time.Time
}

func NewService(repo repository.Repository, cleaner shared.MediaCleaner) *PostService {
	return &PostService{repo: repo, cleaner: cleaner, now: time.Now}
}

func (s *PostService) List(ctx context.Context, spec query.Spec) (query.Page[model.PostResponse], error) {
	page, err := query.FetchPage[model.Post](ctx, s.repo, spec)
	if err != nil {
		return query.Page[model.PostResponse]{}, err
	}
	return query.Map(page, model.ToResponse), nil
}

func (s *PostService) Get(ctx context.Context, id uuid.UUID, publicOnly bool) (*model.PostResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.visible(p, publicOnly)
}

func (s *PostService) GetBySlug(ctx context.Context, slug string, publicOnly bool) (*model.PostResponse, error) {
	p, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.visible(p, publicOnly)
}

func (s *PostService) visible(p *model.Post, publicOnly bool) (*model.PostResponse, error) {
	if publicOnly && !p.Published {
		return nil, model.ErrPostNotFound
	}
	resp := model.ToResponse(*p)
	return &resp, nil
}

// UniqueSlug returns base, or base-2, base-3, ... for the first free slug.
func (s *PostService) UniqueSlug(ctx context.Context, base string) (string, error) {
	if base == "" {
		base = fallbackSlug
	}
	for n := 1; n <= maxSlugAttempts; n++ {
		candidate := utils.SlugWithSuffix(base, n)
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: no free suffix for %q", model.ErrSlugTaken, base)
}

func (s *PostService) Create(ctx context.Context, req model.CreatePostRequest) (*model.PostResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	p := &model.Post{
		ID:              uuid.New(),
		Title:           req.Title,
		Content:         req.Content,
		Excerpt:         nilIfEmpty(req.Excerpt),
		CoverImage:      nilIfEmpty(req.CoverImage),
		ReadingTime:     model.ReadingTime(req.Content),
		MetaTitle:       nilIfEmpty(req.MetaTitle),
		MetaDescription: nilIfEmpty(req.MetaDescription),
		MetaKeywords:    nilIfEmpty(req.MetaKeywords),
		OGImage:         nilIfEmpty(req.OGImage),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Featured != nil {
		p.Featured = *req.Featured
	}
	if req.Published != nil && *req.Published {
		p.Published = true
		p.PublishedAt = &now
	}

	base := utils.GenerateSlug(req.Title)
	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		if p.Slug, err = s.UniqueSlug(ctx, base); err != nil {
			return nil, err
		}
		err = s.repo.Create(ctx, p, req.Taxonomy())
		if !errors.Is(err, model.ErrSlugTaken) {
			break
		}
		log.Warn().Str("slug", p.Slug).Msg("post slug taken concurrently, retrying")
	}
	if err != nil {
		return nil, err
	}

	log.Info().Str("post_id", p.ID.String()).Str("slug", p.Slug).Msg("post created")
	resp := model.ToResponse(*p)
	return &resp, nil
}

// Update never changes the slug. publishedAt is set the first time the
// post is published and kept afterwards.
func (s *PostService) Update(ctx context.Context, id uuid.UUID, req model.UpdatePostRequest) (*model.PostResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	req.Apply(p)
	if req.Content != nil {
		p.ReadingTime = model.ReadingTime(p.Content)
	}
	if p.Published && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
	p.UpdatedAt = now

	if err := s.repo.Update(ctx, p, req.Taxonomy()); err != nil {
		return nil, err
	}

	resp := model.ToResponse(*p)
	return &resp, nil
}

// Delete hard-deletes and schedules removal of the cover and OG images.
func (s *PostService) Delete(ctx context.Context, id uuid.UUID) (*model.PostResponse, error) {
	p, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if urls := p.MediaURLs(); s.cleaner != nil && len(urls) > 0 {
		s.cleaner.ScheduleDelete(ctx, urls...)
	}

	log.Info().Str("post_id", p.ID.String()).Msg("post deleted")
	resp := model.ToResponse(*p)
	return &resp, nil
}

func (s *PostService) ListCategories(ctx context.Context) ([]model.BlogCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *PostService) ListTags(ctx context.Context) ([]model.BlogTag, error) {
	return s.repo.ListTags(ctx)
}

func nilIfEmpty(s *string) *string {
	if s == nil {
		return nil
	}
	return utils.NilIfEmpty(*s)
}
