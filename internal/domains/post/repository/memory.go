package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/post/model"
	"portfolio-backend/internal/infrastructure/memstore"
	"portfolio-backend/internal/shared/query"
	"portfolio-backend/internal/shared/utils"
)

type memoryRepository struct {
	// serializes writes so slug uniqueness and taxonomy reuse hold
	mu         sync.Mutex
	posts      *memstore.Table[model.Post]
	categories *memstore.Table[model.BlogCategory]
	tags       *memstore.Table[model.BlogTag]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		posts:      memstore.NewTable(model.Post.Clone),
		categories: memstore.NewTable[model.BlogCategory](nil),
		tags:       memstore.NewTable[model.BlogTag](nil),
	}
}

func matches(p model.Post, spec query.Spec) bool {
	for _, f := range spec.Filters {
		switch f := f.(type) {
		case query.CategoryFilter:
			if p.Category == nil || p.Category.Slug != utils.GenerateSlug(f.Value) {
				return false
			}
		case query.TagFilter:
			slug := utils.GenerateSlug(f.Value)
			if !slices.ContainsFunc(p.Tags, func(t model.BlogTag) bool { return t.Slug == slug }) {
				return false
			}
		case query.SearchFilter:
			term := strings.ToLower(f.Term)
			fields := []string{p.Title, utils.StringValue(p.Excerpt), p.Content}
			if !slices.ContainsFunc(fields, func(s string) bool { return strings.Contains(strings.ToLower(s), term) }) {
				return false
			}
		case query.FeaturedFilter:
			if p.Featured != f.Value {
				return false
			}
		case query.PublicOnlyFilter:
			if !p.Published {
				return false
			}
		}
	}
	return true
}

func (r *memoryRepository) Count(ctx context.Context, spec query.Spec) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return r.posts.Count(func(p model.Post) bool { return matches(p, spec) }), nil
}

func (r *memoryRepository) Find(ctx context.Context, spec query.Spec) ([]model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := r.posts.Select(func(p model.Post) bool { return matches(p, spec) })
	slices.SortFunc(rows, func(a, b model.Post) int {
		if c := b.SortTime().Compare(a.SortTime()); c != 0 {
			return c
		}
		return strings.Compare(b.ID.String(), a.ID.String())
	})
	return memstore.Paginate(rows, spec.Skip(), spec.Take()), nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := r.posts.Get(id)
	if !ok {
		return nil, model.ErrPostNotFound
	}
	return &p, nil
}

func (r *memoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := r.posts.FindFirst(func(p model.Post) bool { return p.Slug == slug })
	if !ok {
		return nil, model.ErrPostNotFound
	}
	return &p, nil
}

func (r *memoryRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, ok := r.posts.FindFirst(func(p model.Post) bool { return p.Slug == slug })
	return ok, nil
}

func (r *memoryRepository) Create(ctx context.Context, p *model.Post, taxonomy model.TaxonomyInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.posts.FindFirst(func(other model.Post) bool { return other.Slug == p.Slug }); taken {
		return model.ErrSlugTaken
	}

	r.resolveTaxonomy(p, taxonomy)
	if err := r.posts.Insert(p.ID, *p); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, p *model.Post, taxonomy model.TaxonomyInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts.Get(p.ID); !ok {
		return model.ErrPostNotFound
	}

	r.resolveTaxonomy(p, taxonomy)
	_, err := r.posts.Update(p.ID, func(stored *model.Post) error {
		createdAt, slug := stored.CreatedAt, stored.Slug
		*stored = p.Clone()
		stored.CreatedAt = createdAt
		stored.Slug = slug
		return nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		return model.ErrPostNotFound
	}
	return err
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := r.posts.Delete(id)
	if !ok {
		return nil, model.ErrPostNotFound
	}
	return &p, nil
}

func (r *memoryRepository) ListCategories(ctx context.Context) ([]model.BlogCategory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := r.categories.Select(nil)
	slices.SortFunc(out, func(a, b model.BlogCategory) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (r *memoryRepository) ListTags(ctx context.Context) ([]model.BlogTag, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := r.tags.Select(nil)
	slices.SortFunc(out, func(a, b model.BlogTag) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

// resolveTaxonomy must be called with r.mu held.
func (r *memoryRepository) resolveTaxonomy(p *model.Post, taxonomy model.TaxonomyInput) {
	if taxonomy.Category != nil {
		p.Category = nil
		if slug := utils.GenerateSlug(*taxonomy.Category); slug != "" {
			c, ok := r.categories.FindFirst(func(c model.BlogCategory) bool { return c.Slug == slug })
			if !ok {
				c = model.BlogCategory{ID: uuid.New(), Name: *taxonomy.Category, Slug: slug}
				_ = r.categories.Insert(c.ID, c)
			}
			p.Category = &c
		}
	}

	if taxonomy.Tags != nil {
		tags := make([]model.BlogTag, 0, len(*taxonomy.Tags))
		for _, name := range *taxonomy.Tags {
			slug := utils.GenerateSlug(name)
			if slug == "" {
				continue
			}
			t, ok := r.tags.FindFirst(func(t model.BlogTag) bool { return t.Slug == slug })
			if !ok {
				t = model.BlogTag{ID: uuid.New(), Name: name, Slug: slug}
				_ = r.tags.Insert(t.ID, t)
			}
			if !slices.ContainsFunc(tags, func(existing model.BlogTag) bool { return existing.ID == t.ID }) {
				tags = append(tags, t)
			}
		}
		p.Tags = tags
	}
}
