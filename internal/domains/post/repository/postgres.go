package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"portfolio-backend/internal/domains/post/model"
	"portfolio-backend/internal/shared/query"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/database"
)

const (
	postColumns = `p.id, p.title, p.slug, p.content, p.excerpt, p.cover_image, p.published, p.featured,
	p.published_at, p.reading_time, p.meta_title, p.meta_description, p.meta_keywords, p.og_image,
	p.created_at, p.updated_at, c.id, c.name, c.slug`
	postFrom = `posts p LEFT JOIN blog_categories c ON c.id = p.category_id`

	slugConstraint = "posts_slug_key"
)

type postgresRepository struct {
	db database.DB
}

func NewPostgresRepository(db database.DB) Repository {
	return &postgresRepository{db: db}
}

func buildWhere(spec query.Spec) (string, []any) {
	var w utils.WhereBuilder
	for _, f := range spec.Filters {
		switch f := f.(type) {
		case query.CategoryFilter:
			w.Add("c.slug = " + w.Arg(utils.GenerateSlug(f.Value)))
		case query.TagFilter:
			w.Add(`EXISTS (SELECT 1 FROM post_tags pt JOIN blog_tags t ON t.id = pt.tag_id
				WHERE pt.post_id = p.id AND t.slug = ` + w.Arg(utils.GenerateSlug(f.Value)) + ")")
		case query.SearchFilter:
			s := w.Arg("%" + utils.EscapeLike(f.Term) + "%")
			w.Add(utils.JoinWithOr([]string{"p.title ILIKE " + s, "p.excerpt ILIKE " + s, "p.content ILIKE " + s}))
		case query.FeaturedFilter:
			w.Add("p.featured = " + w.Arg(f.Value))
		case query.PublicOnlyFilter:
			w.Add("p.published = TRUE")
		}
	}
	return w.SQL(), w.Args()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*model.Post, error) {
	var (
		p       model.Post
		catID   uuid.NullUUID
		catName *string
		catSlug *string
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.CoverImage, &p.Published, &p.Featured,
		&p.PublishedAt, &p.ReadingTime, &p.MetaTitle, &p.MetaDescription, &p.MetaKeywords, &p.OGImage,
		&p.CreatedAt, &p.UpdatedAt, &catID, &catName, &catSlug,
	)
	if err != nil {
		return nil, err
	}
	if catID.Valid {
		p.Category = &model.BlogCategory{
			ID:   catID.UUID,
			Name: utils.StringValue(catName),
			Slug: utils.StringValue(catSlug),
		}
	}
	return &p, nil
}

// attachTags loads the tags of every post in one query.
func attachTags(ctx context.Context, db database.DBTX, posts []model.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, len(posts))
	index := make(map[uuid.UUID]int, len(posts))
	for i, p := range posts {
		ids[i] = p.ID.String()
		index[p.ID] = i
		posts[i].Tags = []model.BlogTag{}
	}

	rows, err := db.Query(ctx, `
		SELECT pt.post_id, t.id, t.name, t.slug
		FROM post_tags pt JOIN blog_tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1::uuid[])
		ORDER BY t.name`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("query post tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID uuid.UUID
			tag    model.BlogTag
		)
		if err := rows.Scan(&postID, &tag.ID, &tag.Name, &tag.Slug); err != nil {
			return fmt.Errorf("scan post tag: %w", err)
		}
		if i, ok := index[postID]; ok {
			posts[i].Tags = append(posts[i].Tags, tag)
		}
	}
	return rows.Err()
}

func (r *postgresRepository) Count(ctx context.Context, spec query.Spec) (int, error) {
	where, args := buildWhere(spec)
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+postFrom+" "+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) Find(ctx context.Context, spec query.Spec) ([]model.Post, error) {
	where, args := buildWhere(spec)
	sql := fmt.Sprintf(
		"SELECT %s FROM %s %s ORDER BY COALESCE(p.published_at, p.created_at) DESC, p.id DESC LIMIT %d OFFSET %d",
		postColumns, postFrom, where, spec.Take(), spec.Skip(),
	)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0, spec.Take())
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	rows.Close()

	if err := attachTags(ctx, r.db, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postgresRepository) findOne(ctx context.Context, column string, value any) (*model.Post, error) {
	p, err := scanPost(r.db.QueryRow(ctx,
		"SELECT "+postColumns+" FROM "+postFrom+" WHERE p."+column+" = $1", value))
	if database.IsNoRows(err) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}

	posts := []model.Post{*p}
	if err := attachTags(ctx, r.db, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return r.findOne(ctx, "id", id)
}

func (r *postgresRepository) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	return r.findOne(ctx, "slug", slug)
}

func (r *postgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM posts WHERE slug = $1)", slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check post slug: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Post, taxonomy model.TaxonomyInput) error {
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if err := resolveCategory(ctx, tx, p, taxonomy.Category); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO posts (
				id, title, slug, content, excerpt, cover_image, category_id, published, featured,
				published_at, reading_time, meta_title, meta_description, meta_keywords, og_image,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.CoverImage, categoryID(p), p.Published, p.Featured,
			p.PublishedAt, p.ReadingTime, p.MetaTitle, p.MetaDescription, p.MetaKeywords, p.OGImage,
			p.CreatedAt, p.UpdatedAt,
		)
		if database.IsUniqueViolation(err, slugConstraint) {
			return model.ErrSlugTaken
		}
		if err != nil {
			return fmt.Errorf("insert post: %w", err)
		}

		return replaceTags(ctx, tx, p, taxonomy.Tags)
	})
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Post, taxonomy model.TaxonomyInput) error {
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if err := resolveCategory(ctx, tx, p, taxonomy.Category); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
			UPDATE posts SET
				title = $2, content = $3, excerpt = $4, cover_image = $5, category_id = $6,
				published = $7, featured = $8, published_at = $9, reading_time = $10,
				meta_title = $11, meta_description = $12, meta_keywords = $13, og_image = $14,
				updated_at = $15
			WHERE id = $1`,
			p.ID, p.Title, p.Content, p.Excerpt, p.CoverImage, categoryID(p),
			p.Published, p.Featured, p.PublishedAt, p.ReadingTime,
			p.MetaTitle, p.MetaDescription, p.MetaKeywords, p.OGImage,
			p.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update post: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrPostNotFound
		}

		return replaceTags(ctx, tx, p, taxonomy.Tags)
	})
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// post_tags rows go with the post (ON DELETE CASCADE)
	tag, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, model.ErrPostNotFound
	}
	return p, nil
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]model.BlogCategory, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, slug FROM blog_categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query blog categories: %w", err)
	}
	defer rows.Close()

	out := []model.BlogCategory{}
	for rows.Next() {
		var c model.BlogCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, fmt.Errorf("scan blog category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepository) ListTags(ctx context.Context) ([]model.BlogTag, error) {
	rows, err := r.db.Query(ctx, "SELECT id, name, slug FROM blog_tags ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query blog tags: %w", err)
	}
	defer rows.Close()

	out := []model.BlogTag{}
	for rows.Next() {
		var t model.BlogTag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, fmt.Errorf("scan blog tag: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func categoryID(p *model.Post) *uuid.UUID {
	if p.Category == nil {
		return nil
	}
	id := p.Category.ID
	return &id
}

// The no-op DO UPDATE makes RETURNING yield the existing row on conflict.
const (
	upsertCategorySQL = `
		INSERT INTO blog_categories (id, name, slug) VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
		RETURNING id, name, slug`
	upsertTagSQL = `
		INSERT INTO blog_tags (id, name, slug) VALUES ($1, $2, $3)
		ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
		RETURNING id, name, slug`
)

func resolveCategory(ctx context.Context, tx database.DBTX, p *model.Post, name *string) error {
	if name == nil {
		return nil
	}
	slug := utils.GenerateSlug(*name)
	if slug == "" {
		p.Category = nil
		return nil
	}

	var c model.BlogCategory
	if err := tx.QueryRow(ctx, upsertCategorySQL, uuid.New(), *name, slug).Scan(&c.ID, &c.Name, &c.Slug); err != nil {
		return fmt.Errorf("upsert blog category: %w", err)
	}
	p.Category = &c
	return nil
}

func replaceTags(ctx context.Context, tx database.DBTX, p *model.Post, names *[]string) error {
	if names == nil {
		return nil
	}

	if _, err := tx.Exec(ctx, "DELETE FROM post_tags WHERE post_id = $1", p.ID); err != nil {
		return fmt.Errorf("clear post tags: %w", err)
	}

	tags := make([]model.BlogTag, 0, len(*names))
	for _, name := range *names {
		slug := utils.GenerateSlug(name)
		if slug == "" {
			continue
		}

		var t model.BlogTag
		if err := tx.QueryRow(ctx, upsertTagSQL, uuid.New(), name, slug).Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return fmt.Errorf("upsert blog tag: %w", err)
		}
		if _, err := tx.Exec(ctx,
			"INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING", p.ID, t.ID,
		); err != nil {
			return fmt.Errorf("link post tag: %w", err)
		}
		tags = append(tags, t)
	}
	p.Tags = tags
	return nil
}
