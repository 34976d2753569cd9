package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/photo/model"
	"portfolio-backend/internal/shared/query"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/database"
)

const photoColumns = `id, title, description, image_url, thumbnail, category, tags,
	featured, visible, likes, views, created_at, updated_at`

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) Repository {
	return &postgresRepository{db: db}
}

func buildWhere(spec query.Spec) (string, []any) {
	var w utils.WhereBuilder
	for _, f := range spec.Filters {
		switch f := f.(type) {
		case query.CategoryFilter:
			w.Add("category = " + w.Arg(f.Value))
		case query.TagFilter:
			w.Add("EXISTS (SELECT 1 FROM unnest(tags) t WHERE lower(t) = " + w.Arg(f.Value) + ")")
		case query.SearchFilter:
			p := w.Arg("%" + utils.EscapeLike(f.Term) + "%")
			w.Add(utils.JoinWithOr([]string{"title ILIKE " + p, "description ILIKE " + p}))
		case query.FeaturedFilter:
			w.Add("featured = " + w.Arg(f.Value))
		case query.PublicOnlyFilter:
			w.Add("visible = TRUE")
		}
	}
	return w.SQL(), w.Args()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPhoto(row rowScanner) (*model.Photo, error) {
	var p model.Photo
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.ImageURL, &p.Thumbnail, &p.Category, (*[]string)(&p.Tags),
		&p.Featured, &p.Visible, &p.Likes, &p.Views, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepository) Count(ctx context.Context, spec query.Spec) (int, error) {
	where, args := buildWhere(spec)
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM photos "+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count photos: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) Find(ctx context.Context, spec query.Spec) ([]model.Photo, error) {
	where, args := buildWhere(spec)
	sql := fmt.Sprintf(
		"SELECT %s FROM photos %s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d",
		photoColumns, where, spec.Take(), spec.Skip(),
	)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query photos: %w", err)
	}
	defer rows.Close()

	photos := make([]model.Photo, 0, spec.Take())
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}
	return photos, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Photo, error) {
	row := r.db.QueryRow(ctx, "SELECT "+photoColumns+" FROM photos WHERE id = $1", id)
	p, err := scanPhoto(row)
	if database.IsNoRows(err) {
		return nil, model.ErrPhotoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find photo: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Photo) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO photos (`+photoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Title, p.Description, p.ImageURL, p.Thumbnail, p.Category, database.TextArray(p.Tags),
		p.Featured, p.Visible, p.Likes, p.Views, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Photo) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE photos SET
			title = $2, description = $3, image_url = $4, thumbnail = $5, category = $6,
			tags = $7, featured = $8, visible = $9, updated_at = $10
		WHERE id = $1`,
		p.ID, p.Title, p.Description, p.ImageURL, p.Thumbnail, p.Category,
		database.TextArray(p.Tags), p.Featured, p.Visible, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPhotoNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Photo, error) {
	row := r.db.QueryRow(ctx, "DELETE FROM photos WHERE id = $1 RETURNING "+photoColumns, id)
	p, err := scanPhoto(row)
	if database.IsNoRows(err) {
		return nil, model.ErrPhotoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete photo: %w", err)
	}
	return p, nil
}
