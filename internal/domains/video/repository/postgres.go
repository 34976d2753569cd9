package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/video/model"
	"portfolio-backend/internal/shared/query"
	"portfolio-backend/internal/shared/utils"
	"portfolio-backend/pkg/database"
)

const videoColumns = `id, title, description, youtube_id, video_url, thumbnail, category, tags,
	featured, visible, duration, created_at, updated_at`

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

func scanVideo(row rowScanner) (*model.Video, error) {
	var v model.Video
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.YoutubeID, &v.VideoURL, &v.Thumbnail, &v.Category,
		(*[]string)(&v.Tags), &v.Featured, &v.Visible, &v.Duration, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *postgresRepository) Count(ctx context.Context, spec query.Spec) (int, error) {
	where, args := buildWhere(spec)
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM videos "+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count videos: %w", err)
	}
	return total, nil
}

func (r *postgresRepository) Find(ctx context.Context, spec query.Spec) ([]model.Video, error) {
	where, args := buildWhere(spec)
	sql := fmt.Sprintf(
		"SELECT %s FROM videos %s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d",
		videoColumns, where, spec.Take(), spec.Skip(),
	)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query videos: %w", err)
	}
	defer rows.Close()

	videos := make([]model.Video, 0, spec.Take())
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}
	return videos, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	v, err := scanVideo(r.db.QueryRow(ctx, "SELECT "+videoColumns+" FROM videos WHERE id = $1", id))
	if database.IsNoRows(err) {
		return nil, model.ErrVideoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find video: %w", err)
	}
	return v, nil
}

func (r *postgresRepository) Create(ctx context.Context, v *model.Video) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO videos (`+videoColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		v.ID, v.Title, v.Description, v.YoutubeID, v.VideoURL, v.Thumbnail, v.Category,
		database.TextArray(v.Tags), v.Featured, v.Visible, v.Duration, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert video: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, v *model.Video) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE videos SET
			title = $2, description = $3, youtube_id = $4, video_url = $5, thumbnail = $6,
			category = $7, tags = $8, featured = $9, visible = $10, duration = $11, updated_at = $12
		WHERE id = $1`,
		v.ID, v.Title, v.Description, v.YoutubeID, v.VideoURL, v.Thumbnail,
		v.Category, database.TextArray(v.Tags), v.Featured, v.Visible, v.Duration, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update video: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrVideoNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	v, err := scanVideo(r.db.QueryRow(ctx, "DELETE FROM videos WHERE id = $1 RETURNING "+videoColumns, id))
	if database.IsNoRows(err) {
		return nil, model.ErrVideoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("delete video: %w", err)
	}
	return v, nil
}
