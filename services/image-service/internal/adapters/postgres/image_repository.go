package postgres

import (
	"context"
	"errors"
	"fmt"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/image-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const imageColumns = "id, property_id, filename, original_name, mimetype, size, url, thumbnail_url, created_at"

// ImageRepository хранит записи в таблице images
type ImageRepository struct {
	pool *pgxpool.Pool
}

func NewImageRepository(pool *pgxpool.Pool) (*ImageRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ImageRepository{pool: pool}, nil
}

func (r *ImageRepository) Save(ctx context.Context, image domain.Image) error {
	query := "INSERT INTO images (" + imageColumns + ") VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)"
	_, err := r.pool.Exec(ctx, query,
		image.ID, image.PropertyID, image.Filename, image.OriginalName, image.MimeType,
		image.Size, image.URL, image.ThumbnailURL, image.CreatedAt,
	)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to insert image", err, logging.Fields{
			"component": "PostgresImageRepository",
			"image_id":  image.ID.String(),
		})
		return fmt.Errorf("failed to insert image: %w", err)
	}
	return nil
}

func (r *ImageRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]domain.Image, error) {
	query := "SELECT " + imageColumns + " FROM images WHERE property_id = $1 ORDER BY created_at ASC, id ASC"
	rows, err := r.pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query images: %w", err)
	}
	defer rows.Close()

	images := make([]domain.Image, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during images iteration: %w", err)
	}
	return images, nil
}

func (r *ImageRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Image, error) {
	query := "DELETE FROM images WHERE id = $1 RETURNING " + imageColumns
	img, err := scanImage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete image: %w", err)
	}
	return &img, nil
}

func (r *ImageRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanImage(row pgx.Row) (domain.Image, error) {
	var img domain.Image
	err := row.Scan(
		&img.ID, &img.PropertyID, &img.Filename, &img.OriginalName, &img.MimeType,
		&img.Size, &img.URL, &img.ThumbnailURL, &img.CreatedAt,
	)
	img.CreatedAt = img.CreatedAt.UTC()
	return img, err
}
