package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/properties-service/internal/adapters/propertydoc"
	"real-estate-platform/services/properties-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `id, price, type, city, country, size, plot_size, bedrooms, bathrooms, toilets,
	floors, construction_year, renovation_year, energy_rating, parking_spaces, amenities, contact, listing_date`

// PostgresStorageAdapter хранит объявления в таблице properties
type PostgresStorageAdapter struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewPostgresStorageAdapter(pool *pgxpool.Pool) (*PostgresStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresStorageAdapter{pool: pool, now: time.Now}, nil
}

// Find возвращает все объявления, подходящие под предикат, новые первыми
func (a *PostgresStorageAdapter) Find(ctx context.Context, predicate domain.Predicate) ([]domain.Property, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"component": "PostgresStorageAdapter",
		"method":    "Find",
	})

	whereClause, args, err := applyPredicate(predicate)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM properties %s ORDER BY listing_date DESC, id ASC", propertyColumns, whereClause)
	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, logging.Fields{"query": query})
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}

	repoLogger.Debug("Properties found", logging.Fields{"count": len(properties)})
	return properties, nil
}

// Create проверяет тело по схеме и вставляет новую строку
func (a *PostgresStorageAdapter) Create(ctx context.Context, payload json.RawMessage) (*domain.Property, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"component": "PostgresStorageAdapter",
		"method":    "Create",
	})

	p, err := propertydoc.Decode(payload, a.now())
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	amenities := p.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	_, err = a.pool.Exec(ctx, query,
		p.ID, p.Price, string(p.Type), p.Location.City, p.Location.Country, p.Size, p.PlotSize,
		p.Bedrooms, p.Bathrooms, p.Toilets, p.Floors, p.ConstructionYear, p.RenovationYear,
		p.EnergyRating, p.ParkingSpaces, amenities, p.Contact, p.ListingDate,
	)
	if err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}

	repoLogger.Debug("Property inserted", logging.Fields{"property_id": p.ID.String()})
	return p, nil
}

func (a *PostgresStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"component":   "PostgresStorageAdapter",
		"method":      "Delete",
		"property_id": id.String(),
	})

	cmdTag, err := a.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		repoLogger.Error("Failed to delete property", err, nil)
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (a *PostgresStorageAdapter) Ping(ctx context.Context) error {
	return a.pool.Ping(ctx)
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var (
		p    domain.Property
		kind string
	)
	err := row.Scan(
		&p.ID, &p.Price, &kind, &p.Location.City, &p.Location.Country, &p.Size, &p.PlotSize,
		&p.Bedrooms, &p.Bathrooms, &p.Toilets, &p.Floors, &p.ConstructionYear, &p.RenovationYear,
		&p.EnergyRating, &p.ParkingSpaces, &p.Amenities, &p.Contact, &p.ListingDate,
	)
	if err != nil {
		return domain.Property{}, err
	}
	p.Type = domain.PropertyType(kind)
	if len(p.Amenities) == 0 {
		p.Amenities = nil
	}
	return p, nil
}
