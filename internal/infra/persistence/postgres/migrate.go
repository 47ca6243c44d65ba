package postgres

import (
	"context"
	"log/slog"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Statements run after AutoMigrate. Generated columns and their indexes are
// outside what GORM tags can express.
var catalogDDL = []string{
	`ALTER TABLE stores ADD COLUMN IF NOT EXISTS location geography(Point, 4326)
		GENERATED ALWAYS AS (ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography) STORED`,
	`ALTER TABLE stores ADD COLUMN IF NOT EXISTS search tsvector
		GENERATED ALWAYS AS (
			setweight(to_tsvector('english', coalesce(name, '')), 'A') ||
			setweight(to_tsvector('english', coalesce(description, '')), 'B')
		) STORED`,
	`CREATE INDEX IF NOT EXISTS idx_stores_location ON stores USING GIST (location)`,
	`CREATE INDEX IF NOT EXISTS idx_stores_search ON stores USING GIN (search)`,
	`CREATE INDEX IF NOT EXISTS idx_stores_tags ON stores USING GIN (tags jsonb_path_ops)`,
}

// Migrate creates the catalog schema: PostGIS, the tables of the models and
// the generated search and location columns with their indexes.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	db = db.WithContext(ctx)

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
		return errors.Wrap(err, "failed to enable postgis")
	}

	if err := db.AutoMigrate(
		&model.StoreModel{},
		&model.ReviewModel{},
		&model.StoreHeartModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate catalog tables")
	}

	for _, stmt := range catalogDDL {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Wrapf(err, "failed to apply catalog DDL: %s", stmt)
		}
	}

	logger.Info("Catalog schema migrated")

	return nil
}
