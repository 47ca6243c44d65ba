package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the catalog tables. The repositories use
// hand-written GORM queries for the PostGIS and full-text parts; the output is
// meant for ad-hoc tooling and admin scripts.
func main() {
	models := []any{
		model.StoreModel{},
		model.ReviewModel{},
		model.StoreHeartModel{},
	}

	generator := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	generator.ApplyBasic(models...)

	generator.Execute()
}
