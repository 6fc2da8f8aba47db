package main

import (
	"zeneasy/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates type-safe query builders for the persistence models.
func main() {
	models := []any{
		model.UserModel{},
		model.RentListingModel{},
		model.ServiceProfileModel{},
		model.ServiceRatingModel{},
		model.OwnerLinkModel{},
		model.FeedbackModel{},
		model.UserDeviceModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
