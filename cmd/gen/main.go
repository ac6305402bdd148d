package main

import (
	"cakes/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.AuthenticationModel{},
		model.RefreshTokenModel{},
		model.UserDeviceModel{},
		model.CategoryModel{},
		model.CakeModel{},
		model.AddonModel{},
		model.DeliveryAreaModel{},
		model.PromoCodeModel{},
		model.OrderModel{},
		model.WalletTransactionModel{},
		model.ReviewModel{},
		model.EventReminderModel{},
		model.NavigationItemModel{},
		model.PageModel{},
	}

	// Run from the repo root.
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)
	g.Execute()
}
