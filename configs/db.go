package configs

import (
	"github.com/alvinmajawa241/foodlink/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the database. The handle is passed down explicitly; nothing
// in the tree holds a package-global connection.
func Connect(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Restaurant{}, &entity.MenuCategory{}, &entity.MenuItem{},
		&entity.ModifierGroup{}, &entity.ModifierOption{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemSelection{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{}, &entity.OrderEvent{},
		&entity.Promotion{},
		&entity.PaymentMethod{}, &entity.Payment{},
		&entity.Courier{}, &entity.CourierJob{},
		&entity.Review{},
	)
}
