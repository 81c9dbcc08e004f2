package services

import (
	"path/filepath"
	"testing"

	"github.com/alvinmajawa241/foodlink/configs"
	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open("file:"+path+"?_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

// fixture is the shared demo dataset: two restaurants, a small menu with
// modifiers, and the two promo flavours.
type fixture struct {
	db *gorm.DB

	customer entity.User

	kitchen  entity.Restaurant
	pizzeria entity.Restaurant

	nyama      entity.MenuItem
	soda       entity.MenuItem
	margherita entity.MenuItem

	portion     entity.ModifierGroup
	portionHalf entity.ModifierOption
	portionFull entity.ModifierOption

	extras          entity.ModifierGroup
	extraKachumbari entity.ModifierOption
	extraUgali      entity.ModifierOption
	extraMukimo     entity.ModifierOption

	welcome entity.Promotion
	freeDel entity.Promotion
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{db: db}

	f.customer = entity.User{Email: "amina@example.com", Name: "Amina", Role: entity.RoleCustomer, Status: entity.UserActive}
	require.NoError(t, db.Create(&f.customer).Error)

	f.kitchen = entity.Restaurant{
		Name: "Mama Njeri's Kitchen", CuisineTypes: "Kenyan,Grill",
		DeliveryFee: 100, MinimumOrder: 300,
		PrepTimeMins: 20, DeliveryTimeMins: 30, IsOpen: true,
	}
	f.pizzeria = entity.Restaurant{
		Name: "Pizza Palace", CuisineTypes: "Italian",
		DeliveryFee: 150, MinimumOrder: 500,
		PrepTimeMins: 15, DeliveryTimeMins: 25, IsOpen: true,
	}
	require.NoError(t, db.Create(&f.kitchen).Error)
	require.NoError(t, db.Create(&f.pizzeria).Error)

	mains := entity.MenuCategory{Name: "Mains", RestaurantID: f.kitchen.ID}
	pizzas := entity.MenuCategory{Name: "Pizzas", RestaurantID: f.pizzeria.ID}
	require.NoError(t, db.Create(&mains).Error)
	require.NoError(t, db.Create(&pizzas).Error)

	f.nyama = entity.MenuItem{Name: "Nyama Choma", Price: 850, IsAvailable: true, CategoryID: mains.ID, RestaurantID: f.kitchen.ID}
	f.soda = entity.MenuItem{Name: "Soda", Price: 100, IsAvailable: true, CategoryID: mains.ID, RestaurantID: f.kitchen.ID}
	f.margherita = entity.MenuItem{Name: "Margherita", Price: 950, IsAvailable: true, CategoryID: pizzas.ID, RestaurantID: f.pizzeria.ID}
	require.NoError(t, db.Create(&f.nyama).Error)
	require.NoError(t, db.Create(&f.soda).Error)
	require.NoError(t, db.Create(&f.margherita).Error)

	f.portion = entity.ModifierGroup{Name: "Portion", Required: true, MaxSelect: 1, MenuItemID: f.nyama.ID}
	require.NoError(t, db.Create(&f.portion).Error)
	f.portionHalf = entity.ModifierOption{Name: "Half", Price: 0, GroupID: f.portion.ID}
	f.portionFull = entity.ModifierOption{Name: "Full", Price: 450, GroupID: f.portion.ID}
	require.NoError(t, db.Create(&f.portionHalf).Error)
	require.NoError(t, db.Create(&f.portionFull).Error)

	f.extras = entity.ModifierGroup{Name: "Extras", Required: false, MaxSelect: 2, MenuItemID: f.nyama.ID}
	require.NoError(t, db.Create(&f.extras).Error)
	f.extraKachumbari = entity.ModifierOption{Name: "Kachumbari", Price: 50, GroupID: f.extras.ID}
	f.extraUgali = entity.ModifierOption{Name: "Ugali", Price: 80, GroupID: f.extras.ID}
	f.extraMukimo = entity.ModifierOption{Name: "Mukimo", Price: 100, GroupID: f.extras.ID}
	require.NoError(t, db.Create(&f.extraKachumbari).Error)
	require.NoError(t, db.Create(&f.extraUgali).Error)
	require.NoError(t, db.Create(&f.extraMukimo).Error)

	f.welcome = entity.Promotion{
		Code: "WELCOME20", DiscountType: entity.DiscountPercentage,
		Value: 20, MaxDiscount: 200, MinOrder: 300, IsActive: true,
	}
	f.freeDel = entity.Promotion{
		Code: "FREEDELIVERY", DiscountType: entity.DiscountFreeDelivery,
		MinOrder: 500, IsActive: true,
	}
	require.NoError(t, db.Create(&f.welcome).Error)
	require.NoError(t, db.Create(&f.freeDel).Error)

	return f
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewPromotionRepository(db),
	)
}

func getCart(t *testing.T, svc *CartService, userID uint) *entity.Cart {
	t.Helper()
	cart, err := svc.Get(userID)
	require.NoError(t, err)
	return cart
}
