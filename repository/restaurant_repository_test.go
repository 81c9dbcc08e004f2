package repository

import (
	"path/filepath"
	"testing"

	"github.com/alvinmajawa241/foodlink/configs"
	"github.com/alvinmajawa241/foodlink/entity"

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

func seedRestaurants(t *testing.T, db *gorm.DB) (kenyan, italian, indian entity.Restaurant) {
	t.Helper()
	kenyan = entity.Restaurant{Name: "Mama Njeri's Kitchen", CuisineTypes: "Kenyan,Grill", Rating: 4.6, DeliveryTimeMins: 35}
	italian = entity.Restaurant{Name: "Pizza Palace", CuisineTypes: "Italian", Rating: 4.2, DeliveryTimeMins: 25, Featured: true}
	indian = entity.Restaurant{Name: "Curry House", CuisineTypes: "Indian", Rating: 3.8, DeliveryTimeMins: 45}
	require.NoError(t, db.Create(&kenyan).Error)
	require.NoError(t, db.Create(&italian).Error)
	require.NoError(t, db.Create(&indian).Error)
	return
}

func TestListFreeTextSearch(t *testing.T) {
	db := newTestDB(t)
	seedRestaurants(t, db)
	repo := NewRestaurantRepository(db)

	rows, err := repo.List(RestaurantQuery{Query: "pizza"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Pizza Palace", rows[0].Name)

	// matches cuisine text too
	rows, err = repo.List(RestaurantQuery{Query: "grill"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Mama Njeri's Kitchen", rows[0].Name)
}

func TestListCuisineFilter(t *testing.T) {
	db := newTestDB(t)
	seedRestaurants(t, db)
	repo := NewRestaurantRepository(db)

	rows, err := repo.List(RestaurantQuery{Cuisines: []string{"Italian", "Indian"}})
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestListMinRating(t *testing.T) {
	db := newTestDB(t)
	seedRestaurants(t, db)
	repo := NewRestaurantRepository(db)

	rows, err := repo.List(RestaurantQuery{MinRating: 4.0})
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestListSortOrders(t *testing.T) {
	db := newTestDB(t)
	seedRestaurants(t, db)
	repo := NewRestaurantRepository(db)

	rows, err := repo.List(RestaurantQuery{SortBy: "rating"})
	require.NoError(t, err)
	require.Equal(t, "Mama Njeri's Kitchen", rows[0].Name)

	rows, err = repo.List(RestaurantQuery{SortBy: "delivery_time"})
	require.NoError(t, err)
	require.Equal(t, "Pizza Palace", rows[0].Name)

	// default puts featured first
	rows, err = repo.List(RestaurantQuery{})
	require.NoError(t, err)
	require.Equal(t, "Pizza Palace", rows[0].Name)
}

func TestMenuHidesUnavailableItems(t *testing.T) {
	db := newTestDB(t)
	kenyan, _, _ := seedRestaurants(t, db)
	repo := NewRestaurantRepository(db)

	cat := entity.MenuCategory{Name: "Mains", RestaurantID: kenyan.ID}
	require.NoError(t, db.Create(&cat).Error)
	require.NoError(t, db.Create(&entity.MenuItem{Name: "Nyama Choma", Price: 850, IsAvailable: true, CategoryID: cat.ID, RestaurantID: kenyan.ID}).Error)
	require.NoError(t, db.Create(&entity.MenuItem{Name: "Seasonal Special", Price: 1200, IsAvailable: false, CategoryID: cat.ID, RestaurantID: kenyan.ID}).Error)

	cats, err := repo.Menu(kenyan.ID)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	require.Len(t, cats[0].Items, 1)
	require.Equal(t, "Nyama Choma", cats[0].Items[0].Name)
}

func TestIsOwnedBy(t *testing.T) {
	db := newTestDB(t)
	kenyan, _, _ := seedRestaurants(t, db)
	repo := NewRestaurantRepository(db)

	merchant := entity.User{Email: "owner@example.com", Name: "Owner", Role: entity.RoleMerchant}
	require.NoError(t, db.Create(&merchant).Error)
	require.NoError(t, db.Model(&kenyan).Update("merchant_id", merchant.ID).Error)

	ok, err := repo.IsOwnedBy(kenyan.ID, merchant.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.IsOwnedBy(kenyan.ID, merchant.ID+1)
	require.NoError(t, err)
	require.False(t, ok)
}
