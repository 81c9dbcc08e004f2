package repository

import (
	"strings"

	"github.com/alvinmajawa241/foodlink/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

// RestaurantQuery mirrors the search surface: free-text query, cuisine
// filter, minimum rating, and a sort key.
type RestaurantQuery struct {
	Query     string
	Cuisines  []string
	MinRating float64
	SortBy    string // "rating" | "delivery_time"
}

func (r *RestaurantRepository) List(q RestaurantQuery) ([]entity.Restaurant, error) {
	db := r.DB.Model(&entity.Restaurant{})

	if s := strings.TrimSpace(q.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(cuisine_types) LIKE ?", like, like)
	}
	if len(q.Cuisines) > 0 {
		cond := r.DB.Where("1 = 0")
		for _, c := range q.Cuisines {
			cond = cond.Or("LOWER(cuisine_types) LIKE ?", "%"+strings.ToLower(strings.TrimSpace(c))+"%")
		}
		db = db.Where(cond)
	}
	if q.MinRating > 0 {
		db = db.Where("rating >= ?", q.MinRating)
	}

	switch q.SortBy {
	case "rating":
		db = db.Order("rating DESC")
	case "delivery_time":
		db = db.Order("delivery_time_mins ASC")
	default:
		db = db.Order("featured DESC, rating DESC")
	}

	var rows []entity.Restaurant
	err := db.Find(&rows).Error
	return rows, err
}

func (r *RestaurantRepository) Get(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND merchant_id = ?", restID, userID).
		Count(&count).Error
	return count > 0, err
}

// Menu returns the categories (with available items and their modifiers) of
// one restaurant, in display order.
func (r *RestaurantRepository) Menu(restID uint) ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.Where("restaurant_id = ?", restID).
		Order("sort_order ASC").
		Preload("Items", "is_available = ?", true).
		Preload("Items.Modifiers", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Items.Modifiers.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Find(&cats).Error
	return cats, err
}

// GetMenuItem loads one item with its modifier groups and options, for cart
// validation and pricing.
func (r *RestaurantRepository) GetMenuItem(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	err := r.DB.
		Preload("Modifiers").
		Preload("Modifiers.Options").
		First(&m, id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *RestaurantRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Count(&count).Error
	return count, err
}
