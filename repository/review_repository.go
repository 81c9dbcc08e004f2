package repository

import (
	"github.com/alvinmajawa241/foodlink/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) ListForRestaurant(restID uint, limit int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var rows []entity.Review
	err := r.DB.Where("restaurant_id = ?", restID).
		Preload("User").
		Order("id DESC").Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *ReviewRepository) ListForUser(userID uint) ([]entity.Review, error) {
	var rows []entity.Review
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&rows).Error
	return rows, err
}

func (r *ReviewRepository) ExistsForOrder(orderID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Review{}).Where("order_id = ?", orderID).Count(&count).Error
	return count > 0, err
}

// RecalcRestaurantRating refreshes the denormalized rating fields after a
// new review.
func (r *ReviewRepository) RecalcRestaurantRating(tx *gorm.DB, restID uint) error {
	return tx.Exec(`
		UPDATE restaurants
		   SET rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE restaurant_id = ? AND deleted_at IS NULL), 0),
		       review_count = (SELECT COUNT(*) FROM reviews WHERE restaurant_id = ? AND deleted_at IS NULL)
		 WHERE id = ?
	`, restID, restID, restID).Error
}
