package repository

import (
	"time"

	"github.com/alvinmajawa241/foodlink/entity"

	"gorm.io/gorm"
)

type PromotionRepository struct{ DB *gorm.DB }

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{DB: db}
}

// FindByCode is case-insensitive, matching how codes are typed by hand.
func (r *PromotionRepository) FindByCode(db *gorm.DB, code string) (*entity.Promotion, error) {
	var p entity.Promotion
	err := db.Where("LOWER(code) = LOWER(?)", code).
		Preload("Restaurants").
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) Get(id uint) (*entity.Promotion, error) {
	var p entity.Promotion
	if err := r.DB.Preload("Restaurants").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PromotionRepository) ListActive(now time.Time) ([]entity.Promotion, error) {
	var rows []entity.Promotion
	err := r.DB.
		Where("is_active = ?", true).
		Where("(start_at IS NULL OR start_at <= ?) AND (end_at IS NULL OR end_at >= ?)", now, now).
		Order("id DESC").
		Find(&rows).Error
	return rows, err
}

func (r *PromotionRepository) ListAll() ([]entity.Promotion, error) {
	var rows []entity.Promotion
	err := r.DB.Order("id DESC").Find(&rows).Error
	return rows, err
}

func (r *PromotionRepository) Create(p *entity.Promotion) error {
	return r.DB.Create(p).Error
}

func (r *PromotionRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Promotion{}).Where("id = ?", id).Updates(updates).Error
}

func (r *PromotionRepository) Delete(id uint) error {
	if err := r.DB.Exec("DELETE FROM promotion_restaurants WHERE promotion_id = ?", id).Error; err != nil {
		return err
	}
	return r.DB.Unscoped().Delete(&entity.Promotion{}, id).Error
}
