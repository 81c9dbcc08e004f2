package repository

import (
	"github.com/alvinmajawa241/foodlink/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) ListMethodsForUser(userID uint) ([]entity.PaymentMethod, error) {
	var rows []entity.PaymentMethod
	err := r.DB.Where("user_id = ?", userID).
		Order("is_default DESC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *PaymentRepository) GetMethodForUser(userID, id uint) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PaymentRepository) CreateMethod(m *entity.PaymentMethod) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if m.IsDefault {
			if err := tx.Model(&entity.PaymentMethod{}).
				Where("user_id = ?", m.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(m).Error
	})
}

func (r *PaymentRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}
