package repository

import (
	"github.com/alvinmajawa241/foodlink/entity"

	"gorm.io/gorm"
)

type AddressRepository struct{ DB *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) ListForUser(userID uint) ([]entity.Address, error) {
	var rows []entity.Address
	err := r.DB.Where("user_id = ?", userID).
		Order("is_default DESC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *AddressRepository) GetForUser(userID, id uint) (*entity.Address, error) {
	var a entity.Address
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create stores the address; a new default demotes the previous one.
func (r *AddressRepository) Create(a *entity.Address) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := tx.Model(&entity.Address{}).
				Where("user_id = ?", a.UserID).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(a).Error
	})
}
