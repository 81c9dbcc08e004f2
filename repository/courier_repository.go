package repository

import (
	"time"

	"github.com/alvinmajawa241/foodlink/entity"

	"gorm.io/gorm"
)

type CourierRepository struct{ DB *gorm.DB }

func NewCourierRepository(db *gorm.DB) *CourierRepository {
	return &CourierRepository{DB: db}
}

func (r *CourierRepository) List() ([]entity.Courier, error) {
	var rows []entity.Courier
	err := r.DB.Preload("User").Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *CourierRepository) GetByUserID(userID uint) (*entity.Courier, error) {
	var c entity.Courier
	if err := r.DB.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// FirstOnline picks the courier that gets the next job offer.
func (r *CourierRepository) FirstOnline(tx *gorm.DB) (*entity.Courier, error) {
	var c entity.Courier
	err := tx.Where("is_online = ?", true).Order("total_deliveries ASC").First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourierRepository) ListJobs(courierID uint) ([]entity.CourierJob, error) {
	var jobs []entity.CourierJob
	err := r.DB.Where("courier_id = ?", courierID).
		Order("id DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *CourierRepository) GetJob(jobID uint) (*entity.CourierJob, error) {
	var j entity.CourierJob
	if err := r.DB.First(&j, jobID).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *CourierRepository) CreateJob(tx *gorm.DB, j *entity.CourierJob) error {
	return tx.Create(j).Error
}

// AcceptJobGuard flips offered -> accepted; zero rows means the offer was
// already taken, expired, or never existed.
func (r *CourierRepository) AcceptJobGuard(tx *gorm.DB, jobID, courierID uint) (int64, error) {
	now := time.Now()
	res := tx.Model(&entity.CourierJob{}).
		Where("id = ? AND courier_id = ? AND status = ?", jobID, courierID, entity.JobOffered).
		Updates(map[string]any{"status": entity.JobAccepted, "accepted_at": now})
	return res.RowsAffected, res.Error
}

func (r *CourierRepository) Save(c *entity.Courier) error {
	return r.DB.Save(c).Error
}
