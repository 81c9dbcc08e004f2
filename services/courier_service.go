package services

import (
	"errors"
	"log"
	"time"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"gorm.io/gorm"
)

type CourierService struct {
	DB        *gorm.DB
	Repo      *repository.CourierRepository
	OrderRepo *repository.OrderRepository
}

func NewCourierService(db *gorm.DB, repo *repository.CourierRepository, orderRepo *repository.OrderRepository) *CourierService {
	return &CourierService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

func (s *CourierService) List() ([]entity.Courier, error) {
	return s.Repo.List()
}

// JobsForUser lists jobs of the courier behind the authenticated user.
func (s *CourierService) JobsForUser(userID uint) ([]entity.CourierJob, error) {
	c, err := s.Repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.Repo.ListJobs(c.ID)
}

// AcceptJob claims an offered job. The guard makes a second accept (or an
// accept of someone else's offer) a not-found.
func (s *CourierService) AcceptJob(userID, jobID uint) (*entity.CourierJob, error) {
	c, err := s.Repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.AcceptJobGuard(tx, jobID, c.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.GetJob(jobID)
}

// OfferJobForOrder creates a job offer for the next online courier and pins
// them to the order. Fired by the lifecycle scheduler at the assigned step;
// no courier online means no offer, progression continues regardless.
func (s *CourierService) OfferJobForOrder(orderID uint) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.OrderRepo.Get(orderID)
		if err != nil {
			return err
		}
		courier, err := s.Repo.FirstOnline(tx)
		if err != nil {
			return err
		}

		expiry := time.Now().Add(5 * time.Minute)
		job := &entity.CourierJob{
			OrderID:     o.ID,
			CourierID:   courier.ID,
			Status:      entity.JobOffered,
			Earnings:    o.DeliveryFee,
			OfferExpiry: &expiry,
		}
		if err := s.Repo.CreateJob(tx, job); err != nil {
			return err
		}
		return s.OrderRepo.SetCourier(tx, o.ID, courier.ID)
	})
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("courier: offer for order %d failed: %v", orderID, err)
	}
}
