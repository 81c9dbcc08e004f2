package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"gorm.io/gorm"
)

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository

	// probability of a simulated decline, [0,1); zero in tests
	FailureRate float64
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, orderRepo *repository.OrderRepository, failureRate float64) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo, FailureRate: failureRate}
}

func (s *PaymentService) ListMethods(userID uint) ([]entity.PaymentMethod, error) {
	return s.Repo.ListMethodsForUser(userID)
}

type PaymentMethodIn struct {
	Type        string `json:"type" binding:"required,oneof=card mobile_money wallet"`
	Provider    string `json:"provider" binding:"required"`
	Last4       string `json:"last4"`
	PhoneNumber string `json:"phoneNumber"`
	IsDefault   bool   `json:"isDefault"`
}

func (s *PaymentService) AddMethod(userID uint, in *PaymentMethodIn) (*entity.PaymentMethod, error) {
	m := &entity.PaymentMethod{
		UserID:      userID,
		Type:        in.Type,
		Provider:    in.Provider,
		Last4:       in.Last4,
		PhoneNumber: in.PhoneNumber,
		IsDefault:   in.IsDefault,
	}
	if err := s.Repo.CreateMethod(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Process charges an order. Declines are injected at FailureRate to exercise
// the failure path; a declined charge records a failed payment row and
// leaves the order unpaid.
func (s *PaymentService) Process(userID, orderID, methodID uint) error {
	o, err := s.OrderRepo.GetForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if o.PaymentStatus == entity.PaymentPaid {
		return ErrAlreadyPaid
	}

	m, err := s.Repo.GetMethodForUser(userID, methodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if rand.Float64() < s.FailureRate {
		_ = s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Repo.CreatePayment(tx, &entity.Payment{
				Amount:          o.Total,
				Status:          entity.PaymentFailed,
				PaymentMethodID: m.ID,
				OrderID:         o.ID,
			})
		})
		return ErrPaymentFailed
	}

	now := time.Now()
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreatePayment(tx, &entity.Payment{
			Amount:          o.Total,
			Status:          entity.PaymentPaid,
			PaidAt:          &now,
			PaymentMethodID: m.ID,
			OrderID:         o.ID,
		}); err != nil {
			return err
		}
		return s.OrderRepo.SetPaymentStatus(tx, o.ID, entity.PaymentPaid)
	})
}
