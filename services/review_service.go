package services

import (
	"errors"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB        *gorm.DB
	Repo      *repository.ReviewRepository
	OrderRepo *repository.OrderRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, orderRepo *repository.OrderRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, OrderRepo: orderRepo}
}

type ReviewIn struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Create accepts one review per delivered order and refreshes the
// restaurant's denormalized rating.
func (s *ReviewService) Create(userID uint, in *ReviewIn) (*entity.Review, error) {
	o, err := s.OrderRepo.GetForUser(userID, in.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if o.Status != entity.StatusDelivered {
		return nil, ErrOrderNotDelivered
	}

	exists, err := s.Repo.ExistsForOrder(o.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rev := &entity.Review{
		Rating:       in.Rating,
		Comment:      in.Comment,
		UserID:       userID,
		RestaurantID: o.RestaurantID,
		OrderID:      o.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, rev); err != nil {
			return err
		}
		return s.Repo.RecalcRestaurantRating(tx, o.RestaurantID)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) ListForRestaurant(restID uint, limit int) ([]entity.Review, error) {
	return s.Repo.ListForRestaurant(restID, limit)
}

func (s *ReviewService) ListForUser(userID uint) ([]entity.Review, error) {
	return s.Repo.ListForUser(userID)
}
