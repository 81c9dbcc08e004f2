package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"gorm.io/gorm"
)

type PromotionService struct {
	Repo *repository.PromotionRepository
}

func NewPromotionService(repo *repository.PromotionRepository) *PromotionService {
	return &PromotionService{Repo: repo}
}

// promoApplies decides whether a promotion can be used for the given
// restaurant and subtotal. Reasons are wrapped around ErrInvalidPromo so the
// HTTP layer reports them all the same way.
func promoApplies(p *entity.Promotion, restaurantID uint, subtotal int64, now time.Time) error {
	if !p.ActiveAt(now) {
		return ErrInvalidPromo
	}
	if len(p.Restaurants) > 0 {
		found := false
		for _, r := range p.Restaurants {
			if r.ID == restaurantID {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: not valid for this restaurant", ErrInvalidPromo)
		}
	}
	if p.MinOrder > 0 && subtotal < p.MinOrder {
		return fmt.Errorf("%w: minimum order not met", ErrInvalidPromo)
	}
	return nil
}

// Validate looks a code up for a restaurant and subtotal without applying it
// anywhere; the cart apply path re-checks atomically.
func (s *PromotionService) Validate(code string, restaurantID uint, subtotal int64) (*entity.Promotion, error) {
	p, err := s.Repo.FindByCode(s.Repo.DB, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidPromo
		}
		return nil, err
	}
	if err := promoApplies(p, restaurantID, subtotal, time.Now()); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PromotionService) ListActive() ([]entity.Promotion, error) {
	return s.Repo.ListActive(time.Now())
}

// ----- admin surface -----

type PromotionIn struct {
	Code         string     `json:"code" binding:"required"`
	Description  string     `json:"description"`
	DiscountType string     `json:"discountType" binding:"required,oneof=percentage fixed_amount free_delivery"`
	Value        int64      `json:"value"`
	MaxDiscount  int64      `json:"maxDiscount"`
	MinOrder     int64      `json:"minOrder"`
	StartAt      *time.Time `json:"startAt"`
	EndAt        *time.Time `json:"endAt"`
	IsActive     *bool      `json:"isActive"`

	// empty = valid everywhere
	RestaurantIDs []uint `json:"restaurantIds"`
}

func (s *PromotionService) Create(in *PromotionIn) (*entity.Promotion, error) {
	p := &entity.Promotion{
		Code:         in.Code,
		Description:  in.Description,
		DiscountType: in.DiscountType,
		Value:        in.Value,
		MaxDiscount:  in.MaxDiscount,
		MinOrder:     in.MinOrder,
		StartAt:      in.StartAt,
		EndAt:        in.EndAt,
		IsActive:     true,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	for _, id := range in.RestaurantIDs {
		p.Restaurants = append(p.Restaurants, entity.Restaurant{Model: gorm.Model{ID: id}})
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PromotionService) Update(id uint, updates map[string]any) error {
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.Update(id, updates)
}

func (s *PromotionService) Delete(id uint) error {
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.Delete(id)
}

func (s *PromotionService) ListAll() ([]entity.Promotion, error) {
	return s.Repo.ListAll()
}
