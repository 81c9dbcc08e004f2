package services

import (
	"errors"

	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	Repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{Repo: repo}
}

func (s *RestaurantService) List(q repository.RestaurantQuery) ([]entity.Restaurant, error) {
	return s.Repo.List(q)
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	r, err := s.Repo.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

// Menu returns categories with their items and modifier groups, or
// ErrNotFound for an unknown restaurant.
func (s *RestaurantService) Menu(restID uint) ([]entity.MenuCategory, error) {
	ok, err := s.Repo.Exists(restID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.Repo.Menu(restID)
}
