package services

import (
	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/repository"
)

type AddressService struct {
	Repo *repository.AddressRepository
}

func NewAddressService(repo *repository.AddressRepository) *AddressService {
	return &AddressService{Repo: repo}
}

func (s *AddressService) List(userID uint) ([]entity.Address, error) {
	return s.Repo.ListForUser(userID)
}

type AddressIn struct {
	Label        string  `json:"label" binding:"required"`
	FullAddress  string  `json:"fullAddress" binding:"required"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Instructions string  `json:"instructions"`
	IsDefault    bool    `json:"isDefault"`
}

func (s *AddressService) Create(userID uint, in *AddressIn) (*entity.Address, error) {
	a := &entity.Address{
		UserID:       userID,
		Label:        in.Label,
		FullAddress:  in.FullAddress,
		Lat:          in.Lat,
		Lng:          in.Lng,
		Instructions: in.Instructions,
		IsDefault:    in.IsDefault,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}
