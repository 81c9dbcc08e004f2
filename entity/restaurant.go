package entity

import (
	"strings"

	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
	Logo        string `json:"logo,omitempty"`

	// comma-separated, e.g. "Kenyan,Grill"
	CuisineTypes string `json:"cuisineTypes"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`

	DeliveryTimeMins int   `json:"deliveryTimeMins"`
	DeliveryFee      int64 `json:"deliveryFee"`
	MinimumOrder     int64 `json:"minimumOrder"`
	PrepTimeMins     int   `json:"prepTimeMins"`

	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	IsOpen   bool `gorm:"default:true" json:"isOpen"`
	Featured bool `json:"featured"`

	MerchantID uint `json:"merchantId"`
	Merchant   User `gorm:"foreignKey:MerchantID" json:"-"`

	Categories []MenuCategory `json:"-"`
	MenuItems  []MenuItem     `json:"-"`
	Orders     []Order        `json:"-"`
	Reviews    []Review       `json:"-"`
}

func (r *Restaurant) Cuisines() []string {
	if r.CuisineTypes == "" {
		return nil
	}
	parts := strings.Split(r.CuisineTypes, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
