package configs

import (
	"log"

	"github.com/alvinmajawa241/foodlink/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemo loads the demo marketplace: one account per role, two
// restaurants with menus and modifiers, the standing promotions, and a
// courier profile. Idempotent: an already-seeded database is left alone.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("seed: database already populated, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	pw := string(hash)

	admin := entity.User{Email: "admin@foodlink.demo", Password: pw, Name: "Admin", Role: entity.RoleAdmin, Status: entity.UserActive}
	customer := entity.User{Email: "customer@foodlink.demo", Password: pw, Name: "Cathy Customer", PhoneNumber: "+254700000001", Role: entity.RoleCustomer, Status: entity.UserActive}
	merchant := entity.User{Email: "merchant@foodlink.demo", Password: pw, Name: "Moses Merchant", Role: entity.RoleMerchant, Status: entity.UserActive}
	courierUser := entity.User{Email: "courier@foodlink.demo", Password: pw, Name: "Carl Courier", Role: entity.RoleCourier, Status: entity.UserActive, KYCStatus: "approved"}
	for _, u := range []*entity.User{&admin, &customer, &merchant, &courierUser} {
		if err := db.Create(u).Error; err != nil {
			return err
		}
	}

	if err := db.Create(&entity.Courier{
		UserID:      courierUser.ID,
		VehicleType: "motorbike",
		PlateNumber: "KMC 123X",
		Rating:      4.8,
		IsOnline:    true,
	}).Error; err != nil {
		return err
	}

	if err := db.Create(&entity.Address{
		UserID:      customer.ID,
		Label:       "Home",
		FullAddress: "12 Riverside Drive, Nairobi",
		Lat:         -1.2699,
		Lng:         36.8040,
		IsDefault:   true,
	}).Error; err != nil {
		return err
	}

	if err := db.Create(&entity.PaymentMethod{
		UserID:      customer.ID,
		Type:        entity.MethodMobileMoney,
		Provider:    "M-Pesa",
		PhoneNumber: "+254700000001",
		IsDefault:   true,
	}).Error; err != nil {
		return err
	}

	// --- restaurants ---

	mamaNjeri := entity.Restaurant{
		Name:             "Mama Njeri's Kitchen",
		Description:      "Home-style Kenyan classics",
		CuisineTypes:     "Kenyan,Grill",
		Rating:           4.6,
		ReviewCount:      128,
		DeliveryTimeMins: 35,
		DeliveryFee:      100,
		MinimumOrder:     300,
		PrepTimeMins:     20,
		Lat:              -1.2864,
		Lng:              36.8172,
		Featured:         true,
		MerchantID:       merchant.ID,
	}
	pizzaPalace := entity.Restaurant{
		Name:             "Pizza Palace",
		Description:      "Wood-fired pizza and sides",
		CuisineTypes:     "Pizza,Italian",
		Rating:           4.3,
		ReviewCount:      86,
		DeliveryTimeMins: 45,
		DeliveryFee:      150,
		MinimumOrder:     500,
		PrepTimeMins:     25,
		Lat:              -1.3000,
		Lng:              36.7800,
		MerchantID:       merchant.ID,
	}
	for _, r := range []*entity.Restaurant{&mamaNjeri, &pizzaPalace} {
		if err := db.Create(r).Error; err != nil {
			return err
		}
	}

	mains := entity.MenuCategory{Name: "Mains", RestaurantID: mamaNjeri.ID, SortOrder: 1}
	drinks := entity.MenuCategory{Name: "Drinks", RestaurantID: mamaNjeri.ID, SortOrder: 2}
	pizzas := entity.MenuCategory{Name: "Pizzas", RestaurantID: pizzaPalace.ID, SortOrder: 1}
	for _, cat := range []*entity.MenuCategory{&mains, &drinks, &pizzas} {
		if err := db.Create(cat).Error; err != nil {
			return err
		}
	}

	nyama := entity.MenuItem{
		Name: "Nyama Choma Platter", Description: "Grilled beef with kachumbari",
		Price: 850, CategoryID: mains.ID, RestaurantID: mamaNjeri.ID,
		Modifiers: []entity.ModifierGroup{
			{
				Name: "Portion", Required: true, MaxSelect: 1, SortOrder: 1,
				Options: []entity.ModifierOption{
					{Name: "Half kilo", Price: 0, IsDefault: true, SortOrder: 1},
					{Name: "Full kilo", Price: 450, SortOrder: 2},
				},
			},
			{
				Name: "Extras", MaxSelect: 3, SortOrder: 2,
				Options: []entity.ModifierOption{
					{Name: "Ugali", Price: 80, SortOrder: 1},
					{Name: "Extra kachumbari", Price: 50, SortOrder: 2},
					{Name: "Chapati", Price: 60, SortOrder: 3},
				},
			},
		},
	}
	soda := entity.MenuItem{
		Name: "Soda", Description: "Chilled 500ml",
		Price: 100, CategoryID: drinks.ID, RestaurantID: mamaNjeri.ID,
	}
	margherita := entity.MenuItem{
		Name: "Margherita", Description: "Tomato, mozzarella, basil",
		Price: 950, CategoryID: pizzas.ID, RestaurantID: pizzaPalace.ID,
		Modifiers: []entity.ModifierGroup{
			{
				Name: "Size", Required: true, MaxSelect: 1, SortOrder: 1,
				Options: []entity.ModifierOption{
					{Name: "Medium", Price: 0, IsDefault: true, SortOrder: 1},
					{Name: "Large", Price: 300, SortOrder: 2},
				},
			},
		},
	}
	for _, m := range []*entity.MenuItem{&nyama, &soda, &margherita} {
		if err := db.Create(m).Error; err != nil {
			return err
		}
	}

	// --- promotions ---

	promos := []entity.Promotion{
		{
			Code:         "WELCOME20",
			Description:  "20% off your first order, up to 200",
			DiscountType: entity.DiscountPercentage,
			Value:        20,
			MaxDiscount:  200,
			MinOrder:     300,
			IsActive:     true,
		},
		{
			Code:         "FREEDELIVERY",
			Description:  "Free delivery on orders over 500",
			DiscountType: entity.DiscountFreeDelivery,
			MinOrder:     500,
			IsActive:     true,
		},
	}
	for i := range promos {
		if err := db.Create(&promos[i]).Error; err != nil {
			return err
		}
	}

	log.Println("seed: demo marketplace loaded")
	return nil
}
