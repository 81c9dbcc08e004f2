package controllers

import (
	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/repository"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Users       *repository.UserRepository
	Restaurants *repository.RestaurantRepository
	Orders      *repository.OrderRepository
}

func NewAdminController(users *repository.UserRepository, restaurants *repository.RestaurantRepository, orders *repository.OrderRepository) *AdminController {
	return &AdminController{Users: users, Restaurants: restaurants, Orders: orders}
}

// GET /admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	customers, err := h.Users.CountByRole(entity.RoleCustomer)
	if err != nil {
		fail(c, err)
		return
	}
	couriers, err := h.Users.CountByRole(entity.RoleCourier)
	if err != nil {
		fail(c, err)
		return
	}
	restaurants, err := h.Restaurants.CountAll()
	if err != nil {
		fail(c, err)
		return
	}
	orders, err := h.Orders.CountAll()
	if err != nil {
		fail(c, err)
		return
	}
	revenue, err := h.Orders.SumRevenue()
	if err != nil {
		fail(c, err)
		return
	}

	resp.OK(c, gin.H{
		"customers":   customers,
		"couriers":    couriers,
		"restaurants": restaurants,
		"orders":      orders,
		"revenue":     revenue,
	})
}
