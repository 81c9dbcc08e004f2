package controllers

import (
	"strconv"

	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/services"
	"github.com/alvinmajawa241/foodlink/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /orders, checkout from the current cart
func (h *OrderController) Create(c *gin.Context) {
	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Checkout(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.CreatedMsg(c, out, "Order placed successfully")
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rows, err := h.Svc.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}
	detail, err := h.Svc.DetailForUser(utils.CurrentUserID(c), id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /orders/:id/cancel
func (h *OrderController) Cancel(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Cancel(utils.CurrentUserID(c), id); err != nil {
		fail(c, err)
		return
	}
	resp.OKMsg(c, nil, "Order cancelled")
}

// GET /merchant/restaurants/:id/orders
func (h *OrderController) ListForRestaurant(c *gin.Context) {
	restID := paramID(c, "id")
	if restID == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	rows, err := h.Svc.ListForRestaurant(utils.CurrentUserID(c), restID, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}
