package controllers

import (
	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/services"
	"github.com/alvinmajawa241/foodlink/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	cart, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(utils.CurrentUserID(c), &req); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, nil)
}

// PATCH /cart/items/:id
func (h *CartController) UpdateQty(c *gin.Context) {
	itemID := paramID(c, "id")
	if itemID == 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}
	var body struct {
		Qty int `json:"qty" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(utils.CurrentUserID(c), itemID, body.Qty); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	itemID := paramID(c, "id")
	if itemID == 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}
	if err := h.Svc.RemoveItem(utils.CurrentUserID(c), itemID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// POST /cart/promo
func (h *CartController) ApplyPromo(c *gin.Context) {
	var body struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ApplyPromoCode(utils.CurrentUserID(c), body.Code); err != nil {
		fail(c, err)
		return
	}
	resp.OKMsg(c, nil, "Promo code applied successfully")
}

// DELETE /cart/promo
func (h *CartController) RemovePromo(c *gin.Context) {
	if err := h.Svc.RemovePromoCode(utils.CurrentUserID(c)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}

// PUT /cart/tip
func (h *CartController) UpdateTip(c *gin.Context) {
	var body struct {
		Amount int64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateTip(utils.CurrentUserID(c), body.Amount); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, nil)
}
