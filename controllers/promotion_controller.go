package controllers

import (
	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/services"

	"github.com/gin-gonic/gin"
)

type PromotionController struct{ Svc *services.PromotionService }

func NewPromotionController(s *services.PromotionService) *PromotionController {
	return &PromotionController{Svc: s}
}

// GET /promotions
func (h *PromotionController) ListActive(c *gin.Context) {
	rows, err := h.Svc.ListActive()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /admin/promotions
func (h *PromotionController) ListAll(c *gin.Context) {
	rows, err := h.Svc.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /admin/promotions
func (h *PromotionController) Create(c *gin.Context) {
	var req services.PromotionIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.CreatedMsg(c, p, "Promotion created")
}

// PATCH /admin/promotions/:id
func (h *PromotionController) Update(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Update(id, updates); err != nil {
		fail(c, err)
		return
	}
	resp.OKMsg(c, nil, "Promotion updated")
}

// DELETE /admin/promotions/:id
func (h *PromotionController) Delete(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		fail(c, err)
		return
	}
	resp.OKMsg(c, nil, "Promotion deleted")
}
