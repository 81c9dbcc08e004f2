package controllers

import (
	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/services"
	"github.com/alvinmajawa241/foodlink/utils"

	"github.com/gin-gonic/gin"
)

type AddressController struct{ Svc *services.AddressService }

func NewAddressController(s *services.AddressService) *AddressController {
	return &AddressController{Svc: s}
}

// GET /addresses
func (h *AddressController) List(c *gin.Context) {
	rows, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /addresses
func (h *AddressController) Create(c *gin.Context) {
	var req services.AddressIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a, err := h.Svc.Create(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.CreatedMsg(c, a, "Address added successfully")
}
