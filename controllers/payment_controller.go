package controllers

import (
	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/services"
	"github.com/alvinmajawa241/foodlink/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// GET /payment-methods
func (h *PaymentController) ListMethods(c *gin.Context) {
	rows, err := h.Svc.ListMethods(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /payment-methods
func (h *PaymentController) AddMethod(c *gin.Context) {
	var req services.PaymentMethodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m, err := h.Svc.AddMethod(utils.CurrentUserID(c), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.CreatedMsg(c, m, "Payment method added")
}

// POST /orders/:id/pay
func (h *PaymentController) Pay(c *gin.Context) {
	orderID := paramID(c, "id")
	if orderID == 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var body struct {
		PaymentMethodID uint `json:"paymentMethodId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Process(utils.CurrentUserID(c), orderID, body.PaymentMethodID); err != nil {
		fail(c, err)
		return
	}
	resp.OKMsg(c, nil, "Payment successful")
}
