package controllers

import (
	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/services"
	"github.com/alvinmajawa241/foodlink/utils"

	"github.com/gin-gonic/gin"
)

type CourierController struct{ Svc *services.CourierService }

func NewCourierController(s *services.CourierService) *CourierController {
	return &CourierController{Svc: s}
}

// GET /couriers (admin)
func (h *CourierController) List(c *gin.Context) {
	rows, err := h.Svc.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /courier/jobs
func (h *CourierController) Jobs(c *gin.Context) {
	rows, err := h.Svc.JobsForUser(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /courier/jobs/:id/accept
func (h *CourierController) AcceptJob(c *gin.Context) {
	jobID := paramID(c, "id")
	if jobID == 0 {
		resp.BadRequest(c, "invalid job id")
		return
	}
	job, err := h.Svc.AcceptJob(utils.CurrentUserID(c), jobID)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OKMsg(c, job, "Job accepted")
}
