package controllers

import (
	"strconv"
	"strings"

	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/repository"
	"github.com/alvinmajawa241/foodlink/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Svc     *services.RestaurantService
	Reviews *services.ReviewService
}

func NewRestaurantController(s *services.RestaurantService, rs *services.ReviewService) *RestaurantController {
	return &RestaurantController{Svc: s, Reviews: rs}
}

// GET /restaurants?query=&cuisine=a,b&rating=&sortBy=
func (h *RestaurantController) List(c *gin.Context) {
	q := repository.RestaurantQuery{
		Query:  c.Query("query"),
		SortBy: c.Query("sortBy"),
	}
	if cs := c.Query("cuisine"); cs != "" {
		q.Cuisines = strings.Split(cs, ",")
	}
	if r := c.Query("rating"); r != "" {
		if f, err := strconv.ParseFloat(r, 64); err == nil {
			q.MinRating = f
		}
	}

	rows, err := h.Svc.List(q)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}
	rest, err := h.Svc.Detail(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /restaurants/:id/menu
func (h *RestaurantController) Menu(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}
	cats, err := h.Svc.Menu(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}

// GET /restaurants/:id/reviews
func (h *RestaurantController) ListReviews(c *gin.Context) {
	id := paramID(c, "id")
	if id == 0 {
		resp.BadRequest(c, "invalid id")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	rows, err := h.Reviews.ListForRestaurant(id, limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rows)
}

func paramID(c *gin.Context, name string) uint {
	id64, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id64)
}
