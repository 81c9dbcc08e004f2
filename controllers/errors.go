package controllers

import (
	"errors"

	"github.com/alvinmajawa241/foodlink/pkg/resp"
	"github.com/alvinmajawa241/foodlink/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fail maps the service error taxonomy onto HTTP status codes.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrNotAuthenticated):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrOrderNotCancellable),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrAlreadyReviewed):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPaymentFailed):
		resp.PaymentRequired(c, err.Error())
	case errors.Is(err, services.ErrInvalidPromo),
		errors.Is(err, services.ErrMissingRequiredOption),
		errors.Is(err, services.ErrTooManySelections),
		errors.Is(err, services.ErrInvalidSelection),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidTip),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrOrderNotDelivered):
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
