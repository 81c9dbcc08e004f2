package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alvinmajawa241/foodlink/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func failStatus(err error) int {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fail(c, err)
	return w.Code
}

func TestFailMapsErrorTaxonomy(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{services.ErrNotFound, http.StatusNotFound},
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{services.ErrNotAuthenticated, http.StatusUnauthorized},
		{services.ErrForbidden, http.StatusForbidden},
		{services.ErrEmailTaken, http.StatusConflict},
		{services.ErrOrderNotCancellable, http.StatusConflict},
		{services.ErrAlreadyPaid, http.StatusConflict},
		{services.ErrAlreadyReviewed, http.StatusConflict},
		{services.ErrPaymentFailed, http.StatusPaymentRequired},
		{services.ErrInvalidPromo, http.StatusBadRequest},
		{services.ErrMissingRequiredOption, http.StatusBadRequest},
		{services.ErrTooManySelections, http.StatusBadRequest},
		{services.ErrInvalidSelection, http.StatusBadRequest},
		{services.ErrInvalidQuantity, http.StatusBadRequest},
		{services.ErrInvalidTip, http.StatusBadRequest},
		{services.ErrEmptyCart, http.StatusBadRequest},
		{services.ErrItemUnavailable, http.StatusBadRequest},
		{services.ErrOrderNotDelivered, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.code, failStatus(tc.err), tc.err.Error())
	}
}

func TestFailUnwrapsAnnotatedSentinels(t *testing.T) {
	err := fmt.Errorf("%w: option 99999 does not belong to group Portion", services.ErrInvalidSelection)
	require.Equal(t, http.StatusBadRequest, failStatus(err))
}
