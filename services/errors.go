package services

import "errors"

// Error taxonomy surfaced to the HTTP layer; controllers translate these
// with errors.Is. Failed operations leave prior state untouched; every
// mutation runs inside a single transaction.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")

	ErrInvalidPromo  = errors.New("invalid or expired promo code")
	ErrPaymentFailed = errors.New("payment failed, please try again")

	ErrMissingRequiredOption = errors.New("a required option has no selection")
	ErrTooManySelections     = errors.New("too many selections for option group")
	ErrInvalidSelection      = errors.New("invalid option selection")
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrInvalidTip            = errors.New("tip cannot be negative")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrItemUnavailable       = errors.New("menu item is not available")

	ErrOrderNotCancellable = errors.New("order can no longer be cancelled")
	ErrAlreadyPaid         = errors.New("order already paid")
	ErrOrderNotDelivered   = errors.New("order has not been delivered yet")
	ErrAlreadyReviewed     = errors.New("order already reviewed")
)
