package payment

import "marketplace/internal/pkg/apperr"

var (
	ErrPaymentNotFound  = apperr.New(apperr.KindNotFound, "payment not found")
	ErrNotBookingClient = apperr.New(apperr.KindForbidden, "only the client of this booking can pay for it")
	ErrAccessDenied     = apperr.New(apperr.KindAccessDenied, "you do not have access to this payment")
	ErrAlreadyPaid      = apperr.New(apperr.KindAlreadyPaid, "this booking has already been paid")
	ErrInvalidAmount    = apperr.New(apperr.KindValidation, "amount must be positive")
)
