package booking

import "marketplace/internal/pkg/apperr"

var (
	ErrBookingNotFound     = apperr.New(apperr.KindNotFound, "booking not found")
	ErrAccessDenied        = apperr.New(apperr.KindAccessDenied, "you do not have access to this booking")
	ErrForbidden           = apperr.New(apperr.KindForbidden, "only the provider of this booking can change its status")
	ErrSelfBooking         = apperr.New(apperr.KindSelfBooking, "you cannot book your own service")
	ErrClientMayOnlyCancel = apperr.New(apperr.KindInvalidTransition, "clients can only cancel a booking")
	ErrInvalidTransition   = apperr.New(apperr.KindInvalidTransition, "status transition not allowed")
	ErrConcurrentUpdate    = apperr.New(apperr.KindInvalidTransition, "booking status changed concurrently, reload and retry")
	ErrInvalidStatus       = apperr.New(apperr.KindValidation, "status must be one of PENDING, CONFIRMED, CANCELLED, COMPLETED")
	ErrInvalidDate         = apperr.New(apperr.KindValidation, "date is required")
)
