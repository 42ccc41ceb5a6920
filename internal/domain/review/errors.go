package review

import "marketplace/internal/pkg/apperr"

var (
	ErrInvalidRating    = apperr.New(apperr.KindValidation, "rating must be between 1 and 5")
	ErrNotBookingClient = apperr.New(apperr.KindForbidden, "only the client of this booking can review it")
	ErrNotCompleted     = apperr.New(apperr.KindNotCompleted, "only completed bookings can be reviewed")
	ErrAlreadyReviewed  = apperr.New(apperr.KindAlreadyReviewed, "this booking has already been reviewed")
)
