package payment

import (
	"context"

	"marketplace/internal/domain/booking"
)

type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*booking.Booking, error)
}

type paymentRepo interface {
	// Create returns ErrAlreadyPaid when the booking already has a payment.
	Create(ctx context.Context, p *Payment) error
	GetByBookingID(ctx context.Context, bookingID int64) (*Payment, error)
}
