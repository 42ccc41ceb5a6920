package payment

import (
	"context"

	"github.com/rs/zerolog"

	"marketplace/internal/domain/auth"
)

// Service records payments. There is no gateway: recording a payment settles it.
type Service struct {
	payments paymentRepo
	bookings bookingReader
	log      zerolog.Logger
}

func NewService(payments paymentRepo, bookings bookingReader, log zerolog.Logger) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		log:      log.With().Str("component", "payment").Logger(),
	}
}

// ProcessPayment settles a booking once. The unique index on booking_id
// decides between concurrent attempts.
func (s *Service) ProcessPayment(ctx context.Context, bookingID int64, amount float64, clientID int64) (*Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, ErrNotBookingClient
	}

	existing, err := s.payments.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyPaid
	}

	p := &Payment{
		BookingID: bookingID,
		Amount:    amount,
		Status:    StatusCompleted,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("booking_id", bookingID).
		Int64("payment_id", p.ID).
		Float64("amount", amount).
		Msg("payment recorded")
	return p, nil
}

// GetByBooking returns the payment of a booking to its participants and admins.
func (s *Service) GetByBooking(ctx context.Context, bookingID int64, p auth.Principal) (*Payment, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if _, admin := p.(auth.Admin); !admin && !b.IsParticipant(p.UserID()) {
		return nil, ErrAccessDenied
	}

	pay, err := s.payments.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if pay == nil {
		return nil, ErrPaymentNotFound
	}
	return pay, nil
}
