package review

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"marketplace/internal/domain/booking"
)

type bookingReader interface {
	GetByID(ctx context.Context, id int64) (*booking.Booking, error)
}

type reviewRepo interface {
	Create(ctx context.Context, rv *Review) error
	ExistsForBooking(ctx context.Context, bookingID int64) (bool, error)
	GetByService(ctx context.Context, serviceID int64, limit, offset int) ([]Review, error)
	SummaryForService(ctx context.Context, serviceID int64) (Summary, error)
}

type Service struct {
	repo     reviewRepo
	bookings bookingReader
	log      zerolog.Logger
}

func NewService(repo reviewRepo, bookings bookingReader, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		bookings: bookings,
		log:      log.With().Str("component", "review").Logger(),
	}
}

// Create records the single review of a completed booking.
func (s *Service) Create(ctx context.Context, bookingID int64, rating int, comment string, clientID int64) (*Review, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID != clientID {
		return nil, ErrNotBookingClient
	}
	if b.Status != booking.StatusCompleted {
		return nil, ErrNotCompleted
	}

	exists, err := s.repo.ExistsForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rv := &Review{
		BookingID: bookingID,
		ClientID:  clientID,
		ServiceID: b.ServiceID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}

	s.log.Info().Int64("booking_id", bookingID).Int("rating", rating).Msg("review created")
	return rv, nil
}

func (s *Service) FindAllByService(ctx context.Context, serviceID int64, limit, offset int) ([]Review, Summary, error) {
	reviews, err := s.repo.GetByService(ctx, serviceID, limit, offset)
	if err != nil {
		return nil, Summary{}, err
	}
	summary, err := s.repo.SummaryForService(ctx, serviceID)
	if err != nil {
		return nil, Summary{}, err
	}
	return reviews, summary, nil
}
