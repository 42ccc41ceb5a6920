package message

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"marketplace/internal/domain/booking"
)

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*booking.Booking, error)
}

// Pusher delivers events to live websocket connections
type Pusher interface {
	PushToUser(userID int64, v any) int
}

// Notifier is used when the recipient has no live connection
type Notifier interface {
	Notify(ctx context.Context, userID int64, message string)
}

type Service struct {
	repo     Repository
	bookings BookingReader
	pusher   Pusher
	notifs   Notifier
	log      zerolog.Logger
}

func NewService(repo Repository, bookings BookingReader, pusher Pusher, notifs Notifier, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		bookings: bookings,
		pusher:   pusher,
		notifs:   notifs,
		log:      log.With().Str("component", "message").Logger(),
	}
}

// Create posts a message in a booking conversation and delivers it to the
// other participant, live if connected, as a notification otherwise.
func (s *Service) Create(ctx context.Context, bookingID int64, content string, senderID int64) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return nil, ErrContentTooLong
	}

	b, err := s.participantBooking(ctx, bookingID, senderID)
	if err != nil {
		return nil, err
	}

	msg := &Message{BookingID: bookingID, SenderID: senderID, Content: content}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	recipientID := b.ProviderID
	if senderID == b.ProviderID {
		recipientID = b.ClientID
	}

	delivered := 0
	if s.pusher != nil {
		delivered = s.pusher.PushToUser(recipientID, &WSEvent{Type: EventNewMessage, Message: msg})
	}
	if delivered == 0 && s.notifs != nil {
		s.notifs.Notify(ctx, recipientID, fmt.Sprintf("You have a new message about booking #%d", bookingID))
	}

	s.log.Debug().
		Int64("booking_id", bookingID).
		Int64("sender_id", senderID).
		Int("live_deliveries", delivered).
		Msg("message posted")
	return msg, nil
}

// ListByBooking returns the conversation oldest first.
func (s *Service) ListByBooking(ctx context.Context, bookingID, userID int64, limit, offset int) ([]Message, error) {
	if _, err := s.participantBooking(ctx, bookingID, userID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListByBooking(ctx, bookingID, limit, offset)
}

func (s *Service) participantBooking(ctx context.Context, bookingID, userID int64) (*booking.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !b.IsParticipant(userID) {
		return nil, ErrNotParticipant
	}
	return b, nil
}
