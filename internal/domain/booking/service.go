package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"marketplace/internal/domain/auth"
)

const dateLayout = "2006-01-02 15:04"

type Service struct {
	repo     BookingRepository
	services ServiceReader
	users    UserReader
	notifs   Notifier
	log      zerolog.Logger
	now      func() time.Time
}

func NewService(repo BookingRepository, services ServiceReader, users UserReader, notifs Notifier, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		services: services,
		users:    users,
		notifs:   notifs,
		log:      log.With().Str("component", "booking").Logger(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create books a service for a client. The provider is copied from the service.
func (s *Service) Create(ctx context.Context, serviceID int64, date time.Time, clientID int64) (*Booking, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	listing, err := s.services.FindOne(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if listing.ProviderID == clientID {
		return nil, ErrSelfBooking
	}

	client, err := s.users.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	b := &Booking{
		ClientID:   clientID,
		ProviderID: listing.ProviderID,
		ServiceID:  listing.ID,
		Date:       date.UTC(),
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("booking_id", b.ID).
		Int64("client_id", clientID).
		Int64("provider_id", b.ProviderID).
		Msg("booking created")

	s.notifs.Notify(ctx, b.ProviderID, fmt.Sprintf(
		"New booking for %s by %s on %s", listing.Title, client.Name, b.Date.Format(dateLayout)))

	return b, nil
}

// FindAll scopes the listing to the principal: clients and providers see their
// own bookings, admins see everything.
func (s *Service) FindAll(ctx context.Context, p auth.Principal) ([]Details, error) {
	var f ListFilter
	switch p := p.(type) {
	case auth.Client:
		f.ClientID = p.ID
	case auth.Provider:
		f.ProviderID = p.ID
	case auth.Admin:
	default:
		return nil, ErrAccessDenied
	}
	return s.repo.List(ctx, f)
}

func (s *Service) FindOne(ctx context.Context, id int64, p auth.Principal) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, ok := p.(auth.Admin); ok {
		return b, nil
	}
	if !b.IsParticipant(p.UserID()) {
		return nil, ErrAccessDenied
	}
	return b, nil
}

// UpdateStatus applies a role-checked transition and notifies the other party.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status Status, p auth.Principal) (*Booking, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.FindOne(ctx, id, p)
	if err != nil {
		return nil, err
	}

	switch p.(type) {
	case auth.Client:
		if status != StatusCancelled {
			return nil, ErrClientMayOnlyCancel
		}
		if b.ClientID != p.UserID() {
			return nil, ErrAccessDenied
		}
	case auth.Provider:
		if b.ProviderID != p.UserID() {
			return nil, ErrForbidden
		}
	}

	from := b.Status
	if !CanTransition(p.Role(), from, status) {
		return nil, fmt.Errorf("%w: %s cannot move a booking from %s to %s",
			ErrInvalidTransition, p.Role(), from, status)
	}

	now := s.now()
	ok, err := s.repo.UpdateStatus(ctx, b.ID, from, status, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrConcurrentUpdate
	}

	b.Status = status
	b.UpdatedAt = now
	if status == StatusCancelled {
		b.CancelledAt = &now
	}

	ev := s.log.Info()
	if _, admin := p.(auth.Admin); admin {
		ev = s.log.Warn().Bool("admin_override", true)
	}
	ev.Int64("booking_id", b.ID).
		Int64("actor_id", p.UserID()).
		Str("from", string(from)).
		Str("to", string(status)).
		Msg("booking status changed")

	s.notifyStatusChange(ctx, b, p)
	return b, nil
}

func (s *Service) notifyStatusChange(ctx context.Context, b *Booking, actor auth.Principal) {
	title := s.serviceTitle(ctx, b.ServiceID)

	switch actor.(type) {
	case auth.Provider:
		var msg string
		switch b.Status {
		case StatusConfirmed:
			msg = fmt.Sprintf("Your booking for %s on %s has been confirmed", title, b.Date.Format(dateLayout))
		case StatusCancelled:
			msg = fmt.Sprintf("Your booking for %s on %s has been cancelled by the provider", title, b.Date.Format(dateLayout))
		case StatusCompleted:
			msg = fmt.Sprintf("Your booking for %s is completed, you can now leave a review", title)
		}
		if msg != "" {
			s.notifs.Notify(ctx, b.ClientID, msg)
		}
	case auth.Client:
		if b.Status == StatusCancelled {
			s.notifs.Notify(ctx, b.ProviderID, fmt.Sprintf(
				"The booking for %s on %s has been cancelled by the client", title, b.Date.Format(dateLayout)))
		}
	}
}

// serviceTitle falls back to a generic label when the listing was removed.
func (s *Service) serviceTitle(ctx context.Context, serviceID int64) string {
	listing, err := s.services.FindOne(ctx, serviceID)
	if err != nil {
		s.log.Debug().Err(err).Int64("service_id", serviceID).Msg("service lookup for notification failed")
		return fmt.Sprintf("service #%d", serviceID)
	}
	return listing.Title
}
