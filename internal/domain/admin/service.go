package admin

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"marketplace/internal/domain/auth"
	"marketplace/internal/domain/booking"
	"marketplace/internal/domain/catalog"
	"marketplace/internal/domain/subscription"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type CatalogReader interface {
	FindAll(ctx context.Context, f catalog.ListFilters) ([]catalog.Listing, int64, error)
}

type BookingLister interface {
	List(ctx context.Context, f booking.ListFilter) ([]booking.Details, error)
}

// Service backs the read-only admin console.
type Service struct {
	repo     AdminRepository
	catalog  CatalogReader
	bookings BookingLister
	log      zerolog.Logger
	now      func() time.Time
}

func NewService(repo AdminRepository, listings CatalogReader, bookings BookingLister, log zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		catalog:  listings,
		bookings: bookings,
		log:      log.With().Str("component", "admin").Logger(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Page converts a 1-based page and size into limit and offset.
func Page(page, limit int) (int, int) {
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

func (s *Service) ListUsers(ctx context.Context, role, search string, page, limit int) ([]UserSummary, int64, error) {
	r := auth.Role(strings.ToUpper(strings.TrimSpace(role)))
	if r != "" && r != auth.RoleClient && r != auth.RoleProvider && r != auth.RoleAdmin {
		return nil, 0, ErrInvalidRole
	}

	l, off := Page(page, limit)
	return s.repo.ListUsers(ctx, UserFilter{Role: r, Search: search, Limit: l, Offset: off})
}

func (s *Service) ListProviders(ctx context.Context, search string, page, limit int) ([]ProviderSummary, int64, error) {
	l, off := Page(page, limit)
	users, total, err := s.repo.ListUsers(ctx, UserFilter{Role: auth.RoleProvider, Search: search, Limit: l, Offset: off})
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	subs, err := s.repo.SubscriptionsOf(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	now := s.now()
	out := make([]ProviderSummary, 0, len(users))
	for _, u := range users {
		p := ProviderSummary{UserSummary: u}
		if sub, ok := subs[u.ID]; ok {
			p.Subscription = &sub
			p.Entitled = sub.IsActiveAt(now)
		}
		out = append(out, p)
	}
	return out, total, nil
}

func (s *Service) ListSubscriptions(ctx context.Context, status string, page, limit int) ([]SubscriptionSummary, int64, error) {
	st := subscription.Status(strings.ToUpper(strings.TrimSpace(status)))
	if st != "" && st != subscription.StatusActive && st != subscription.StatusExpired {
		return nil, 0, ErrInvalidStatus
	}

	l, off := Page(page, limit)
	return s.repo.ListSubscriptions(ctx, SubscriptionFilter{Status: st, Limit: l, Offset: off}, s.now())
}

func (s *Service) ListServices(ctx context.Context, categoryID int64, search string, page, limit int) ([]catalog.Listing, int64, error) {
	l, off := Page(page, limit)
	return s.catalog.FindAll(ctx, catalog.ListFilters{
		CategoryID: categoryID,
		Search:     search,
		Limit:      l,
		Offset:     off,
	})
}

// ListBookings returns every booking matching status, newest date first.
func (s *Service) ListBookings(ctx context.Context, status string) ([]booking.Details, error) {
	st := booking.Status(strings.ToUpper(strings.TrimSpace(status)))
	if st != "" && !st.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.bookings.List(ctx, booking.ListFilter{Status: st})
}
