package booking

import (
	"context"
	"time"

	"marketplace/internal/domain/auth"
	"marketplace/internal/domain/catalog"
)

// BookingRepository defines the interface for booking persistence
type BookingRepository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, f ListFilter) ([]Details, error)
	// UpdateStatus moves the booking from one status to another and reports
	// false when the stored status is no longer from.
	UpdateStatus(ctx context.Context, id int64, from, to Status, at time.Time) (bool, error)
}

// ListFilter selects bookings by participant and status; zero fields are ignored.
type ListFilter struct {
	ClientID   int64
	ProviderID int64
	Status     Status
}

// ServiceReader resolves the listing being booked
type ServiceReader interface {
	FindOne(ctx context.Context, id int64) (*catalog.Listing, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*auth.User, error)
}

// Notifier delivers a message to a user. Delivery is best-effort.
type Notifier interface {
	Notify(ctx context.Context, userID int64, message string)
}
