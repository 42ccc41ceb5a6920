package booking

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// Booking links a client to a provider's service on a date. ClientID and
// ProviderID are fixed at creation.
type Booking struct {
	ID          int64      `json:"id"`
	ClientID    int64      `json:"client_id"`
	ProviderID  int64      `json:"provider_id"`
	ServiceID   int64      `json:"service_id"`
	Date        time.Time  `json:"date"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// IsParticipant reports whether userID is the client or the provider.
func (b *Booking) IsParticipant(userID int64) bool {
	return b.ClientID == userID || b.ProviderID == userID
}

// Details is a booking row joined with display names for listings.
type Details struct {
	Booking
	ServiceTitle string  `json:"service_title"`
	ServicePrice float64 `json:"service_price"`
	ClientName   string  `json:"client_name"`
	ProviderName string  `json:"provider_name"`
}
