package review

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a client's rating of a completed booking.
type Review struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"booking_id"`
	ClientID  int64     `json:"client_id"`
	ServiceID int64     `json:"service_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary aggregates the ratings of one service
type Summary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
