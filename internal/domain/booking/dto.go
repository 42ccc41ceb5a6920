package booking

import "time"

// CreateBookingRequest is sent by a client to book a service
type CreateBookingRequest struct {
	ServiceID int64     `json:"service_id" binding:"required,gt=0"`
	Date      time.Time `json:"date" binding:"required"`
}

// UpdateStatusRequest moves a booking through its lifecycle
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// BookingResponse adds the transitions open to the caller
type BookingResponse struct {
	*Booking
	AllowedStatuses []Status `json:"allowed_statuses"`
}
