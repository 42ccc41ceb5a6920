package payment

// ProcessPaymentRequest is sent by a client to pay for a booking
type ProcessPaymentRequest struct {
	BookingID int64   `json:"booking_id" binding:"required,gt=0"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}
