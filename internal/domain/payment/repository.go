package payment

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"marketplace/internal/database"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *Payment) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadyPaid
		}
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

// GetByBookingID returns nil, nil when the booking has no payment.
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*Payment, error) {
	var p Payment
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment of booking %d: %w", bookingID, err)
	}
	return &p, nil
}
