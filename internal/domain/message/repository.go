package message

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, msg *Message) error
	ListByBooking(ctx context.Context, bookingID int64, limit, offset int) ([]Message, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, msg *Message) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

// ListByBooking returns messages oldest first.
func (r *repository) ListByBooking(ctx context.Context, bookingID int64, limit, offset int) ([]Message, error) {
	q := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC, id ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var out []Message
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list messages of booking %d: %w", bookingID, err)
	}
	return out, nil
}
