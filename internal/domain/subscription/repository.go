package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/database"
)

// Repository handles persistence for subscription data
type Repository interface {
	GetByUserID(ctx context.Context, userID int64) (*Subscription, error)
	// ExpireIfDue flips an ACTIVE row whose term ended to EXPIRED. It reports
	// whether this call performed the transition.
	ExpireIfDue(ctx context.Context, id int64, now time.Time) (bool, error)
	// Replace removes any prior row of sub.UserID and inserts sub, unless the
	// prior row is still entitled at now.
	Replace(ctx context.Context, sub *Subscription, now time.Time) error
	UpdatePlan(ctx context.Context, id int64, plan Plan, amount float64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUserID(ctx context.Context, userID int64) (*Subscription, error) {
	var sub Subscription
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription of user %d: %w", userID, err)
	}
	return &sub, nil
}

func (r *repository) ExpireIfDue(ctx context.Context, id int64, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&Subscription{}).
		Where("id = ? AND status = ? AND end_date <= ?", id, StatusActive, now).
		Updates(map[string]any{
			"status":     StatusExpired,
			"updated_at": now,
		})
	if result.Error != nil {
		return false, fmt.Errorf("expire subscription %d: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) Replace(ctx context.Context, sub *Subscription, now time.Time) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing Subscription
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", sub.UserID).
			First(&existing).Error
		switch {
		case err == nil:
			if existing.IsActiveAt(now) {
				return ErrAlreadyActive
			}
			if err := tx.Delete(&Subscription{}, existing.ID).Error; err != nil {
				return fmt.Errorf("delete previous subscription: %w", err)
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return fmt.Errorf("lock subscription of user %d: %w", sub.UserID, err)
		}

		return tx.Create(sub).Error
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadyActive
		}
		return err
	}
	return nil
}

func (r *repository) UpdatePlan(ctx context.Context, id int64, plan Plan, amount float64) error {
	err := r.db.WithContext(ctx).
		Model(&Subscription{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"plan":       plan,
			"amount":     amount,
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return fmt.Errorf("update subscription plan: %w", err)
	}
	return nil
}
