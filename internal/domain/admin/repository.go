package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"marketplace/internal/domain/subscription"
)

type AdminRepository interface {
	ListUsers(ctx context.Context, f UserFilter) ([]UserSummary, int64, error)
	SubscriptionsOf(ctx context.Context, userIDs []int64) (map[int64]subscription.Subscription, error)
	ListSubscriptions(ctx context.Context, f SubscriptionFilter, now time.Time) ([]SubscriptionSummary, int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) ListUsers(ctx context.Context, f UserFilter) ([]UserSummary, int64, error) {
	var (
		rows  []UserSummary
		total int64
	)

	filter := func(q *gorm.DB) *gorm.DB {
		if f.Role != "" {
			q = q.Where("u.role = ?", string(f.Role))
		}
		if s := strings.TrimSpace(f.Search); s != "" {
			like := "%" + strings.ToLower(s) + "%"
			q = q.Where("LOWER(u.name) LIKE ? OR LOWER(u.email) LIKE ?", like, like)
		}
		return q
	}

	if err := filter(r.db.WithContext(ctx).Table("users AS u")).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	err := filter(r.db.WithContext(ctx).Table("users AS u")).
		Select(`u.*,
			(SELECT COUNT(*) FROM services s WHERE s.provider_id = u.id) AS service_count,
			(SELECT COUNT(*) FROM bookings b WHERE b.client_id = u.id OR b.provider_id = u.id) AS booking_count`).
		Order("u.created_at DESC, u.id DESC").
		Scopes(paginate(f.Limit, f.Offset)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return rows, total, nil
}

func (r *adminRepository) SubscriptionsOf(ctx context.Context, userIDs []int64) (map[int64]subscription.Subscription, error) {
	out := make(map[int64]subscription.Subscription, len(userIDs))
	if len(userIDs) == 0 {
		return out, nil
	}

	var subs []subscription.Subscription
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("load subscriptions: %w", err)
	}
	for _, s := range subs {
		out[s.UserID] = s
	}
	return out, nil
}

func (r *adminRepository) ListSubscriptions(ctx context.Context, f SubscriptionFilter, now time.Time) ([]SubscriptionSummary, int64, error) {
	var (
		rows  []SubscriptionSummary
		total int64
	)

	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).
			Table("subscriptions AS sub").
			Joins("LEFT JOIN users u ON u.id = sub.user_id")
		switch f.Status {
		case subscription.StatusActive:
			q = q.Where("sub.status = ? AND sub.end_date > ?", string(subscription.StatusActive), now)
		case subscription.StatusExpired:
			q = q.Where("sub.status <> ? OR sub.end_date <= ?", string(subscription.StatusActive), now)
		}
		return q
	}

	if err := base().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count subscriptions: %w", err)
	}

	err := base().
		Select("sub.*, u.name AS user_name, u.email AS user_email").
		Order("sub.end_date DESC, sub.id DESC").
		Scopes(paginate(f.Limit, f.Offset)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list subscriptions: %w", err)
	}
	for i := range rows {
		rows[i].Entitled = rows[i].IsActiveAt(now)
	}
	return rows, total, nil
}

func paginate(limit, offset int) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if limit > 0 {
			q = q.Limit(limit)
		}
		if offset > 0 {
			q = q.Offset(offset)
		}
		return q
	}
}
