package subscription

import "time"

// Plan identifies a subscription tier
type Plan string

const (
	PlanBasic   Plan = "BASIC"
	PlanPremium Plan = "PREMIUM"
)

// basicListingLimit is the number of services a BASIC provider may publish.
const basicListingLimit = 3

// termMonths is the length of every subscription term.
const termMonths = 3

func (p Plan) Valid() bool {
	return p == PlanBasic || p == PlanPremium
}

// ListingLimit returns the maximum number of published services, -1 = unlimited.
func (p Plan) ListingLimit() int {
	if p == PlanBasic {
		return basicListingLimit
	}
	return -1
}

// Status of a subscription
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusExpired Status = "EXPIRED"
)

// Subscription is the single current term of a provider. History is not kept:
// a new term replaces the previous row.
type Subscription struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Plan      Plan      `gorm:"column:plan;type:varchar(16);not null;default:BASIC" json:"plan"`
	Status    Status    `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
	StartDate time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;not null" json:"end_date"`
	Amount    float64   `gorm:"column:amount;not null" json:"amount"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }

// IsActiveAt is the entitlement predicate; Status alone is advisory.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	return s.Status == StatusActive && now.Before(s.EndDate)
}

// DaysRemaining returns whole days until EndDate, never negative.
func (s *Subscription) DaysRemaining(now time.Time) int {
	remaining := s.EndDate.Sub(now)
	if remaining < 0 {
		return 0
	}
	return int(remaining.Hours() / 24)
}
