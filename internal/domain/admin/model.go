package admin

import (
	"marketplace/internal/domain/auth"
	"marketplace/internal/domain/subscription"
)

// UserSummary is a user row with its activity counts.
type UserSummary struct {
	auth.User
	ServiceCount int64 `json:"service_count"`
	BookingCount int64 `json:"booking_count"`
}

// ProviderSummary adds the provider's current subscription term, nil when
// the provider never subscribed.
type ProviderSummary struct {
	UserSummary
	Subscription *subscription.Subscription `json:"subscription"`
	Entitled     bool                       `json:"entitled"`
}

type SubscriptionSummary struct {
	subscription.Subscription
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Entitled  bool   `json:"entitled"`
}

type UserFilter struct {
	Role   auth.Role
	Search string
	Limit  int
	Offset int
}

// SubscriptionFilter.Status matches the effective state: a term past its end
// date counts as EXPIRED whatever its stored status.
type SubscriptionFilter struct {
	Status subscription.Status
	Limit  int
	Offset int
}
