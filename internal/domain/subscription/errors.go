package subscription

import "marketplace/internal/pkg/apperr"

var (
	ErrSubscriptionNotFound = apperr.New(apperr.KindNotFound, "subscription not found")
	ErrAlreadyActive        = apperr.New(apperr.KindAlreadyActive, "you already have an active subscription")
	ErrAlreadyOnPlan        = apperr.New(apperr.KindAlreadyActive, "already subscribed to this plan")
	ErrSubscriptionRequired = apperr.New(apperr.KindSubscriptionRequired, "active subscription required to perform this action")
	ErrInvalidPlan          = apperr.New(apperr.KindValidation, "plan must be BASIC or PREMIUM")
	ErrInvalidAmount        = apperr.New(apperr.KindValidation, "amount must be positive")
)
