package catalog

import "marketplace/internal/pkg/apperr"

var (
	ErrServiceNotFound      = apperr.New(apperr.KindNotFound, "service not found")
	ErrCategoryNotFound     = apperr.New(apperr.KindNotFound, "category not found")
	ErrNotOwner             = apperr.New(apperr.KindNotOwner, "you can only modify your own services")
	ErrQuotaExceeded        = apperr.New(apperr.KindQuotaExceeded, "BASIC plan allows at most 3 services, upgrade to PREMIUM to publish more")
	ErrSubscriptionRequired = apperr.New(apperr.KindSubscriptionRequired, "an active subscription is required to publish services")
)
