package notification

import "marketplace/internal/pkg/apperr"

var ErrNotificationNotFound = apperr.New(apperr.KindNotFound, "notification not found")
