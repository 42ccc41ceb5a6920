package auth

import "marketplace/internal/pkg/apperr"

var ErrUserNotFound = apperr.New(apperr.KindNotFound, "user not found")
