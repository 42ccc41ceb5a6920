package admin

import "marketplace/internal/pkg/apperr"

var (
	ErrInvalidRole   = apperr.New(apperr.KindValidation, "role must be CLIENT, PROVIDER or ADMIN")
	ErrInvalidStatus = apperr.New(apperr.KindValidation, "unknown status filter")
)
