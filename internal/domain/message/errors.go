package message

import "marketplace/internal/pkg/apperr"

var (
	ErrNotParticipant = apperr.New(apperr.KindForbidden, "only the client and provider of this booking can use its conversation")
	ErrEmptyContent   = apperr.New(apperr.KindValidation, "content is required")
	ErrContentTooLong = apperr.New(apperr.KindValidation, "content must be at most 2000 characters")
)
