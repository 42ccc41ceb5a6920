package apperr

import (
	"errors"
	"strings"
)

// Kind classifies a business-rule rejection. HTTP mapping lives in pkg/response.
type Kind string

const (
	KindNotFound             Kind = "NOT_FOUND"
	KindForbidden            Kind = "FORBIDDEN"
	KindAccessDenied         Kind = "ACCESS_DENIED"
	KindNotOwner             Kind = "NOT_OWNER"
	KindValidation           Kind = "VALIDATION_ERROR"
	KindSelfBooking          Kind = "SELF_BOOKING"
	KindSubscriptionRequired Kind = "SUBSCRIPTION_REQUIRED"
	KindQuotaExceeded        Kind = "QUOTA_EXCEEDED"
	KindAlreadyActive        Kind = "ALREADY_ACTIVE"
	KindAlreadyPaid          Kind = "ALREADY_PAID"
	KindNotCompleted         Kind = "NOT_COMPLETED"
	KindAlreadyReviewed      Kind = "ALREADY_REVIEWED"
	KindInvalidTransition    Kind = "INVALID_TRANSITION"
)

// Error is a typed domain failure.
type Error struct {
	Kind    Kind
	Message string
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return strings.ToLower(string(e.Kind))
}

// Is lets a bare kind sentinel (empty Message) match every error of that kind,
// while concrete sentinels only match themselves.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

var (
	ErrNotFound             = &Error{Kind: KindNotFound}
	ErrForbidden            = &Error{Kind: KindForbidden}
	ErrAccessDenied         = &Error{Kind: KindAccessDenied}
	ErrNotOwner             = &Error{Kind: KindNotOwner}
	ErrValidation           = &Error{Kind: KindValidation}
	ErrSelfBooking          = &Error{Kind: KindSelfBooking}
	ErrSubscriptionRequired = &Error{Kind: KindSubscriptionRequired}
	ErrQuotaExceeded        = &Error{Kind: KindQuotaExceeded}
	ErrAlreadyActive        = &Error{Kind: KindAlreadyActive}
	ErrAlreadyPaid          = &Error{Kind: KindAlreadyPaid}
	ErrNotCompleted         = &Error{Kind: KindNotCompleted}
	ErrAlreadyReviewed      = &Error{Kind: KindAlreadyReviewed}
	ErrInvalidTransition    = &Error{Kind: KindInvalidTransition}
)

// KindOf returns the kind of the first *Error in err's chain, or "" when err
// is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Validation builds a validation error with a custom message.
func Validation(message string) *Error {
	return New(KindValidation, message)
}
