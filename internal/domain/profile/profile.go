package profile

import (
	"time"

	"marketplace/internal/domain/catalog"
	"marketplace/internal/domain/review"
	"marketplace/internal/pkg/apperr"
)

var ErrProviderNotFound = apperr.New(apperr.KindNotFound, "provider not found")

// ProviderProfile is the public page of a provider. Contact details stay private.
type ProviderProfile struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	MemberSince time.Time         `json:"member_since"`
	Services    []catalog.Listing `json:"services"`
	Rating      review.Summary    `json:"rating"`
}
