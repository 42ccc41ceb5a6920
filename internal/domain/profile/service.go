package profile

import (
	"context"

	"github.com/rs/zerolog"

	"marketplace/internal/domain/auth"
	"marketplace/internal/domain/catalog"
	"marketplace/internal/domain/review"
	"marketplace/internal/pkg/apperr"
)

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*auth.User, error)
}

type ListingReader interface {
	FindByProvider(ctx context.Context, providerID int64) ([]catalog.Listing, error)
}

type RatingReader interface {
	SummaryForProvider(ctx context.Context, providerID int64) (review.Summary, error)
}

type Service struct {
	users    UserReader
	listings ListingReader
	ratings  RatingReader
	log      zerolog.Logger
}

func NewService(users UserReader, listings ListingReader, ratings RatingReader, log zerolog.Logger) *Service {
	return &Service{
		users:    users,
		listings: listings,
		ratings:  ratings,
		log:      log.With().Str("component", "profile").Logger(),
	}
}

// Provider assembles the public profile; non-providers are reported as not found.
func (s *Service) Provider(ctx context.Context, id int64) (*ProviderProfile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if u.Role != auth.RoleProvider {
		return nil, ErrProviderNotFound
	}

	listings, err := s.listings.FindByProvider(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range listings {
		listings[i].Provider = nil
	}

	rating, err := s.ratings.SummaryForProvider(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProviderProfile{
		ID:          u.ID,
		Name:        u.Name,
		MemberSince: u.CreatedAt,
		Services:    listings,
		Rating:      rating,
	}, nil
}
