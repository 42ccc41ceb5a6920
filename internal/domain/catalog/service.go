package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"marketplace/internal/domain/subscription"
	"marketplace/internal/pkg/validator"
)

// SubscriptionChecker is implemented by subscription.Service
type SubscriptionChecker interface {
	CheckStatus(ctx context.Context, userID int64) (*subscription.StatusResult, error)
}

// Service manages provider listings and the category list.
type Service struct {
	repo Repository
	subs SubscriptionChecker
	log  zerolog.Logger
}

func NewService(repo Repository, subs SubscriptionChecker, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		subs: subs,
		log:  log.With().Str("component", "catalog").Logger(),
	}
}

// CreateInput is the provider-supplied part of a new listing
type CreateInput struct {
	CategoryID  int64   `json:"category_id" validate:"required,gt=0"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"image_url" validate:"omitempty,url"`
}

// UpdateInput is a partial update; nil fields are left as they are.
type UpdateInput struct {
	CategoryID  *int64   `json:"category_id" validate:"omitempty,gt=0"`
	Title       *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url" validate:"omitempty,url"`
}

// publishLimit resolves the listing quota of an entitled provider.
func (s *Service) publishLimit(ctx context.Context, providerID int64) (int, error) {
	status, err := s.subs.CheckStatus(ctx, providerID)
	if err != nil {
		return 0, err
	}
	if !status.IsActive {
		return 0, ErrSubscriptionRequired
	}
	return status.Subscription.Plan.ListingLimit(), nil
}

// AuthorizePublish checks that the provider may add one more listing.
func (s *Service) AuthorizePublish(ctx context.Context, providerID int64) error {
	limit, err := s.publishLimit(ctx, providerID)
	if err != nil {
		return err
	}
	if limit < 0 {
		return nil
	}

	count, err := s.repo.CountByProvider(ctx, providerID)
	if err != nil {
		return err
	}
	if count >= int64(limit) {
		return ErrQuotaExceeded
	}
	return nil
}

// Create publishes a listing. The quota check of AuthorizePublish is repeated
// inside the insert transaction.
func (s *Service) Create(ctx context.Context, providerID int64, in CreateInput) (*Listing, error) {
	if err := validator.Check(in); err != nil {
		return nil, err
	}
	limit, err := s.publishLimit(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureCategory(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	l := &Listing{
		ProviderID:  providerID,
		CategoryID:  in.CategoryID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
	}
	if err := s.repo.CreateWithinLimit(ctx, l, limit); err != nil {
		return nil, err
	}

	s.log.Info().Int64("provider_id", providerID).Int64("service_id", l.ID).Msg("service published")
	return l, nil
}

func (s *Service) FindAll(ctx context.Context, f ListFilters) ([]Listing, int64, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) FindByProvider(ctx context.Context, providerID int64) ([]Listing, error) {
	listings, _, err := s.repo.List(ctx, ListFilters{ProviderID: providerID})
	return listings, err
}

func (s *Service) FindOne(ctx context.Context, id int64) (*Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id, providerID int64, in UpdateInput) (*Listing, error) {
	if err := validator.Check(in); err != nil {
		return nil, err
	}

	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.ProviderID != providerID {
		return nil, ErrNotOwner
	}

	if in.CategoryID != nil {
		if err := s.ensureCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		l.CategoryID = *in.CategoryID
		l.Category = nil
	}
	if in.Title != nil {
		l.Title = *in.Title
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.Price != nil {
		l.Price = *in.Price
	}
	if in.ImageURL != nil {
		l.ImageURL = *in.ImageURL
	}
	l.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Remove(ctx context.Context, id, providerID int64) error {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if l.ProviderID != providerID {
		return ErrNotOwner
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Int64("provider_id", providerID).Int64("service_id", id).Msg("service removed")
	return nil
}

func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx)
}

// SeedCategories inserts DefaultCategories when the table is empty.
func (s *Service) SeedCategories(ctx context.Context) error {
	n, err := s.repo.CountCategories(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	cats := make([]Category, len(DefaultCategories))
	copy(cats, DefaultCategories)
	if err := s.repo.CreateCategories(ctx, cats); err != nil {
		return err
	}

	s.log.Info().Int("count", len(cats)).Msg("categories seeded")
	return nil
}

func (s *Service) ensureCategory(ctx context.Context, id int64) error {
	ok, err := s.repo.CategoryExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}
