package subscription

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"marketplace/internal/domain/auth"
)

// Service decides whether a provider is currently entitled to publish.
// Clients and admins are never gated.
type Service struct {
	repo Repository
	log  zerolog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("component", "subscription").Logger(),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// StatusResult is the outcome of an entitlement check
type StatusResult struct {
	IsActive     bool          `json:"is_active"`
	Subscription *Subscription `json:"subscription"`
}

// CheckStatus evaluates entitlement against the current clock. The first check
// that finds an elapsed ACTIVE term persists EXPIRED.
func (s *Service) CheckStatus(ctx context.Context, userID int64) (*StatusResult, error) {
	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return &StatusResult{IsActive: false}, nil
	}

	now := s.now()
	if sub.IsActiveAt(now) {
		return &StatusResult{IsActive: true, Subscription: sub}, nil
	}

	if sub.Status == StatusActive {
		expired, err := s.repo.ExpireIfDue(ctx, sub.ID, now)
		if err != nil {
			return nil, err
		}
		if expired {
			s.log.Info().
				Int64("user_id", userID).
				Int64("subscription_id", sub.ID).
				Time("end_date", sub.EndDate).
				Msg("subscription expired")
		}
		sub.Status = StatusExpired
	}

	return &StatusResult{IsActive: false, Subscription: sub}, nil
}

// Create starts a new three-month term, replacing an elapsed one.
func (s *Service) Create(ctx context.Context, userID int64, amount float64, plan Plan) (*Subscription, error) {
	if plan == "" {
		plan = PlanBasic
	}
	if !plan.Valid() {
		return nil, ErrInvalidPlan
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	status, err := s.CheckStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status.IsActive {
		return nil, ErrAlreadyActive
	}

	now := s.now()
	sub := &Subscription{
		UserID:    userID,
		Plan:      plan,
		Status:    StatusActive,
		StartDate: now,
		EndDate:   now.AddDate(0, termMonths, 0),
		Amount:    amount,
	}
	if err := s.repo.Replace(ctx, sub, now); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("user_id", userID).
		Str("plan", string(plan)).
		Time("end_date", sub.EndDate).
		Msg("subscription created")

	return sub, nil
}

// GetMine returns the stored subscription row of the user, expired or not.
func (s *Service) GetMine(ctx context.Context, userID int64) (*Subscription, error) {
	status, err := s.CheckStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	if status.Subscription == nil {
		return nil, ErrSubscriptionNotFound
	}
	return status.Subscription, nil
}

// ChangePlan switches the plan of an active term in place. The end date is kept.
// A non-positive amount keeps the amount already paid.
func (s *Service) ChangePlan(ctx context.Context, userID int64, plan Plan, amount float64) (*Subscription, error) {
	if !plan.Valid() {
		return nil, ErrInvalidPlan
	}

	status, err := s.CheckStatus(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !status.IsActive {
		return nil, ErrSubscriptionRequired
	}

	sub := status.Subscription
	if sub.Plan == plan {
		return nil, ErrAlreadyOnPlan
	}
	if amount <= 0 {
		amount = sub.Amount
	}

	if err := s.repo.UpdatePlan(ctx, sub.ID, plan, amount); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("user_id", userID).
		Str("from", string(sub.Plan)).
		Str("to", string(plan)).
		Msg("subscription plan changed")

	sub.Plan = plan
	sub.Amount = amount
	return sub, nil
}

// RequireEntitled lets every non-provider through; providers need an active term.
func (s *Service) RequireEntitled(ctx context.Context, p auth.Principal) error {
	if _, ok := p.(auth.Provider); !ok {
		return nil
	}
	status, err := s.CheckStatus(ctx, p.UserID())
	if err != nil {
		return err
	}
	if !status.IsActive {
		return ErrSubscriptionRequired
	}
	return nil
}
