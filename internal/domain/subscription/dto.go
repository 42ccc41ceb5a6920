package subscription

import "time"

// SubscribeRequest is sent by a provider to start a term
type SubscribeRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Plan   Plan    `json:"plan" binding:"omitempty,oneof=BASIC PREMIUM"`
}

// ChangePlanRequest switches the plan of the running term
type ChangePlanRequest struct {
	Plan   Plan    `json:"plan" binding:"required,oneof=BASIC PREMIUM"`
	Amount float64 `json:"amount" binding:"omitempty,gte=0"`
}

// PlanResponse describes a plan on the pricing page
type PlanResponse struct {
	Plan        Plan `json:"plan"`
	MaxServices int  `json:"max_services"` // -1 = unlimited
	TermMonths  int  `json:"term_months"`
}

// SubscriptionResponse is the public representation of a subscription
type SubscriptionResponse struct {
	ID            int64     `json:"id"`
	Plan          Plan      `json:"plan"`
	Status        Status    `json:"status"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Amount        float64   `json:"amount"`
	DaysRemaining int       `json:"days_remaining"`
	MaxServices   int       `json:"max_services"`
}

// StatusResponse answers "may I publish right now"
type StatusResponse struct {
	IsActive     bool                  `json:"is_active"`
	Subscription *SubscriptionResponse `json:"subscription"`
}

func toResponse(sub *Subscription, now time.Time) *SubscriptionResponse {
	if sub == nil {
		return nil
	}
	return &SubscriptionResponse{
		ID:            sub.ID,
		Plan:          sub.Plan,
		Status:        sub.Status,
		StartDate:     sub.StartDate,
		EndDate:       sub.EndDate,
		Amount:        sub.Amount,
		DaysRemaining: sub.DaysRemaining(now),
		MaxServices:   sub.Plan.ListingLimit(),
	}
}

func availablePlans() []PlanResponse {
	plans := []Plan{PlanBasic, PlanPremium}
	resp := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		resp = append(resp, PlanResponse{Plan: p, MaxServices: p.ListingLimit(), TermMonths: termMonths})
	}
	return resp
}
