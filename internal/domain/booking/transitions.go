package booking

import "marketplace/internal/domain/auth"

// transitions lists, per actor role and current status, the statuses that
// actor may move a booking to. Terminal statuses have no entry.
var transitions = map[auth.Role]map[Status][]Status{
	auth.RoleClient: {
		StatusPending:   {StatusCancelled},
		StatusConfirmed: {StatusCancelled},
	},
	auth.RoleProvider: {
		StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
		StatusConfirmed: {StatusCancelled, StatusCompleted},
	},
	auth.RoleAdmin: {
		StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
		StatusConfirmed: {StatusPending, StatusCancelled, StatusCompleted},
	},
}

// CanTransition reports whether role may move a booking from one status to another.
func CanTransition(role auth.Role, from, to Status) bool {
	for _, s := range transitions[role][from] {
		if s == to {
			return true
		}
	}
	return false
}

// AllowedTargets returns the statuses role may move a booking in from to.
func AllowedTargets(role auth.Role, from Status) []Status {
	targets := transitions[role][from]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}
