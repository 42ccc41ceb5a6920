package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/internal/domain/auth"
)

func TestCanTransition(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

	allowed := map[auth.Role]map[Status]map[Status]bool{
		auth.RoleClient: {
			StatusPending:   {StatusCancelled: true},
			StatusConfirmed: {StatusCancelled: true},
		},
		auth.RoleProvider: {
			StatusPending:   {StatusConfirmed: true, StatusCancelled: true, StatusCompleted: true},
			StatusConfirmed: {StatusCancelled: true, StatusCompleted: true},
		},
		auth.RoleAdmin: {
			StatusPending:   {StatusConfirmed: true, StatusCancelled: true, StatusCompleted: true},
			StatusConfirmed: {StatusPending: true, StatusCancelled: true, StatusCompleted: true},
		},
	}

	for _, role := range []auth.Role{auth.RoleClient, auth.RoleProvider, auth.RoleAdmin} {
		for _, from := range all {
			for _, to := range all {
				want := allowed[role][from][to]
				assert.Equalf(t, want, CanTransition(role, from, to), "%s: %s -> %s", role, from, to)
			}
		}
	}
}

func TestTerminalStatusesHaveNoExit(t *testing.T) {
	for _, role := range []auth.Role{auth.RoleClient, auth.RoleProvider, auth.RoleAdmin} {
		assert.Empty(t, AllowedTargets(role, StatusCancelled))
		assert.Empty(t, AllowedTargets(role, StatusCompleted))
	}
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.False(t, StatusPending.Terminal())
}

func TestAllowedTargetsReturnsCopy(t *testing.T) {
	targets := AllowedTargets(auth.RoleProvider, StatusPending)
	targets[0] = StatusPending
	assert.Equal(t, StatusConfirmed, AllowedTargets(auth.RoleProvider, StatusPending)[0])
}
