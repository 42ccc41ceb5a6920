package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	cases := []struct {
		role Role
		want Principal
	}{
		{RoleClient, Client{ID: 5}},
		{RoleProvider, Provider{ID: 5}},
		{RoleAdmin, Admin{ID: 5}},
	}
	for _, tc := range cases {
		p, err := NewPrincipal(5, tc.role)
		require.NoError(t, err)
		assert.Equal(t, tc.want, p)
		assert.Equal(t, tc.role, p.Role())
		assert.Equal(t, int64(5), p.UserID())
	}

	_, err := NewPrincipal(5, Role("owner"))
	assert.Error(t, err)
	_, err = NewPrincipal(0, RoleClient)
	assert.Error(t, err)
}
