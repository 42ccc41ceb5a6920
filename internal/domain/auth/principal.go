package auth

import "fmt"

// Principal is the authenticated actor of a request. It is a closed set:
// Client, Provider and Admin are the only implementations.
type Principal interface {
	UserID() int64
	Role() Role
	isPrincipal()
}

type Client struct{ ID int64 }

type Provider struct{ ID int64 }

type Admin struct{ ID int64 }

func (p Client) UserID() int64   { return p.ID }
func (p Provider) UserID() int64 { return p.ID }
func (p Admin) UserID() int64    { return p.ID }

func (Client) Role() Role   { return RoleClient }
func (Provider) Role() Role { return RoleProvider }
func (Admin) Role() Role    { return RoleAdmin }

func (Client) isPrincipal()   {}
func (Provider) isPrincipal() {}
func (Admin) isPrincipal()    {}

// NewPrincipal builds the variant matching role.
func NewPrincipal(userID int64, role Role) (Principal, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("invalid principal id %d", userID)
	}
	switch role {
	case RoleClient:
		return Client{ID: userID}, nil
	case RoleProvider:
		return Provider{ID: userID}, nil
	case RoleAdmin:
		return Admin{ID: userID}, nil
	}
	return nil, fmt.Errorf("unknown role %q", role)
}
