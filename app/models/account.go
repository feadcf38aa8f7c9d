package models

import "time"

// Role is the coarse permission tier attached to every account.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

// Account is a registered storefront identity. Registration always creates
// customers; the single admin account comes from seeding. Accounts are never
// deleted and roles never change through the API.
type Account struct {
	ID        string    `bson:"_id"               json:"id"`
	Email     string    `bson:"email"             json:"email"`
	Name      string    `bson:"name"              json:"name"`
	Role      Role      `bson:"role"              json:"role"`
	Password  string    `bson:"password"          json:"-"` // sha256 digest, never serialised
	Phone     string    `bson:"phone,omitempty"   json:"phone,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt time.Time `bson:"created_at"        json:"created_at"`
}

// IsAdmin reports whether the account holds the admin role.
func (a *Account) IsAdmin() bool { return a.Role == RoleAdmin }
