package models

import "time"

// OperatorRole represents the privilege tier of an operator account.
type OperatorRole string

const (
	RoleFounder OperatorRole = "founder"
	RoleCEO     OperatorRole = "ceo"
	RoleOwner   OperatorRole = "owner"
)

// Valid reports whether the role is one of the known tiers.
func (r OperatorRole) Valid() bool {
	switch r {
	case RoleFounder, RoleCEO, RoleOwner:
		return true
	}
	return false
}

// Operator is a privileged account permitted to administer the platform.
type Operator struct {
	ID        string       `db:"id" json:"id"`
	Email     string       `db:"email" json:"email"`
	Name      string       `db:"name" json:"name"`
	Role      OperatorRole `db:"role" json:"role"`
	StudentID *string      `db:"student_id" json:"student_id,omitempty"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}

// AuthAccount is an identity-provider credential record. Operators reference
// accounts by email; an account without a matching operator row carries no
// console access.
type AuthAccount struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
