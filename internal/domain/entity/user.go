// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxProfileAddresses is the number of address slots a profile can hold.
const MaxProfileAddresses = 4

// User is a registered account. Email is the public identifier used in routes.
type User struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the user.
	Email        string       // Unique login identifier.
	PasswordHash string       // bcrypt hash; never leaves the service layer.
	Role         Role         // Current access tier.
	Profile      *UserProfile // Nil until the user completes a profile.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal returns the identity embedded into tokens for this user.
func (u *User) Principal() *Principal {
	return &Principal{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	}
}

// UserProfile holds the personal details that promote a user to VERIFIED.
type UserProfile struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	FirstName   string
	LastName    string
	Phone       string
	Addresses   []ProfileAddress // At most MaxProfileAddresses entries.
	DateOfBirth *time.Time
	Age         *int // Derived from DateOfBirth when it is set.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileAddress is one street address and the city it belongs to.
type ProfileAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
}
