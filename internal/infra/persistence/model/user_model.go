// Package model holds the GORM persistence models. Each model mirrors one table created by the SQL migrations.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null;default:BASIC"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile *UserProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AddressColumn is one element of the user_profiles.addresses JSONB array.
type AddressColumn struct {
	Address string `json:"address"`
	City    string `json:"city"`
}

// UserProfileModel mirrors the 'user_profiles' table. UserID references users.id and is unique.
type UserProfileModel struct {
	ID          uuid.UUID                         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID                         `gorm:"type:uuid;unique;not null"`
	FirstName   string                            `gorm:"type:varchar(100)"`
	LastName    string                            `gorm:"type:varchar(100)"`
	Phone       string                            `gorm:"type:varchar(32)"`
	Addresses   datatypes.JSONSlice[AddressColumn] `gorm:"type:jsonb;not null;default:'[]'"`
	DateOfBirth *time.Time                        `gorm:"type:date"`
	Age         *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
