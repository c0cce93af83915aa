package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supermarket is a store located in exactly one city.
type Supermarket struct {
	ID        uuid.UUID
	Name      string
	Comments  string
	City      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
