package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShoppingListQR generates a PNG QR code that shares a saved shopping list
	GenerateShoppingListQR(listID uuid.UUID) ([]byte, error)

	// ParseShoppingListQR parses QR code data and returns the shopping list ID
	ParseShoppingListQR(qrData string) (uuid.UUID, error)
}
