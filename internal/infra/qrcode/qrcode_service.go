// Package qrcode renders and parses the QR codes used to share saved shopping lists.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"grocery/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// PayloadTypeShoppingList marks a QR payload that points at a saved shopping list.
const PayloadTypeShoppingList = "shopping_list"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Type           string `json:"type"`
	ShoppingListID string `json:"shopping_list_id"`
	URL            string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance.
// baseURL, when set, is used to embed a link to the list in the payload.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

func (s *qrcodeService) payload(listID uuid.UUID) QRCodeData {
	data := QRCodeData{
		Type:           PayloadTypeShoppingList,
		ShoppingListID: listID.String(),
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/api/v1/shopping-lists/" + listID.String()
	}

	return data
}

// GenerateShoppingListQR generates a PNG QR code for a saved shopping list
func (s *qrcodeService) GenerateShoppingListQR(listID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(s.payload(listID))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShoppingListQR parses QR code data and returns the shopping list ID
func (s *qrcodeService) ParseShoppingListQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != PayloadTypeShoppingList {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	listID, err := uuid.Parse(data.ShoppingListID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse shopping list ID: %w", err)
	}

	return listID, nil
}
