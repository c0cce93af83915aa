package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		want                 qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(256, tt.errorCorrectionLevel, "").(*qrcodeService)
			assert.Equal(t, tt.want, svc.errorCorrectionLevel)
		})
	}
}

func TestQRCodeService_GenerateShoppingListQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := NewQRCodeService(size, "M", "https://grocery.example.com")

		qrBytes, err := svc.GenerateShoppingListQR(uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_Payload(t *testing.T) {
	listID := uuid.New()

	withURL := NewQRCodeService(256, "M", "https://grocery.example.com/").(*qrcodeService).payload(listID)
	assert.Equal(t, PayloadTypeShoppingList, withURL.Type)
	assert.Equal(t, listID.String(), withURL.ShoppingListID)
	assert.Equal(t, "https://grocery.example.com/api/v1/shopping-lists/"+listID.String(), withURL.URL)

	withoutURL := NewQRCodeService(256, "M", "").(*qrcodeService).payload(listID)
	assert.Empty(t, withoutURL.URL)
}

func TestQRCodeService_ParseShoppingListQR(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://grocery.example.com")
	listID := uuid.New()

	jsonData, err := json.Marshal(svc.(*qrcodeService).payload(listID))
	require.NoError(t, err)

	parsedID, err := svc.ParseShoppingListQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, listID, parsedID)
}

func TestQRCodeService_ParseShoppingListQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M", "")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"invalid json", "invalid json", "failed to unmarshal QR code data"},
		{"wrong type", `{"type":"subscription","shopping_list_id":"` + uuid.NewString() + `"}`, "invalid QR code type"},
		{"bad uuid", `{"type":"shopping_list","shopping_list_id":"not-a-valid-uuid"}`, "failed to parse shopping list ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseShoppingListQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
