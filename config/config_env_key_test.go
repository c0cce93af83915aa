package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"shoppingList": map[string]any{
			"missPolicy":     "placeholder",
			"resolveWorkers": 4,
		},
		"auth": map[string]any{
			"accessTokenTTL":  "2h",
			"refreshTokenTTL": "168h",
		},
		"redis": map[string]any{
			"addr":        "localhost:6379",
			"dialTimeout": "3s",
		},
		"qrcode": map[string]any{
			"baseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SHOPPINGLIST_MISSPOLICY", want: "shoppingList.missPolicy"},
		{envKey: "SHOPPINGLIST_RESOLVEWORKERS", want: "shoppingList.resolveWorkers"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "REDIS_ADDR", want: "redis.addr"},
		{envKey: "REDIS_DIALTIMEOUT", want: "redis.dialTimeout"},
		{envKey: "QRCODE_BASEURL", want: "qrcode.baseUrl"},
		{envKey: "SHOPPINGLIST_PERSIST", want: "shoppingList.persist"},
		{envKey: "REDIS__ADDR", want: "redis.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}
