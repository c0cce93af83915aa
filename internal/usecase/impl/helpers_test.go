package impl

import (
	"io"
	"log/slog"

	"grocery/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(missPolicy string, persist bool) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		ShoppingList: &config.ShoppingListConfig{
			MissPolicy:     missPolicy,
			Persist:        &persist,
			ResolveWorkers: 4,
		},
	}
}
