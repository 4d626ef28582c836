package impl

import (
	"io"
	"log/slog"

	"pumpdesk/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(statusClearRetries int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BearerScheme:       "Bearer",
			StatusClearRetries: statusClearRetries,
			MinPasswordLength:  6,
		},
	}
}
