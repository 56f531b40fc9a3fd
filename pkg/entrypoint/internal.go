package entrypoint

import (
	"context"

	"livesplit-hotkeys/pkg/config"
	"livesplit-hotkeys/pkg/livesplit"
	"livesplit-hotkeys/pkg/relay"
	"livesplit-hotkeys/pkg/settings"
)

// clientInterface defines the interface for a client that can connect
// and send timer commands.
type clientInterface interface {
	relay.Sender
	Connect() error
	Close() error
}

// clientFactory is a function type for creating clients.
type clientFactory func(context.Context, *config.Config) clientInterface

// realClientFactory returns the actual client factory used in production.
func realClientFactory() clientFactory {
	return func(ctx context.Context, cfg *config.Config) clientInterface {
		return livesplit.New(ctx, cfg)
	}
}

// settingsLoader is a function type for loading the settings file.
type settingsLoader func(path, profile string) (*settings.Settings, error)
