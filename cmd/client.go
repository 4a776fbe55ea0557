package cmd

import (
	"context"
	"fmt"

	"github.com/jfmyers9/pandora/internal/config"
	"github.com/jfmyers9/pandora/internal/secrets"
	"github.com/jfmyers9/pandora/pkg/pandora"
	"github.com/rs/zerolog"
)

// apiLogger adapts zerolog to the SDK's Logger interface.
type apiLogger struct {
	log zerolog.Logger
}

func (l apiLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug().Msgf(format, args...)
}

// newClient builds an API client from configuration.
func newClient(cfg *config.Config, logger zerolog.Logger) (*pandora.Client, error) {
	session, err := pandora.NewSession()
	if err != nil {
		return nil, err
	}
	if cfg.Proxy != "" {
		if err := session.SetProxy(cfg.Proxy); err != nil {
			return nil, fmt.Errorf("invalid proxy in config: %w", err)
		}
	}

	return pandora.NewClient(pandora.Config{
		Session:     session,
		AudioFormat: cfg.AudioFormat,
		UserAgent:   "pandora-cli/" + version,
		Logger:      apiLogger{log: logger},
	})
}

// loginClient builds a client and logs in with the configured
// account, reading the password from the keyring.
func loginClient(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*pandora.Client, error) {
	if cfg.Email == "" {
		return nil, fmt.Errorf("no account configured. Run 'pandora auth login' first")
	}

	store, err := secrets.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	if err := store.Unlock(ctx); err != nil {
		return nil, err
	}
	password, err := store.Password(ctx, cfg.Email)
	if err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("no password stored for %s. Run 'pandora auth login' first", cfg.Email)
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	if _, err := client.Auth().Login(ctx, cfg.Email, password); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return client, nil
}
