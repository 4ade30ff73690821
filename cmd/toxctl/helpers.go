package main

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/toxctl/toxctl/internal/api"
	"github.com/toxctl/toxctl/internal/cli"
	"github.com/toxctl/toxctl/internal/common"
	"github.com/toxctl/toxctl/internal/config"
	"github.com/toxctl/toxctl/internal/session"
)

// prompter talks to the user's terminal for confirmations and credentials.
var prompter = cli.NewPrompter(nil, nil)

// newSessionManager loads the persisted session from the config directory.
func newSessionManager() (*session.Manager, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	return session.NewManager(session.NewStore(filepath.Join(dir, "session.json")))
}

// newAPIClient builds an API client backed by the session manager. A 401
// response with a stale token drops the local session so the next command
// starts as a guest.
func newAPIClient(mgr *session.Manager) (*api.Client, error) {
	client, err := api.NewClient(api.Config{
		BaseURL: viper.GetString("server.url"),
		Timeout: viper.GetDuration("server.timeout"),
	}, mgr)
	if err != nil {
		return nil, err
	}

	client.OnUnauthorized(func() {
		if logoutErr := mgr.Logout(); logoutErr != nil {
			slog.Warn("failed to clear expired session", "error", logoutErr)
		}
	})

	return client, nil
}

// requireAuth returns a user-facing error when no session is active.
func requireAuth(mgr *session.Manager, message string) error {
	if !mgr.IsAuthenticated() {
		return common.NewUserError(message, common.ErrUnauthorized)
	}
	return nil
}
