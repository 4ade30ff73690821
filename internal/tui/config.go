// Package tui implements the interactive full-screen analysis panel.
package tui

import (
	"fmt"

	"github.com/toxctl/toxctl/internal/api"
	"github.com/toxctl/toxctl/internal/session"
)

// Config holds everything the interactive panel needs to run.
type Config struct {
	Client  *api.Client
	Session *session.Manager
}

// Validate checks that required dependencies are set.
func (c *Config) Validate() error {
	if c.Client == nil {
		return fmt.Errorf("client is required")
	}
	if c.Session == nil {
		return fmt.Errorf("session manager is required")
	}
	return nil
}
