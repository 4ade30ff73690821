package main

import (
	"github.com/spf13/cobra"

	"github.com/toxctl/toxctl/internal/tui"
)

func tuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive analysis panel",
		Long: `Tui opens the full-screen interactive panel: type text, analyze it on
the spot, and browse your history side by side.`,
		RunE: runTui,
	}

	return cmd
}

func runTui(cmd *cobra.Command, _ []string) error {
	mgr, err := newSessionManager()
	if err != nil {
		return err
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(), tui.Config{
		Client:  client,
		Session: mgr,
	})
}
