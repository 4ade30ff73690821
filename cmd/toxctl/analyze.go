package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toxctl/toxctl/internal/render"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Analyze text for toxic content",
		Long: `Analyze runs the given text through the toxicity detection service and
prints the verdict, per-category scores, sentiment, and a cleaned rewrite
when toxic content is found.

Text may be passed as arguments or piped on stdin:

  toxctl analyze "you are wonderful"
  cat draft.txt | toxctl analyze`,
		RunE: runAnalyze,
	}

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	// Validation happens before any request is made; the request carries
	// the trimmed text.
	text = strings.TrimSpace(text)
	if text == "" {
		fmt.Fprintln(os.Stderr, render.FormatError("Please enter some text to analyze."))
		return nil
	}

	mgr, err := newSessionManager()
	if err != nil {
		return err
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	result, err := client.Analyze(ctx, text)
	if err != nil {
		return err
	}

	// Authenticated analyses come back with a history record id; remember it
	// so `toxctl favorite` and `toxctl report` can target the latest run.
	if result.RecordID != "" {
		if saveErr := mgr.SetLastRecordID(result.RecordID); saveErr != nil {
			slog.Warn("failed to remember record id", "error", saveErr)
		}
	}

	fmt.Fprintln(os.Stdout, render.Results(result, render.Options{Authenticated: mgr.IsAuthenticated()}))
	return nil
}
