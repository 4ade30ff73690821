package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/toxctl/toxctl/internal/common"
	"github.com/toxctl/toxctl/internal/render"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [record-id]",
		Short: "Write a plain-text report for an analysis",
		Long: `Report regenerates the downloadable text report for a history record.
With no arguments it targets the most recent analysis from this terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReport,
	}

	cmd.Flags().StringP("output", "o", "", "output file (default: toxicity-report-<timestamp>.txt)")

	return cmd
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mgr, err := newSessionManager()
	if err != nil {
		return err
	}
	if err := requireAuth(mgr, "Please login to generate reports."); err != nil {
		return err
	}

	id := mgr.LastRecordID()
	if len(args) == 1 {
		id = args[0]
	}
	if id == "" {
		return common.NewUserError("No recent analysis to report on. Pass a record id or run 'toxctl analyze' first.", common.ErrNotFound)
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	result, err := client.GetRecord(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = fmt.Sprintf("toxicity-report-%s.txt", now.Format("20060102-150405"))
	}

	if err := os.WriteFile(output, []byte(render.Report(result, now)), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Fprintln(os.Stdout, render.FormatSuccess(fmt.Sprintf("Report written to %s", output)))
	return nil
}
