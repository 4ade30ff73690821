package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/toxctl/toxctl/internal/common"
	"github.com/toxctl/toxctl/internal/model"
	"github.com/toxctl/toxctl/internal/render"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse your analysis history",
		Long: `History lists past analyses stored on the server for your account.

Records can be filtered, re-opened, favorited, and deleted.`,
	}

	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyShowCmd())
	cmd.AddCommand(historyDeleteCmd())

	return cmd
}

func historyListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List past analyses",
		RunE:  runHistoryList,
	}

	cmd.Flags().String("filter", model.FilterAll, "filter records (all, toxic, safe, favorites)")

	return cmd
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	filter, _ := cmd.Flags().GetString("filter")
	if !model.ValidFilter(filter) {
		return common.NewUserError(fmt.Sprintf("Unknown filter %q. Valid filters: all, toxic, safe, favorites.", filter), common.ErrInvalidConfig)
	}

	mgr, err := newSessionManager()
	if err != nil {
		return err
	}
	if err := requireAuth(mgr, "Please login to view your history."); err != nil {
		return err
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	records, err := client.History(ctx, filter)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, render.EmptyHistory())
		return nil
	}

	fmt.Fprintln(os.Stdout, render.HistoryList(records))
	return nil
}

func historyShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <record-id>",
		Short: "Show a past analysis in full",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryShow,
	}

	return cmd
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mgr, err := newSessionManager()
	if err != nil {
		return err
	}
	if err := requireAuth(mgr, "Please login to view your history."); err != nil {
		return err
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	result, err := client.GetRecord(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, render.Results(result, render.Options{Authenticated: true}))
	return nil
}

func historyDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <record-id>",
		Short: "Delete a record from your history",
		Args:  cobra.ExactArgs(1),
		RunE:  runHistoryDelete,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
	cmd.Flags().String("filter", model.FilterAll, "filter view to reload after deleting")

	return cmd
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	filter, _ := cmd.Flags().GetString("filter")
	if !model.ValidFilter(filter) {
		return common.NewUserError(fmt.Sprintf("Unknown filter %q. Valid filters: all, toxic, safe, favorites.", filter), common.ErrInvalidConfig)
	}

	mgr, err := newSessionManager()
	if err != nil {
		return err
	}
	if err := requireAuth(mgr, "Please login to manage your history."); err != nil {
		return err
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force && !prompter.Confirm("Delete this record? This cannot be undone.") {
		fmt.Fprintln(os.Stdout, "Delete canceled.")
		return nil
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	if err := client.DeleteRecord(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, render.FormatSuccess("Record deleted."))

	// Deletion reloads the current filter view.
	records, err := client.History(ctx, filter)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, render.EmptyHistory())
		return nil
	}
	fmt.Fprintln(os.Stdout, render.HistoryList(records))
	return nil
}

func favoriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite [record-id]",
		Short: "Toggle the favorite star on an analysis",
		Long: `Favorite toggles the star on a history record. With no arguments it
targets the most recent analysis from this terminal.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFavorite,
	}

	return cmd
}

func runFavorite(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mgr, err := newSessionManager()
	if err != nil {
		return err
	}
	if err := requireAuth(mgr, "Please login to favorite analyses."); err != nil {
		return err
	}

	id := mgr.LastRecordID()
	if len(args) == 1 {
		id = args[0]
	}
	if id == "" {
		return common.NewUserError("No recent analysis to favorite. Pass a record id or run 'toxctl analyze' first.", common.ErrNotFound)
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	favorited, err := client.ToggleFavorite(ctx, id)
	if err != nil {
		return err
	}

	// Older servers do not echo the new state back.
	switch {
	case favorited == nil:
		fmt.Fprintln(os.Stdout, render.FormatSuccess("Favorite toggled."))
	case *favorited:
		fmt.Fprintln(os.Stdout, render.FormatSuccess("★ Added to favorites."))
	default:
		fmt.Fprintln(os.Stdout, render.FormatSuccess("Removed from favorites."))
	}
	return nil
}
