package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/toxctl/toxctl/internal/common"
	"github.com/toxctl/toxctl/internal/render"
)

func uploadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Analyze every line of a text file",
		Long: `Upload sends a text file to the server for line-by-line analysis and
prints aggregate stats plus a per-line verdict table.`,
		Args: cobra.ExactArgs(1),
		RunE: runUpload,
	}

	return cmd
}

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return common.NewUserError(fmt.Sprintf("File not found: %s", path), common.ErrNoSuchFile)
		}
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if info.Size() == 0 {
		return common.NewUserError(fmt.Sprintf("File is empty: %s", path), common.ErrEmptyUpload)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	mgr, err := newSessionManager()
	if err != nil {
		return err
	}

	client, err := newAPIClient(mgr)
	if err != nil {
		return err
	}

	bar := progressbar.DefaultBytes(info.Size(), "uploading")
	result, err := client.Upload(ctx, filepath.Base(path), io.TeeReader(file, bar))
	_ = bar.Finish()
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, render.UploadStats(result))
	if len(result.Results) > 0 {
		fmt.Fprintln(os.Stdout, render.UploadTable(result.Results))
	}
	return nil
}
