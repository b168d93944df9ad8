// Copyright 2026 The TaskForce Go SDK Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	taskforce "github.com/taskforceai/taskforce-go"
)

var (
	filesLimit   int
	filesOffset  int
	filesPurpose string
	filesOutput  string
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Manage uploaded files",
}

var filesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded files",
	RunE:  runFilesList,
}

var filesUploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesUpload,
}

var filesDownloadCmd = &cobra.Command{
	Use:   "download <file-id>",
	Short: "Download a file's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesDownload,
}

var filesDeleteCmd = &cobra.Command{
	Use:   "delete <file-id>",
	Short: "Delete a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilesDelete,
}

func init() {
	rootCmd.AddCommand(filesCmd)
	filesCmd.AddCommand(filesListCmd, filesUploadCmd, filesDownloadCmd, filesDeleteCmd)

	filesListCmd.Flags().IntVar(&filesLimit, "limit", 20, "Maximum number of files to return")
	filesListCmd.Flags().IntVar(&filesOffset, "offset", 0, "Offset into the file list")
	filesUploadCmd.Flags().StringVar(&filesPurpose, "purpose", "", "Purpose label for the file")
	filesDownloadCmd.Flags().StringVarP(&filesOutput, "output", "o", "", "Write content to this path instead of stdout")
}

func runFilesList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.ListFiles(cmd.Context(), filesLimit, filesOffset)
	if err != nil {
		return err
	}

	for _, f := range resp.Files {
		fmt.Printf("%s  %-30s  %8d bytes  %s\n",
			f.ID, f.Filename, f.Bytes, f.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("%d of %d files\n", len(resp.Files), resp.Total)
	return nil
}

func runFilesUpload(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	var opts *taskforce.FileUploadOptions
	if filesPurpose != "" {
		opts = &taskforce.FileUploadOptions{Purpose: filesPurpose}
	}

	file, err := client.UploadFile(cmd.Context(), filepath.Base(args[0]), content, opts)
	if err != nil {
		return err
	}
	fmt.Printf("uploaded %s as %s\n", file.Filename, file.ID)
	return nil
}

func runFilesDownload(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	content, err := client.DownloadFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if filesOutput == "" {
		_, err = os.Stdout.Write(content)
		return err
	}
	return os.WriteFile(filesOutput, content, 0o644)
}

func runFilesDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	if err := client.DeleteFile(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}
