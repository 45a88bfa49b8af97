package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/michal-klimek/azure-log-converter/internal/cli"
	"github.com/michal-klimek/azure-log-converter/internal/cloud"
)

func newDownloadCmd() *cobra.Command {
	var (
		outPath    string
		list       bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "download <cloud-url>",
		Short: "Fetch a log export from cloud storage",
		Long:  "Download a source log export from S3 or GCS (s3://bucket/key or gs://bucket/key) before converting it locally, or list objects under a prefix with --list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := opContext()
			defer cancel()
			return runDownload(ctx, args[0], outPath, list, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file path (default: object base name)")
	cmd.Flags().BoolVar(&list, "list", false, "list objects under the prefix instead of downloading")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output summary as JSON")

	return cmd
}

func runDownload(ctx context.Context, rawURL, outPath string, list, jsonOutput bool) error {
	scheme, bucket, key, err := cloud.ParseURL(rawURL)
	if err != nil {
		return cli.NewUsageError(fmt.Sprintf("invalid URL: %v", err))
	}

	backend, err := cloud.NewBackend(ctx, scheme, bucket)
	if err != nil {
		return cli.NewNetworkError(fmt.Sprintf("connect to %s: %v", scheme, err))
	}

	if list {
		return listObjects(ctx, backend, scheme, bucket, key, jsonOutput)
	}

	if key == "" {
		return cli.NewUsageError("URL must name an object to download (or pass --list)")
	}
	if outPath == "" {
		outPath = path.Base(key)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	if err := backend.Download(ctx, key, f); err != nil {
		_ = f.Close()
		_ = os.Remove(outPath)
		return cli.NewNetworkError(err.Error())
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}

	info, _ := os.Stat(outPath)
	var size int64
	if info != nil {
		size = info.Size()
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"source": rawURL,
			"output": outPath,
			"bytes":  size,
		})
	}

	_, _ = fmt.Fprintf(os.Stderr, "Downloaded %s -> %s (%d bytes)\n", rawURL, outPath, size)
	return nil
}

func listObjects(ctx context.Context, backend cloud.Backend, scheme, bucket, prefix string, jsonOutput bool) error {
	objects, err := backend.List(ctx, prefix)
	if err != nil {
		return cli.NewNetworkError(err.Error())
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(objects)
	}

	for _, obj := range objects {
		fmt.Printf("%s://%s/%s\t%d\n", scheme, bucket, obj.Key, obj.Size)
	}
	return nil
}
