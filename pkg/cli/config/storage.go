package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/bussola-app/bussola/pkg/service/storage"
)

// Storage holds CLI flags for the upload bucket
type Storage struct {
	bucket  string
	prefix  string
	baseURL string
}

// Flags returns CLI flags for Cloud Storage
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "Cloud Storage bucket for uploaded files (uploads are disabled when empty)",
			Sources:     cli.EnvVars("BUSSOLA_STORAGE_BUCKET"),
			Destination: &s.bucket,
		},
		&cli.StringFlag{
			Name:        "storage-prefix",
			Usage:       "Object name prefix for uploaded files",
			Value:       "uploads",
			Sources:     cli.EnvVars("BUSSOLA_STORAGE_PREFIX"),
			Destination: &s.prefix,
		},
		&cli.StringFlag{
			Name:        "storage-base-url",
			Usage:       "Public base URL of uploaded objects",
			Sources:     cli.EnvVars("BUSSOLA_STORAGE_BASE_URL"),
			Destination: &s.baseURL,
		},
	}
}

// LogValue implements slog.LogValuer
func (s *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", s.bucket),
		slog.String("prefix", s.prefix),
	)
}

// Configure creates the Cloud Storage client. It returns nil when no bucket is configured.
func (s *Storage) Configure(ctx context.Context) (*storage.GCS, error) {
	if s.bucket == "" {
		return nil, nil
	}

	opts := []storage.Option{storage.WithPrefix(s.prefix)}
	if s.baseURL != "" {
		opts = append(opts, storage.WithBaseURL(s.baseURL))
	}
	gcs, err := storage.New(ctx, s.bucket, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", s.bucket))
	}
	return gcs, nil
}
