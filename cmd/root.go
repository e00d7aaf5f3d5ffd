package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cos-manager/core/config"
	"cos-manager/core/logger"
	"cos-manager/feature/bucket"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var bucketFlag string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cos-manager",
	Short: "Object Storage Bucket CLI",
	Long: `cos-manager works with a remote object-storage bucket as if it were a
directory tree: list, mkdir, upload with checksum metadata, download,
delete and inspect objects. The bucket's region is resolved automatically.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&bucketFlag, "bucket", "", "Bucket short name (overrides STORAGE_BUCKET)")
}

// openBucket loads configuration, builds the logger and resolves a handle
// to the configured bucket. Every command goes through here.
func openBucket(ctx context.Context) (*bucket.Bucket, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	// One ray id per invocation correlates every log line of a run.
	logg = logg.With(zap.String("ray_id", uuid.NewString()))

	name := bucketFlag
	if name == "" {
		name = cfg.Storage.Bucket
	}
	if name == "" {
		return nil, nil, errors.New("no bucket set: use --bucket or STORAGE_BUCKET")
	}

	ident, err := bucket.NewIdentity(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}

	b, err := bucket.Open(ctx, ident, name, logg)
	if err != nil {
		return nil, nil, err
	}
	return b, logg, nil
}
