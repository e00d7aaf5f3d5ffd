package main

import (
	"context"
	"fmt"
	"log"

	"cos-manager/core/config"
	"cos-manager/core/logger"
	"cos-manager/core/storage"
	"cos-manager/feature/bucket"

	"github.com/minio/minio-go/v7"
)

// Probes every candidate region for the configured bucket and prints what each
// endpoint answers, then runs the real resolution path for comparison. Useful
// when a bucket refuses to resolve and the failover log alone is not enough.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	name := cfg.Storage.Bucket
	if name == "" {
		log.Fatal("STORAGE_BUCKET is not set")
	}

	ctx := context.Background()

	// Configured region first, then the defaults it is not already part of.
	regions := []string{cfg.Storage.Region}
	for _, r := range bucket.DefaultRegions {
		if r != cfg.Storage.Region {
			regions = append(regions, r)
		}
	}

	fmt.Printf("=== Probing %d regions for bucket %q ===\n", len(regions), name)

	for _, region := range regions {
		regionCfg := cfg.Storage
		regionCfg.Region = region

		client, err := storage.NewClient(regionCfg)
		if err != nil {
			log.Fatal(err)
		}

		accountID, err := client.AccountID(ctx)
		if err != nil {
			fmt.Printf("%-14s FATAL account id lookup failed: %v\n", region, err)
			continue
		}
		fullName := name + "-" + accountID

		switch err := probe(ctx, client, fullName); {
		case err == nil:
			fmt.Printf("%-14s OK    bucket %s answers here\n", region, fullName)
		case storage.IsNoSuchBucket(err):
			fmt.Printf("%-14s MISS  %s not hosted here\n", region, fullName)
		default:
			fmt.Printf("%-14s FATAL code=%s err=%v\n", region, storage.ErrorCode(err), err)
		}
	}

	fmt.Println("\n=== Production resolution path ===")

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatal(err)
	}

	ident, err := bucket.NewIdentity(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}

	b, err := bucket.Open(ctx, ident, name, logg)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Resolved region: %s\n", b.Region())
	fmt.Printf("Full name:       %s\n", b.FullName())
	fmt.Printf("Base URL:        %s\n", b.BaseURL())
}

func probe(ctx context.Context, client storage.Client, fullName string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for obj := range client.ListObjects(ctx, fullName, minio.ListObjectsOptions{MaxKeys: 1}) {
		if obj.Err != nil {
			return obj.Err
		}
		break
	}
	return nil
}
