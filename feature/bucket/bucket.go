package bucket

import (
	"bytes"
	"context"
	"fmt"

	"cos-manager/core/storage"
	"cos-manager/feature/bucket/objectpath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Bucket is a handle to one remote bucket with a confirmed region binding.
// All operations address the bucket through the identity the handle was
// resolved with; a handle never silently changes region after Open.
type Bucket struct {
	name     string
	fullName string
	region   string
	baseURL  string
	ident    *Identity
	logger   *zap.Logger
}

// Open resolves which region serves the named bucket and returns a handle
// bound to it. The identity's own region is probed first, then the
// DefaultRegions order.
func Open(ctx context.Context, ident *Identity, name string, logger *zap.Logger) (*Bucket, error) {
	return OpenInRegions(ctx, ident, name, DefaultRegions, logger)
}

// OpenInRegions is Open with an explicit candidate region list.
func OpenInRegions(ctx context.Context, ident *Identity, name string, candidates []string, logger *zap.Logger) (*Bucket, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		resolved *Identity
		fullName string
	)
	probe := func(ctx context.Context, region string) error {
		id := ident
		if region != ident.Region() {
			var err error
			id, err = ident.WithRegion(region)
			if err != nil {
				return err
			}
		}

		// The account id suffix can differ per endpoint, so the full
		// name is recomposed for every candidate.
		fq, err := id.FullBucketName(ctx, name)
		if err != nil {
			return err
		}

		if err := probeBucket(ctx, id.client, fq); err != nil {
			if storage.IsNoSuchBucket(err) {
				logger.Warn("bucket not in region, trying next candidate",
					zap.String("bucket", name),
					zap.String("region", region))
			}
			return err
		}

		resolved = id
		fullName = fq
		return nil
	}

	region, err := ResolveRegion(ctx, probe, candidateRegions(ident.Region(), candidates))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve region for bucket %s: %w", name, err)
	}

	b := &Bucket{
		name:     name,
		fullName: fullName,
		region:   region,
		baseURL:  fmt.Sprintf("https://%s.%s/", fullName, storage.EndpointForRegion(region)),
		ident:    resolved,
		logger:   logger,
	}
	b.logger.Info("bucket opened",
		zap.String("bucket", b.name),
		zap.String("full_name", b.fullName),
		zap.String("region", b.region))
	return b, nil
}

// Name returns the short bucket name.
func (b *Bucket) Name() string { return b.name }

// FullName returns the fully qualified bucket name including the account
// id suffix.
func (b *Bucket) FullName() string { return b.fullName }

// Region returns the confirmed region serving this bucket.
func (b *Bucket) Region() string { return b.region }

// BaseURL returns the bucket's public address, with a trailing slash.
func (b *Bucket) BaseURL() string { return b.baseURL }

func (b *Bucket) client() storage.Client {
	return b.ident.client
}

// Mkdir creates a directory by writing its zero-byte marker key. Creating a
// directory that already exists rewrites the marker and is not an error.
func (b *Bucket) Mkdir(ctx context.Context, dir string) error {
	key := objectpath.NormalizeDir(dir)
	if key == "" {
		return fmt.Errorf("cannot make dir with empty path")
	}

	_, err := b.client().PutObject(ctx, b.fullName, key, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
	if err != nil {
		b.logger.Error("make dir failed",
			zap.String("bucket", b.name),
			zap.String("dir", key),
			zap.Error(err))
		return fmt.Errorf("failed to make dir %s: %w", key, err)
	}

	b.logger.Info("make dir ok", zap.String("bucket", b.name), zap.String("dir", key))
	return nil
}
