package bucket

import (
	"context"
	"fmt"

	"cos-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// DefaultRegions is the candidate order used when opening a bucket without
// an explicit candidate list.
var DefaultRegions = []string{
	"ap-nanjing",
	"ap-chengdu",
	"ap-beijing",
	"ap-guangzhou",
	"ap-shanghai",
	"ap-chongqing",
	"ap-hongkong",
}

// ResolveRegion probes candidate regions strictly in order and returns the
// first one whose probe succeeds. A probe failing with the provider's
// NoSuchBucket code moves resolution to the next candidate; any other
// failure abandons resolution. When every candidate denies the bucket,
// ErrBucketNotFound is returned.
func ResolveRegion(ctx context.Context, probe func(ctx context.Context, region string) error, candidates []string) (string, error) {
	for _, region := range candidates {
		err := probe(ctx, region)
		if err == nil {
			return region, nil
		}
		if storage.IsNoSuchBucket(err) {
			continue
		}
		return "", fmt.Errorf("failed to probe region %s: %w", region, err)
	}
	return "", ErrBucketNotFound
}

// candidateRegions places the identity's current region first, keeping the
// rest of the candidate order intact.
func candidateRegions(current string, candidates []string) []string {
	if current == "" {
		return candidates
	}
	out := make([]string, 0, len(candidates)+1)
	out = append(out, current)
	for _, r := range candidates {
		if r != current {
			out = append(out, r)
		}
	}
	return out
}

// probeBucket asks one region-bound client whether it serves the bucket.
// A single-key listing is the cheapest call that authenticates, addresses
// the bucket and surfaces the provider's error code.
func probeBucket(ctx context.Context, client storage.Client, fullName string) error {
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
