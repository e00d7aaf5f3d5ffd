package bucket

import (
	"context"
	"fmt"
	"strings"

	"cos-manager/feature/bucket/objectpath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Exists reports whether the exact key is present in the bucket.
func (b *Bucket) Exists(ctx context.Context, key string) (bool, error) {
	return b.client().ObjectExists(ctx, b.fullName, key)
}

// Checksum returns the MD5 recorded in the object's user metadata at upload
// time. An absent object, or one uploaded without the metadata, yields an
// empty checksum rather than an error.
func (b *Bucket) Checksum(ctx context.Context, remotePath string) (string, error) {
	exists, err := b.Exists(ctx, remotePath)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", remotePath, err)
	}
	if !exists {
		b.logger.Error("object not in bucket",
			zap.String("key", remotePath),
			zap.String("bucket", b.name))
		return "", nil
	}

	info, err := b.client().StatObject(ctx, b.fullName, remotePath, minio.StatObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", remotePath, err)
	}

	// Providers canonicalize metadata key casing in transit.
	var sum string
	for k, v := range info.UserMetadata {
		if strings.EqualFold(k, ChecksumMetaKey) {
			sum = v
			break
		}
	}

	b.logger.Info("object checksum",
		zap.String("key", remotePath),
		zap.String("md5", sum))
	return sum, nil
}

// URL returns the object's public address under the bucket's base URL, the
// path percent-encoded. An absent object yields an empty URL rather than
// an error.
func (b *Bucket) URL(ctx context.Context, remotePath string) (string, error) {
	exists, err := b.Exists(ctx, remotePath)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", remotePath, err)
	}
	if !exists {
		b.logger.Error("object not in bucket",
			zap.String("key", remotePath),
			zap.String("bucket", b.name))
		return "", nil
	}

	dir, leaf := objectpath.Parse(remotePath)
	u := b.baseURL + objectpath.Encode(objectpath.Join(dir, leaf))

	b.logger.Info("object url",
		zap.String("key", remotePath),
		zap.String("url", u))
	return u, nil
}
