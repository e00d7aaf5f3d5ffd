package bucket

import (
	"context"
	"fmt"
	"path/filepath"

	"cos-manager/feature/bucket/objectpath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Download fetches one object into localDir, named after the object's leaf.
// The transfer is a single streamed GET; an interrupted download restarts
// from scratch, so this is intended for small objects.
func (b *Bucket) Download(ctx context.Context, remotePath, localDir string) error {
	_, leaf := objectpath.Parse(remotePath)
	localPath := filepath.Join(localDir, leaf)

	if err := b.client().FGetObject(ctx, b.fullName, remotePath, localPath, minio.GetObjectOptions{}); err != nil {
		b.logger.Error("download failed",
			zap.String("key", remotePath),
			zap.String("path", localPath),
			zap.Error(err))
		return fmt.Errorf("failed to download %s: %w", remotePath, err)
	}

	b.logger.Info("download ok",
		zap.String("key", remotePath),
		zap.String("path", localPath))
	return nil
}
