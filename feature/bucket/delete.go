package bucket

import (
	"context"
	"fmt"

	"cos-manager/feature/bucket/objectpath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DeleteObject removes one object by its full key. The provider treats
// deletes as idempotent, so removing an absent key succeeds.
func (b *Bucket) DeleteObject(ctx context.Context, key string) error {
	b.logger.Warn("deleting object",
		zap.String("bucket", b.name),
		zap.String("key", key))

	if err := b.client().RemoveObject(ctx, b.fullName, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// DeleteFile removes one file addressed by path. Deleting a path that is
// not present succeeds without touching the bucket. A present object whose
// leaf is not listed under the path's directory fails with
// ErrObjectNotInDir.
func (b *Bucket) DeleteFile(ctx context.Context, remotePath string) error {
	exists, err := b.Exists(ctx, remotePath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", remotePath, err)
	}
	if !exists {
		b.logger.Warn("object not in bucket",
			zap.String("key", remotePath),
			zap.String("bucket", b.name))
		return nil
	}

	dir, leaf := objectpath.Parse(remotePath)
	entries, err := b.ListDirFiles(ctx, dir)
	if err != nil {
		return err
	}
	listed := false
	for _, entry := range entries {
		if entry == leaf {
			listed = true
			break
		}
	}
	if !listed {
		b.logger.Error("object not listed in dir",
			zap.String("name", leaf),
			zap.String("dir", dir))
		return fmt.Errorf("%w: %s in %s", ErrObjectNotInDir, leaf, dir)
	}

	return b.DeleteObject(ctx, objectpath.Join(dir, leaf))
}

// DeleteDirFiles removes every entry under one directory. The sweep is
// sequential and keeps going past individual failures, which are collected
// and returned together. The directory's own marker survives.
func (b *Bucket) DeleteDirFiles(ctx context.Context, dir string) error {
	prefix := objectpath.NormalizeDir(dir)
	entries, err := b.ListDirFiles(ctx, dir)
	if err != nil {
		return err
	}

	var errs error
	for _, entry := range entries {
		if err := b.DeleteObject(ctx, prefix+entry); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// DeleteAllFiles empties the bucket, directory markers included.
func (b *Bucket) DeleteAllFiles(ctx context.Context) error {
	keys, err := b.ListAllObjects(ctx, "")
	if err != nil {
		return err
	}

	var errs error
	deleted := 0
	for _, key := range keys {
		if err := b.DeleteObject(ctx, key); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		deleted++
	}

	b.logger.Warn("bucket emptied",
		zap.String("bucket", b.name),
		zap.Int("deleted", deleted))
	return errs
}
