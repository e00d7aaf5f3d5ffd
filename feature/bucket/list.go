package bucket

import (
	"context"
	"fmt"
	"strings"

	"cos-manager/feature/bucket/objectpath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ListAllObjects returns every key under prefix, with the prefix stripped
// from each entry. The entry that strips to "" (the directory's own marker)
// is dropped. An empty prefix lists the whole bucket with keys unchanged.
func (b *Bucket) ListAllObjects(ctx context.Context, prefix string) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var objects []string
	for obj := range b.client().ListObjects(ctx, b.fullName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", b.name, obj.Err)
		}
		entry := strings.TrimPrefix(obj.Key, prefix)
		if entry == "" {
			continue
		}
		objects = append(objects, entry)
	}

	if len(objects) == 0 {
		b.logger.Warn("no objects found in bucket",
			zap.String("bucket", b.name),
			zap.String("prefix", prefix))
	}
	return objects, nil
}

// ListAllFiles returns the key of every file in the bucket. Directory
// markers are filtered out.
func (b *Bucket) ListAllFiles(ctx context.Context) ([]string, error) {
	objects, err := b.ListAllObjects(ctx, "")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, key := range objects {
		if !objectpath.IsDirKey(key) {
			files = append(files, key)
		}
	}
	return files, nil
}

// ListAllDirs returns every directory in the bucket, markers trimmed of
// their trailing slash.
func (b *Bucket) ListAllDirs(ctx context.Context) ([]string, error) {
	objects, err := b.ListAllObjects(ctx, "")
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, key := range objects {
		if objectpath.IsDirKey(key) {
			dirs = append(dirs, strings.TrimSuffix(key, "/"))
		}
	}
	return dirs, nil
}

// ListDirFiles returns the entries under one directory, named relative to
// it. The directory must exist as a marker unless it is the bucket root;
// addressing a missing directory fails with ErrDirNotFound.
func (b *Bucket) ListDirFiles(ctx context.Context, dir string) ([]string, error) {
	prefix := objectpath.NormalizeDir(dir)
	if prefix != "" {
		dirs, err := b.ListAllDirs(ctx)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(prefix, "/")
		found := false
		for _, d := range dirs {
			if d == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
		}
	}
	return b.ListAllObjects(ctx, prefix)
}
