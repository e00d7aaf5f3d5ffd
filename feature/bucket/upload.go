package bucket

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cos-manager/feature/bucket/objectpath"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ChecksumMetaKey is the user metadata key carrying the uploader-computed
// MD5 of the object body.
const ChecksumMetaKey = "md5"

// storageClassStandard is the storage class applied to uploaded objects.
const storageClassStandard = "STANDARD"

// checksumChunkSize is the read buffer size for local checksum computation.
const checksumChunkSize = 32 * 1024

// UploadResult reports where an upload landed.
type UploadResult struct {
	// Key is the object key the local file maps to.
	Key string
	// Checksum is the MD5 recorded in the object's user metadata.
	Checksum string
	// Skipped is true when an object with the same leaf name already
	// existed and overwriting was disabled.
	Skipped bool
}

// Upload stores a local file under remoteDir, keyed by the file's base
// name. The object is written with storage class STANDARD, transport
// checksum verification, and the local MD5 recorded in user metadata.
//
// Name collisions are checked against the leaf names of every key in the
// bucket, not only remoteDir: when any existing key's leaf matches, the
// upload is skipped unless overwrite is set.
func (b *Bucket) Upload(ctx context.Context, localPath, remoteDir string, overwrite bool) (UploadResult, error) {
	fi, err := os.Stat(localPath)
	if err != nil {
		b.logger.Error("local file not found", zap.String("path", localPath))
		return UploadResult{}, fmt.Errorf("local path %s: %w", localPath, err)
	}

	leaf := filepath.Base(localPath)
	key := objectpath.Join(remoteDir, leaf)

	taken, err := b.leafTaken(ctx, leaf)
	if err != nil {
		return UploadResult{}, err
	}
	if taken {
		if !overwrite {
			b.logger.Warn("object name already in bucket, skipped",
				zap.String("name", leaf),
				zap.String("bucket", b.name))
			return UploadResult{Key: key, Skipped: true}, nil
		}
		b.logger.Warn("object name already in bucket, overwriting",
			zap.String("name", leaf),
			zap.String("bucket", b.name))
	}

	sum, err := ChecksumFile(localPath)
	if err != nil {
		return UploadResult{}, err
	}

	f, err := os.Open(localPath)
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer f.Close()

	_, err = b.client().PutObject(ctx, b.fullName, key, f, fi.Size(), minio.PutObjectOptions{
		UserMetadata:   map[string]string{ChecksumMetaKey: sum},
		StorageClass:   storageClassStandard,
		SendContentMd5: true,
	})
	if err != nil {
		b.logger.Error("upload failed",
			zap.String("path", localPath),
			zap.String("key", key),
			zap.Error(err))
		return UploadResult{}, fmt.Errorf("failed to upload %s: %w", localPath, err)
	}

	b.logger.Info("upload ok",
		zap.String("path", localPath),
		zap.String("key", key),
		zap.String("md5", sum))
	return UploadResult{Key: key, Checksum: sum}, nil
}

// leafTaken reports whether any key in the bucket has the given leaf name.
func (b *Bucket) leafTaken(ctx context.Context, leaf string) (bool, error) {
	keys, err := b.ListAllObjects(ctx, "")
	if err != nil {
		return false, err
	}
	for _, key := range keys {
		if _, l := objectpath.Parse(key); l == leaf {
			return true, nil
		}
	}
	return false, nil
}

// ChecksumFile computes the hex MD5 of a local file, reading it in fixed
// size chunks rather than loading it into memory.
func ChecksumFile(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot stat file %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return "", fmt.Errorf("not a regular file: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cannot open file %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.CopyBuffer(h, f, make([]byte, checksumChunkSize)); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
