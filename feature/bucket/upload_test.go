package bucket

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cos-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("FreshUpload", func(t *testing.T) {
		p := newFakeProvider("1250000001")
		b := openTestBucket(t, p, "ap-nanjing", "data")
		local := writeTempFile(t, "x.csv", "hello")

		res, err := b.Upload(ctx, local, "reports", false)
		require.NoError(t, err)
		assert.Equal(t, "reports/x.csv", res.Key)
		assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", res.Checksum)
		assert.False(t, res.Skipped)

		obj, ok := p.object("ap-nanjing", b.FullName(), "reports/x.csv")
		require.True(t, ok)
		assert.Equal(t, []byte("hello"), obj.data)
		assert.Equal(t, res.Checksum, obj.meta["Md5"])
	})

	t.Run("RootUpload", func(t *testing.T) {
		p := newFakeProvider("1250000001")
		b := openTestBucket(t, p, "ap-nanjing", "data")
		local := writeTempFile(t, "top.txt", "t")

		res, err := b.Upload(ctx, local, "", true)
		require.NoError(t, err)
		assert.Equal(t, "top.txt", res.Key)
	})

	t.Run("SkipWhenLeafTakenAnywhere", func(t *testing.T) {
		p := newFakeProvider("1250000001")
		b := openTestBucket(t, p, "ap-nanjing", "data")
		p.put("ap-nanjing", b.FullName(), "archive/x.csv", []byte("old"))

		local := writeTempFile(t, "x.csv", "new")
		res, err := b.Upload(ctx, local, "reports", false)
		require.NoError(t, err)
		assert.True(t, res.Skipped)
		assert.Equal(t, "reports/x.csv", res.Key)

		// Nothing was written: neither target key nor the old object.
		_, ok := p.object("ap-nanjing", b.FullName(), "reports/x.csv")
		assert.False(t, ok)
		old, ok := p.object("ap-nanjing", b.FullName(), "archive/x.csv")
		require.True(t, ok)
		assert.Equal(t, []byte("old"), old.data)
	})

	t.Run("DirMarkersDoNotCollide", func(t *testing.T) {
		p := newFakeProvider("1250000001")
		b := openTestBucket(t, p, "ap-nanjing", "data")
		p.put("ap-nanjing", b.FullName(), "x.csv/", nil)

		local := writeTempFile(t, "x.csv", "data")
		res, err := b.Upload(ctx, local, "reports", false)
		require.NoError(t, err)
		assert.False(t, res.Skipped)
	})

	t.Run("OverwriteReplacesContent", func(t *testing.T) {
		p := newFakeProvider("1250000001")
		b := openTestBucket(t, p, "ap-nanjing", "data")

		first := writeTempFile(t, "x.csv", "v1")
		_, err := b.Upload(ctx, first, "reports", false)
		require.NoError(t, err)

		second := writeTempFile(t, "x.csv", "v2")
		res, err := b.Upload(ctx, second, "reports", true)
		require.NoError(t, err)
		assert.False(t, res.Skipped)

		obj, ok := p.object("ap-nanjing", b.FullName(), "reports/x.csv")
		require.True(t, ok)
		assert.Equal(t, []byte("v2"), obj.data)
		assert.Equal(t, res.Checksum, obj.meta["Md5"])
	})

	t.Run("MissingLocalFileTouchesNothing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		b := newTestBucket(mockClient)

		_, err := b.Upload(ctx, filepath.Join(t.TempDir(), "nope.csv"), "reports", true)
		require.Error(t, err)
		mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
		mockClient.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("LocalDirectoryIsRejected", func(t *testing.T) {
		p := newFakeProvider("1250000001")
		b := openTestBucket(t, p, "ap-nanjing", "data")

		_, err := b.Upload(ctx, t.TempDir(), "reports", true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a regular file")
	})
}

func TestChecksumFile(t *testing.T) {
	t.Run("KnownVector", func(t *testing.T) {
		sum, err := ChecksumFile(writeTempFile(t, "v.txt", "abc"))
		require.NoError(t, err)
		assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", sum)
	})

	t.Run("EmptyFile", func(t *testing.T) {
		sum, err := ChecksumFile(writeTempFile(t, "empty.txt", ""))
		require.NoError(t, err)
		assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", sum)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := ChecksumFile(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := ChecksumFile(t.TempDir())
		assert.Error(t, err)
	})
}
