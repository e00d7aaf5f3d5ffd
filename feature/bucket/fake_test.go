package bucket

import (
	"context"
	"io"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"cos-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeObject is one stored object in the in-memory provider.
type fakeObject struct {
	data []byte
	meta map[string]string
}

// fakeRegion is the state one region serves: an account id and the buckets
// hosted there, each a flat key-to-object map.
type fakeRegion struct {
	accountID string
	buckets   map[string]map[string]fakeObject
}

// fakeProvider simulates the storage service across regions. Tests seed
// per-region buckets, hand factory to NewIdentityWith, and inspect stored
// state directly.
type fakeProvider struct {
	mu        sync.Mutex
	defaultID string
	regions   map[string]*fakeRegion
	lists     []string // region of every ListObjects call, in order
}

func newFakeProvider(defaultAccountID string) *fakeProvider {
	return &fakeProvider{
		defaultID: defaultAccountID,
		regions:   map[string]*fakeRegion{},
	}
}

// region returns the state for one region, creating an empty region (no
// buckets, default account id) on first touch. Callers hold p.mu.
func (p *fakeProvider) region(code string) *fakeRegion {
	r, ok := p.regions[code]
	if !ok {
		r = &fakeRegion{
			accountID: p.defaultID,
			buckets:   map[string]map[string]fakeObject{},
		}
		p.regions[code] = r
	}
	return r
}

// seed hosts a bucket in one region and returns its fully qualified name.
// A non-empty accountID overrides the region's account id.
func (p *fakeProvider) seed(regionCode, accountID, shortName string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	r := p.region(regionCode)
	if accountID != "" {
		r.accountID = accountID
	}
	full := shortName + "-" + r.accountID
	if _, ok := r.buckets[full]; !ok {
		r.buckets[full] = map[string]fakeObject{}
	}
	return full
}

// put stores an object directly, bypassing the Bucket API.
func (p *fakeProvider) put(regionCode, fullName, key string, data []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.region(regionCode).buckets[fullName][key] = fakeObject{data: data}
}

// object reads back a stored object.
func (p *fakeProvider) object(regionCode, fullName, key string) (fakeObject, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	obj, ok := p.region(regionCode).buckets[fullName][key]
	return obj, ok
}

// objectCount reports how many keys a bucket holds.
func (p *fakeProvider) objectCount(regionCode, fullName string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.region(regionCode).buckets[fullName])
}

// listCalls reports how many ListObjects calls the provider served.
func (p *fakeProvider) listCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.lists)
}

// factory satisfies Factory.
func (p *fakeProvider) factory(cfg storage.Config) (storage.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return &fakeClient{provider: p, regionCode: cfg.Region, state: p.region(cfg.Region)}, nil
}

// fakeClient is the per-region view the factory hands out.
type fakeClient struct {
	provider   *fakeProvider
	regionCode string
	state      *fakeRegion
}

func (c *fakeClient) AccountID(ctx context.Context) (string, error) {
	c.provider.mu.Lock()
	defer c.provider.mu.Unlock()
	return c.state.accountID, nil
}

func (c *fakeClient) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	c.provider.mu.Lock()
	defer c.provider.mu.Unlock()
	c.provider.lists = append(c.provider.lists, c.regionCode)

	objects, ok := c.state.buckets[bucketName]
	if !ok {
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Err: noSuchBucketErr(bucketName)}
		close(ch)
		return ch
	}

	var keys []string
	for key := range objects {
		if strings.HasPrefix(key, opts.Prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if opts.MaxKeys > 0 && len(keys) > opts.MaxKeys {
		keys = keys[:opts.MaxKeys]
	}

	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key, Size: int64(len(objects[key].data))}
	}
	close(ch)
	return ch
}

func (c *fakeClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}

	c.provider.mu.Lock()
	defer c.provider.mu.Unlock()
	objects, ok := c.state.buckets[bucketName]
	if !ok {
		return minio.UploadInfo{}, noSuchBucketErr(bucketName)
	}

	// Metadata keys are canonicalized in transit, as real providers do.
	meta := map[string]string{}
	for k, v := range opts.UserMetadata {
		meta[textproto.CanonicalMIMEHeaderKey(k)] = v
	}
	objects[objectName] = fakeObject{data: data, meta: meta}
	return minio.UploadInfo{Bucket: bucketName, Key: objectName, Size: int64(len(data))}, nil
}

func (c *fakeClient) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	c.provider.mu.Lock()
	defer c.provider.mu.Unlock()
	objects, ok := c.state.buckets[bucketName]
	if !ok {
		return minio.ObjectInfo{}, noSuchBucketErr(bucketName)
	}
	obj, ok := objects[objectName]
	if !ok {
		return minio.ObjectInfo{}, noSuchKeyErr(bucketName, objectName)
	}

	meta := minio.StringMap{}
	for k, v := range obj.meta {
		meta[k] = v
	}
	return minio.ObjectInfo{Key: objectName, Size: int64(len(obj.data)), UserMetadata: meta}, nil
}

func (c *fakeClient) ObjectExists(ctx context.Context, bucketName, objectName string) (bool, error) {
	c.provider.mu.Lock()
	defer c.provider.mu.Unlock()
	objects, ok := c.state.buckets[bucketName]
	if !ok {
		return false, nil
	}
	_, ok = objects[objectName]
	return ok, nil
}

func (c *fakeClient) FGetObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.GetObjectOptions) error {
	c.provider.mu.Lock()
	defer c.provider.mu.Unlock()
	objects, ok := c.state.buckets[bucketName]
	if !ok {
		return noSuchBucketErr(bucketName)
	}
	obj, ok := objects[objectName]
	if !ok {
		return noSuchKeyErr(bucketName, objectName)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}
	return os.WriteFile(filePath, obj.data, 0644)
}

func (c *fakeClient) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	c.provider.mu.Lock()
	defer c.provider.mu.Unlock()
	objects, ok := c.state.buckets[bucketName]
	if !ok {
		return noSuchBucketErr(bucketName)
	}
	delete(objects, objectName)
	return nil
}

func noSuchBucketErr(bucketName string) error {
	return minio.ErrorResponse{
		Code:       storage.CodeNoSuchBucket,
		Message:    "The specified bucket does not exist.",
		BucketName: bucketName,
		StatusCode: http.StatusNotFound,
	}
}

func noSuchKeyErr(bucketName, key string) error {
	return minio.ErrorResponse{
		Code:       storage.CodeNoSuchKey,
		Message:    "The specified key does not exist.",
		BucketName: bucketName,
		Key:        key,
		StatusCode: http.StatusNotFound,
	}
}

// openTestBucket seeds one bucket in a single region and opens a handle
// bound to it.
func openTestBucket(t *testing.T, p *fakeProvider, region, shortName string) *Bucket {
	t.Helper()
	p.seed(region, "", shortName)

	ident, err := NewIdentityWith(storage.Config{Region: region}, p.factory)
	require.NoError(t, err)

	b, err := OpenInRegions(context.Background(), ident, shortName, []string{region}, zap.NewNop())
	require.NoError(t, err)
	return b
}

// newTestBucket wires a handle directly to one client, skipping resolution.
func newTestBucket(client storage.Client) *Bucket {
	return &Bucket{
		name:     "data",
		fullName: "data-1250000001",
		region:   "ap-nanjing",
		baseURL:  "https://data-1250000001.cos.ap-nanjing.myqcloud.com/",
		ident:    &Identity{cfg: storage.Config{Region: "ap-nanjing"}, client: client},
		logger:   zap.NewNop(),
	}
}
