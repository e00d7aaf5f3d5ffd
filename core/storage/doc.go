// Package storage provides an abstraction layer for the object storage service.
//
// It wraps the MinIO Go client to provide the small set of primitives the
// bucket layer is built on: listing, uploading, stat, download and delete.
// The target service is Tencent COS, which speaks the S3 wire protocol;
// any S3-compatible endpoint works via the Endpoint config override.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (as seen in
// core/storage/mocks).
//
// # Regions
//
// A Client is bound to exactly one region. Connecting to a different region
// means constructing a new Client from a Config with that region set;
// EndpointForRegion derives the per-region service host.
//
// # Error Taxonomy
//
// The provider reports structured error codes. IsNoSuchBucket identifies the
// one code that means "this bucket is not served here" (the region failover
// trigger), IsNotFound covers absent objects as well, and ErrorCode exposes
// the raw code for display.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.ObjectExists(ctx, "data-1250000000", "reports/x.csv")
package storage
