// Package bucket presents a remote object-storage bucket as a directory
// tree with integrity-checked transfer.
//
// The service stores a flat keyspace. This package layers the directory
// model on top of it: a "directory" is a zero-byte marker object whose key
// ends with "/", a "file" is any other object, and paths split at the last
// "/" into a directory part and a leaf name (see the objectpath package).
//
// # Identities and Region Resolution
//
// Buckets live in exactly one region, but callers rarely know which.
// An Identity binds credentials to one region; Open probes candidate
// regions in order, starting with the identity's own region, and binds
// the returned handle to the first region that serves the bucket. Probing
// continues only past the provider's NoSuchBucket answer; any other
// failure abandons the open. The account id suffix in the fully qualified
// bucket name is fetched per endpoint, since listings on different
// endpoints can answer for different accounts.
//
// # Known Limitations
//
//   - Upload collision checks compare leaf names across the whole bucket,
//     not just the target directory: uploads are skipped (or overwrite)
//     when any existing key shares the leaf name.
//   - Download is a single-shot transfer with no resume, sized for small
//     objects.
//   - Bulk deletes are sequential and not transactional; a failed entry is
//     reported but does not roll back earlier deletions.
//
// # Usage
//
//	ident, err := bucket.NewIdentity(cfg.Storage)
//	b, err := bucket.Open(ctx, ident, "data", logg)
//	res, err := b.Upload(ctx, "/tmp/x.csv", "reports", true)
//	files, err := b.ListDirFiles(ctx, "reports")
package bucket
