// Package blobstore abstracts access to raw snapshot blobs.
//
// The dataset loader never talks to a filesystem or object store directly;
// it reads named blobs through the BlobStore interface. The acquisition
// collaborator writes snapshots through the same interface, so engine and
// fetcher can share one storage configuration.
//
// Implementations:
//
//   - LocalStore: local filesystem, atomic writes via rename
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 (sub-package)
//   - minio.Store: MinIO and other S3-compatible stores (sub-package)
package blobstore
