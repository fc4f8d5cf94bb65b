// Package blobstore abstracts storage of immutable snapshot blobs.
//
// A snapshot is written once through a WritableBlob and read back through
// range reads on a Blob, so backends only need ranged GET and streaming PUT
// semantics. Local and in-memory backends live here; S3 and MinIO backends
// live in subpackages to keep their SDK dependencies out of the core import
// graph.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// errors.Is(err, ErrNotFound). The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction over immutable blob storage.
type BlobStore interface {
	// Open opens an existing blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Create creates a blob for streaming writes. The data becomes visible
	// atomically when the returned handle is closed.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a small blob atomically in one call.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns all blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle supporting concurrent range reads.
type Blob interface {
	// ReadAt reads len(p) bytes starting at off, following the io.ReaderAt
	// contract apart from the added context.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// Size returns the blob size in bytes.
	Size() int64
	Close() error
}

// WritableBlob is a write-once handle. Data is committed on Close.
type WritableBlob interface {
	io.Writer
	// Sync flushes buffered data to stable storage where the backend
	// supports it; object stores treat it as a no-op.
	Sync() error
	Close() error
}

// Mappable is an optional interface for Blobs whose contents are directly
// addressable in memory. Bytes is zero-copy; the slice is valid until the
// blob is closed.
type Mappable interface {
	Bytes() ([]byte, error)
}
