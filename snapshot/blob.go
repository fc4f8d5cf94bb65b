package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/flatvec"
	"github.com/hupe1980/flatvec/blobstore"
	"github.com/hupe1980/flatvec/internal/conv"
	"golang.org/x/sync/errgroup"
)

// Save streams v into the named blob. The blob becomes visible atomically
// when the backend commits it on close.
func Save(ctx context.Context, store blobstore.BlobStore, name string, v *flatvec.FlatVec[byte], optFns ...func(o *Options)) error {
	wb, err := store.Create(ctx, name)
	if err != nil {
		return err
	}
	if _, err := Write(wb, v, optFns...); err != nil {
		_ = wb.Close()
		return err
	}
	return wb.Close()
}

// Load reads the named blob into an owned container. The index and payload
// sections are fetched concurrently, which matters for object-store
// backends where each section read is a ranged GET.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (*flatvec.FlatVec[byte], error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	// Mappable backends expose the whole blob without copying; parse it
	// directly instead of issuing section reads.
	if mp, ok := b.(blobstore.Mappable); ok {
		data, err := mp.Bytes()
		if err == nil {
			return loadBytes(data)
		}
	}

	hdr := make([]byte, headerSize)
	if err := readFullAt(ctx, b, hdr, 0); err != nil {
		return nil, err
	}
	var header FileHeader
	if err := binary.Read(bytes.NewReader(hdr), binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if err := header.validate(); err != nil {
		return nil, err
	}

	indexLen, err := conv.Uint64ToInt(header.IndexSize)
	if err != nil {
		return nil, err
	}
	storedLen, err := conv.Uint64ToInt(header.PayloadSize)
	if err != nil {
		return nil, err
	}
	// Bound the section sizes against the blob before allocating; a hostile
	// header must not drive allocation.
	size := b.Size()
	if size-headerSize < int64(indexLen) || size-headerSize-int64(indexLen) < int64(storedLen) {
		return nil, ErrTruncated
	}

	index := make([]byte, indexLen)
	stored := make([]byte, storedLen)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readFullAt(gctx, b, index, headerSize)
	})
	g.Go(func() error {
		return readFullAt(gctx, b, stored, headerSize+int64(indexLen))
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return assemble(&header, index, stored)
}

func loadBytes(data []byte) (*flatvec.FlatVec[byte], error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	var header FileHeader
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if err := header.validate(); err != nil {
		return nil, err
	}
	index, stored, err := header.sliceSections(data)
	if err != nil {
		return nil, err
	}

	v, err := assemble(&header, index, stored)
	if err != nil {
		return nil, err
	}
	// The blob handle closes after Load returns; hand back owned copies.
	data2 := make([]byte, len(v.Data()))
	copy(data2, v.Data())
	return flatvec.FromParts(data2, v.Offsets())
}

func readFullAt(ctx context.Context, b blobstore.Blob, p []byte, off int64) error {
	if len(p) == 0 {
		return nil
	}
	n, err := b.ReadAt(ctx, p, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if n != len(p) {
		return fmt.Errorf("%w: short read at offset %d: got %d of %d bytes", ErrTruncated, off, n, len(p))
	}
	return nil
}
