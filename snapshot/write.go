package snapshot

import (
	"bufio"
	"encoding/binary"
	"hash/crc32"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hupe1980/flatvec"
	"github.com/hupe1980/flatvec/internal/conv"
	"github.com/klauspost/compress/zstd"
)

// Options configures snapshot writing.
type Options struct {
	// Compression selects payload storage. CompressionNone keeps the file
	// mmap-friendly; CompressionZstd trades zero-copy opens for size.
	Compression Compression

	// Logger receives debug-level diagnostics for save/load operations.
	// Defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions are the options used when none are supplied.
var DefaultOptions = Options{
	Compression: CompressionNone,
}

func applyOptions(optFns []func(o *Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Write serializes v to w in snapshot format and returns the number of
// bytes written.
func Write(w io.Writer, v *flatvec.FlatVec[byte], optFns ...func(o *Options)) (int64, error) {
	opts := applyOptions(optFns)
	start := time.Now()

	offsets := v.Offsets()
	count, err := conv.IntToUint64(v.Len())
	if err != nil {
		return 0, err
	}

	index := make([]byte, 8*len(offsets))
	for i, off := range offsets {
		end, err := conv.IntToUint64(off)
		if err != nil {
			return 0, err
		}
		binary.LittleEndian.PutUint64(index[8*i:], end)
	}

	payload := v.Data()
	stored := payload
	flags := uint32(0)
	if opts.Compression == CompressionZstd {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return 0, err
		}
		stored = enc.EncodeAll(payload, nil)
		_ = enc.Close()
		flags |= flagZstdPayload
	}

	checksum := crc32.ChecksumIEEE(index)
	checksum = crc32.Update(checksum, crc32.IEEETable, stored)

	header := FileHeader{
		Magic:          MagicNumber,
		Version:        Version,
		Flags:          flags,
		Count:          count,
		IndexSize:      uint64(len(index)),
		PayloadSize:    uint64(len(stored)),
		RawPayloadSize: uint64(len(payload)),
		Checksum:       checksum,
	}

	cw := &countingWriter{w: w}
	if err := binary.Write(cw, binary.LittleEndian, &header); err != nil {
		return cw.n, err
	}
	if _, err := cw.Write(index); err != nil {
		return cw.n, err
	}
	if _, err := cw.Write(stored); err != nil {
		return cw.n, err
	}

	opts.Logger.Debug("snapshot written",
		slog.Uint64("elements", count),
		slog.Int64("bytes", cw.n),
		slog.Bool("compressed", flags&flagZstdPayload != 0),
		slog.Duration("took", time.Since(start)),
	)
	return cw.n, nil
}

// SaveToFile writes v to filename. The snapshot lands in a temp file in
// the same directory and is renamed into place, so readers never observe a
// partial file.
func SaveToFile(filename string, v *flatvec.FlatVec[byte], optFns ...func(o *Options)) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if _, err := Write(buf, v, optFns...); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, filename)
}
