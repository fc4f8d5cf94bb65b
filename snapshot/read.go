package snapshot

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/hupe1980/flatvec"
	"github.com/hupe1980/flatvec/internal/conv"
	"github.com/klauspost/compress/zstd"
)

// Read deserializes a container from r.
func Read(r io.Reader) (*flatvec.FlatVec[byte], error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
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

	index := make([]byte, indexLen)
	if _, err := io.ReadFull(r, index); err != nil {
		return nil, fmt.Errorf("%w: reading index: %w", ErrTruncated, err)
	}
	stored := make([]byte, storedLen)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("%w: reading payload: %w", ErrTruncated, err)
	}

	return assemble(&header, index, stored)
}

// assemble verifies integrity and builds a container from the raw index
// and payload sections.
func assemble(header *FileHeader, index, stored []byte) (*flatvec.FlatVec[byte], error) {
	checksum := crc32.ChecksumIEEE(index)
	checksum = crc32.Update(checksum, crc32.IEEETable, stored)
	if checksum != header.Checksum {
		return nil, &ChecksumMismatchError{Expected: header.Checksum, Actual: checksum}
	}

	payload, err := decompressPayload(header, stored)
	if err != nil {
		return nil, err
	}
	offsets, err := parseIndex(index)
	if err != nil {
		return nil, err
	}
	return flatvec.FromParts(payload, offsets)
}

func decompressPayload(header *FileHeader, stored []byte) ([]byte, error) {
	if !header.compressed() {
		return stored, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	payload, err := dec.DecodeAll(stored, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: payload decompression failed: %w", err)
	}
	if uint64(len(payload)) != header.RawPayloadSize {
		return nil, fmt.Errorf("snapshot: decompressed payload size %d does not match header %d", len(payload), header.RawPayloadSize)
	}
	return payload, nil
}

func parseIndex(index []byte) ([]int, error) {
	offsets := make([]int, len(index)/8)
	for i := range offsets {
		end, err := conv.Uint64ToInt(binary.LittleEndian.Uint64(index[8*i:]))
		if err != nil {
			return nil, err
		}
		offsets[i] = end
	}
	return offsets, nil
}

// LoadFromFile reads a snapshot file into an owned container.
func LoadFromFile(filename string) (*flatvec.FlatVec[byte], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(bufio.NewReaderSize(f, 256*1024))
}
