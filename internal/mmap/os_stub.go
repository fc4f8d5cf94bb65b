//go:build !unix && !windows

package mmap

import (
	"errors"
	"os"
)

func osMap(f *os.File, size int) ([]byte, func([]byte) error, error) {
	return nil, nil, errors.New("mmap: not supported on this platform")
}
