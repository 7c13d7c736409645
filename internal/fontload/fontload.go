// Package fontload reads and parses font resources for manifest
// verification. Reads are size-capped so that a damaged or hostile
// resource cannot stall or balloon a document-generation request.
package fontload

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/image/font/sfnt"
)

// DefaultSizeCeiling bounds resource reads unless a caller overrides it.
const DefaultSizeCeiling = 32 << 20 // 32 MiB

// ErrResourceTooLarge is returned when a resource exceeds the size ceiling.
var ErrResourceTooLarge = fmt.Errorf("font resource exceeds size ceiling")

// ReadResource reads a font resource from disk, failing if it exceeds
// ceiling bytes. A ceiling of 0 selects DefaultSizeCeiling.
func ReadResource(path string, ceiling int64) ([]byte, error) {
	if ceiling <= 0 {
		ceiling = DefaultSizeCeiling
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, ceiling+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > ceiling {
		return nil, fmt.Errorf("%w: %s larger than %d bytes", ErrResourceTooLarge, path, ceiling)
	}
	return data, nil
}

// FullName parses a font resource and returns its full name from the
// `name` table. An error means the bytes are not a parseable SFNT stream
// or the name table carries no usable entry.
func FullName(data []byte) (string, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", err
	}
	return f.Name(nil, sfnt.NameIDFull)
}
