// Package pe determines the bitness of a Portable Executable by
// reading header bytes. It never loads or executes the file.
//
// The standard library's debug/pe is intentionally not used here: it
// parses the full COFF section table and rejects files this package
// only needs to classify as "not a usable launcher". Discovery treats
// every malformed header the same way, as a candidate to skip.
package pe

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// Bitness is the word width of an executable image.
type Bitness int

const (
	Bitness32 Bitness = 32
	Bitness64 Bitness = 64
)

// Valid reports whether b is one of the two known widths.
func (b Bitness) Valid() bool {
	return b == Bitness32 || b == Bitness64
}

// Other returns the opposite width. Only meaningful for valid values.
func (b Bitness) Other() Bitness {
	if b == Bitness32 {
		return Bitness64
	}
	return Bitness32
}

// PE header constants. These are fixed by the file format.
const (
	dosMagic        = 0x5A4D // "MZ"
	peSignature     = 0x00004550
	lfanewOffset    = 0x3C
	coffHeaderSize  = 0x14
	optionalMagic32 = 0x10B
	optionalMagic64 = 0x20B
)

// ErrNotPE indicates the file is not a well-formed PE image, or its
// optional-header magic names an unknown architecture. Callers treat
// this as "skip the candidate".
var ErrNotPE = errors.New("not a PE executable")

// Sniff reads just enough of the file at path to classify it as a
// 32-bit or 64-bit PE image. The file handle is closed before Sniff
// returns on every path; executables must not stay locked.
func Sniff(path string) (Bitness, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "opening executable")
	}
	defer f.Close()

	var mz uint16
	if err := readAt(f, 0, &mz); err != nil {
		return 0, err
	}
	if mz != dosMagic {
		return 0, ErrNotPE
	}

	var lfanew uint32
	if err := readAt(f, lfanewOffset, &lfanew); err != nil {
		return 0, err
	}

	var sig uint32
	if err := readAt(f, int64(lfanew), &sig); err != nil {
		return 0, err
	}
	if sig != peSignature {
		return 0, ErrNotPE
	}

	// The optional-header magic sits right after the COFF file header.
	var magic uint16
	if err := readAt(f, int64(lfanew)+4+coffHeaderSize, &magic); err != nil {
		return 0, err
	}

	switch magic {
	case optionalMagic32:
		return Bitness32, nil
	case optionalMagic64:
		return Bitness64, nil
	default:
		return 0, ErrNotPE
	}
}

func readAt(f *os.File, off int64, v any) error {
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return errors.Wrap(err, "seeking header field")
	}
	if err := binary.Read(f, binary.LittleEndian, v); err != nil {
		return errors.Wrap(err, "reading header field")
	}
	return nil
}
