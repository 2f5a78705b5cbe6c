package elf64

import (
	"errors"
	"fmt"
)

// Decode errors. Every failure returned by this package matches one of
// these with errors.Is/errors.As; the package never panics on any input.
var (
	// ErrTooShort means a read, slice or table access needed more bytes
	// than the buffer holds.
	ErrTooShort = errors.New("elf64: not enough data")

	// ErrWrongMagic means the first 4 bytes are not 7f 45 4c 46.
	ErrWrongMagic = errors.New("elf64: wrong magic number")

	// ErrNotImplemented marks a recognized section/segment type whose
	// payload this decoder intentionally does not parse (dynamic
	// linking table, hash table).
	ErrNotImplemented = errors.New("elf64: payload decoding not implemented")
)

// UnknownEncodingError is returned when the encoding byte at offset
// 0x05 is neither 1 (little) nor 2 (big).
type UnknownEncodingError struct {
	Code byte
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("elf64: unknown encoding code 0x%02x", e.Code)
}

// ReservedFieldError is returned when a field defined as always-zero
// holds something else.
type ReservedFieldError struct {
	Offset int
	Value  byte
}

func (e *ReservedFieldError) Error() string {
	return fmt.Sprintf("elf64: reserved byte at offset 0x%02x is 0x%02x, want zero", e.Offset, e.Value)
}

// SizeMismatchError is returned when the header's self-declared record
// sizes disagree with the fixed ELF64 layout this decoder supports.
// This is distinct from truncation: the file is complete but in a
// format revision we do not speak.
type SizeMismatchError struct {
	Record   string
	Declared uint16
	Want     uint16
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("elf64: %s record size is 0x%x, want 0x%x", e.Record, e.Declared, e.Want)
}
