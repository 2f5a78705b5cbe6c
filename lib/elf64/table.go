package elf64

import "encoding/binary"

// Table is a random-access view over a buffer region holding contiguous
// fixed-size records. Nothing is pre-parsed: each Pick decodes exactly
// one record, and Pick is the only way to reach the region's bytes, so
// every table access in the package goes through one bounds check.
type Table[E any] struct {
	data   []byte
	order  binary.ByteOrder
	size   int
	decode func([]byte, binary.ByteOrder) (E, error)
}

func newTable[E any](data []byte, e Encoding, size int, decode func([]byte, binary.ByteOrder) (E, error)) Table[E] {
	return Table[E]{
		data:   data,
		order:  e.ByteOrder(),
		size:   size,
		decode: decode,
	}
}

// Len is the number of whole records in the region. A trailing partial
// record is unaddressable but not an error.
func (t Table[E]) Len() int {
	if t.size == 0 {
		return 0
	}
	return len(t.data) / t.size
}

// Pick decodes the record at the given index. It fails with ErrTooShort
// when the record's byte range extends past the region.
func (t Table[E]) Pick(index int) (E, error) {
	var zero E
	if index < 0 || t.size == 0 || index >= t.Len() {
		return zero, ErrTooShort
	}
	start := index * t.size
	return t.decode(t.data[start:start+t.size], t.order)
}

// NewProgramHeaderTable views data as a table of 0x38-byte program
// header records.
func NewProgramHeaderTable(data []byte, e Encoding) Table[ProgramHeader] {
	return newTable(data, e, ProgramHeaderSize, decodeProgramHeader)
}

// NewSectionHeaderTable views data as a table of 0x40-byte section
// header records.
func NewSectionHeaderTable(data []byte, e Encoding) Table[SectionHeader] {
	return newTable(data, e, SectionHeaderSize, decodeSectionHeader)
}

// NewSymbolTable views data as a table of 0x18-byte symbol records.
func NewSymbolTable(data []byte, e Encoding) Table[SymbolEntry] {
	return newTable(data, e, SymbolEntrySize, decodeSymbolEntry)
}

// NewRelTable views data as a table of 0x10-byte relocation records.
func NewRelTable(data []byte, e Encoding) Table[RelEntry] {
	return newTable(data, e, RelEntrySize, decodeRelEntry)
}

// NewRelaTable views data as a table of 0x18-byte relocation-with-addend
// records.
func NewRelaTable(data []byte, e Encoding) Table[RelaEntry] {
	return newTable(data, e, RelaEntrySize, decodeRelaEntry)
}
