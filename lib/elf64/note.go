package elf64

import "encoding/binary"

// noteHeaderSize is the fixed sub-header preceding every note payload:
// name length, description length and type code, each 64 bits.
const noteHeaderSize = 0x18

// NoteEntry is one decoded note record. Name and Desc are exact-length
// views into the table's region; the 8-byte alignment padding that
// follows each of them on disk is not included.
type NoteEntry struct {
	Type uint64
	Name []byte
	Desc []byte
}

// NoteTable is a forward-only decoder over a region of variable-length
// note records. Notes carry no record count, so callers thread an
// explicit byte position through successive Next calls, starting from
// zero, and stop when Next fails or their own limit is reached.
type NoteTable struct {
	data  []byte
	order binary.ByteOrder
}

// NewNoteTable wraps a buffer region as a note table.
func NewNoteTable(data []byte, e Encoding) NoteTable {
	return NoteTable{data: data, order: e.ByteOrder()}
}

func align8(x uint64) uint64 {
	return (x + 7) &^ 7
}

// Next decodes the note record at *position and advances *position past
// the record's padded total. It fails with ErrTooShort when fewer than
// 24 bytes remain or the padded payload overruns the region, leaving
// *position untouched.
func (t NoteTable) Next(position *int) (NoteEntry, error) {
	p := *position
	if p < 0 || len(t.data)-p < noteHeaderSize {
		return NoteEntry{}, ErrTooShort
	}
	nameLen := t.order.Uint64(t.data[p:])
	descLen := t.order.Uint64(t.data[p+0x08:])
	ty := t.order.Uint64(t.data[p+0x10:])

	remaining := uint64(len(t.data) - p - noteHeaderSize)
	if nameLen > remaining || descLen > remaining {
		return NoteEntry{}, ErrTooShort
	}
	paddedName := align8(nameLen)
	paddedDesc := align8(descLen)
	if paddedName+paddedDesc > remaining {
		return NoteEntry{}, ErrTooShort
	}

	nameStart := p + noteHeaderSize
	descStart := nameStart + int(paddedName)
	entry := NoteEntry{
		Type: ty,
		Name: t.data[nameStart : nameStart+int(nameLen)],
		Desc: t.data[descStart : descStart+int(descLen)],
	}
	*position = descStart + int(paddedDesc)
	return entry, nil
}
