package elf64

import (
	"encoding/binary"
	"errors"
	"testing"
)

func TestDecodeRelEntry(t *testing.T) {
	b := make([]byte, RelEntrySize)
	binary.LittleEndian.PutUint64(b[0x00:], 0x601018)
	binary.LittleEndian.PutUint64(b[0x08:], 5<<32|7)
	rel, err := decodeRelEntry(b, binary.LittleEndian)
	if err != nil {
		t.Fatalf("decodeRelEntry: %v", err)
	}
	if rel.Address != 0x601018 {
		t.Errorf("address = 0x%x", rel.Address)
	}
	if rel.SymbolIndex != 5 || rel.Type != 7 {
		t.Errorf("symbol = %d, type = %d, want 5, 7", rel.SymbolIndex, rel.Type)
	}

	if _, err := decodeRelEntry(b[:RelEntrySize-1], binary.LittleEndian); !errors.Is(err, ErrTooShort) {
		t.Errorf("short decode: err = %v, want ErrTooShort", err)
	}
}

func TestDecodeRelaEntry(t *testing.T) {
	b := make([]byte, RelaEntrySize)
	binary.BigEndian.PutUint64(b[0x00:], 0x601018)
	binary.BigEndian.PutUint64(b[0x08:], 0x00000009_00000002)
	binary.BigEndian.PutUint64(b[0x10:], uint64(0xfffffffffffffffc)) // -4
	rela, err := decodeRelaEntry(b, binary.BigEndian)
	if err != nil {
		t.Fatalf("decodeRelaEntry: %v", err)
	}
	if rela.SymbolIndex != 9 || rela.Type != 2 {
		t.Errorf("symbol = %d, type = %d, want 9, 2", rela.SymbolIndex, rela.Type)
	}
	if rela.Addend != -4 {
		t.Errorf("addend = %d, want -4", rela.Addend)
	}

	if _, err := decodeRelaEntry(b[:RelaEntrySize-1], binary.BigEndian); !errors.Is(err, ErrTooShort) {
		t.Errorf("short decode: err = %v, want ErrTooShort", err)
	}
}
