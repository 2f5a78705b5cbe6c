package elf64

import "encoding/binary"

// Fixed sizes of the two ELF64 relocation record shapes.
const (
	RelEntrySize  = 0x10
	RelaEntrySize = 0x18
)

// RelEntry is a relocation record without an explicit addend. The
// on-disk info field packs the symbol index in the high 32 bits and the
// machine-specific relocation type in the low 32 bits.
type RelEntry struct {
	Address     Address
	SymbolIndex uint32
	Type        uint32
}

func decodeRelEntry(b []byte, bo binary.ByteOrder) (RelEntry, error) {
	if len(b) < RelEntrySize {
		return RelEntry{}, ErrTooShort
	}
	info := bo.Uint64(b[0x08:])
	return RelEntry{
		Address:     bo.Uint64(b[0x00:]),
		SymbolIndex: uint32(info >> 32),
		Type:        uint32(info),
	}, nil
}

// RelaEntry is a relocation record with an explicit signed addend.
type RelaEntry struct {
	Address     Address
	SymbolIndex uint32
	Type        uint32
	Addend      int64
}

func decodeRelaEntry(b []byte, bo binary.ByteOrder) (RelaEntry, error) {
	if len(b) < RelaEntrySize {
		return RelaEntry{}, ErrTooShort
	}
	info := bo.Uint64(b[0x08:])
	return RelaEntry{
		Address:     bo.Uint64(b[0x00:]),
		SymbolIndex: uint32(info >> 32),
		Type:        uint32(info),
		Addend:      int64(bo.Uint64(b[0x10:])),
	}, nil
}
