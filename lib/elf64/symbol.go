package elf64

import (
	"encoding/binary"
	"fmt"
)

// SymbolBinding is the high nibble of a symbol's info byte.
type SymbolBinding uint8

const (
	BindLocal  SymbolBinding = 0x0
	BindGlobal SymbolBinding = 0x1
	BindWeak   SymbolBinding = 0x2
)

// OSSpecific reports whether the binding is in the OS-reserved range
// 10-12, and the offset within it.
func (b SymbolBinding) OSSpecific() (uint8, bool) {
	if b >= 0x0a && b <= 0x0c {
		return uint8(b - 0x0a), true
	}
	return 0, false
}

// ProcessorSpecific reports whether the binding is in the
// processor-reserved range 13-15, and the offset within it.
func (b SymbolBinding) ProcessorSpecific() (uint8, bool) {
	if b >= 0x0d && b <= 0x0f {
		return uint8(b - 0x0d), true
	}
	return 0, false
}

func (b SymbolBinding) String() string {
	switch b {
	case BindLocal:
		return "LOCAL"
	case BindGlobal:
		return "GLOBAL"
	case BindWeak:
		return "WEAK"
	}
	if c, ok := b.OSSpecific(); ok {
		return fmt.Sprintf("OS+%d", c)
	}
	if c, ok := b.ProcessorSpecific(); ok {
		return fmt.Sprintf("PROC+%d", c)
	}
	return fmt.Sprintf("Binding(%d)", uint8(b))
}

// SymbolType is the low nibble of a symbol's info byte.
type SymbolType uint8

const (
	SymTypeNone     SymbolType = 0x0
	SymTypeObject   SymbolType = 0x1
	SymTypeFunction SymbolType = 0x2
	SymTypeSection  SymbolType = 0x3
	SymTypeFile     SymbolType = 0x4
)

// OSSpecific reports whether the type is in the OS-reserved range
// 10-12, and the offset within it.
func (t SymbolType) OSSpecific() (uint8, bool) {
	if t >= 0x0a && t <= 0x0c {
		return uint8(t - 0x0a), true
	}
	return 0, false
}

// ProcessorSpecific reports whether the type is in the
// processor-reserved range 13-15, and the offset within it.
func (t SymbolType) ProcessorSpecific() (uint8, bool) {
	if t >= 0x0d && t <= 0x0f {
		return uint8(t - 0x0d), true
	}
	return 0, false
}

func (t SymbolType) String() string {
	switch t {
	case SymTypeNone:
		return "NOTYPE"
	case SymTypeObject:
		return "OBJECT"
	case SymTypeFunction:
		return "FUNC"
	case SymTypeSection:
		return "SECTION"
	case SymTypeFile:
		return "FILE"
	}
	if c, ok := t.OSSpecific(); ok {
		return fmt.Sprintf("OS+%d", c)
	}
	if c, ok := t.ProcessorSpecific(); ok {
		return fmt.Sprintf("PROC+%d", c)
	}
	return fmt.Sprintf("SymbolType(%d)", uint8(t))
}

// SymbolInfo is the packed binding/type byte of a symbol record.
// Unpacking and repacking is lossless for all 256 codes.
type SymbolInfo uint8

// MakeSymbolInfo packs a binding and a type back into the on-disk byte.
func MakeSymbolInfo(b SymbolBinding, t SymbolType) SymbolInfo {
	return SymbolInfo(uint8(b)<<4 | uint8(t)&0x0f)
}

// Binding returns the high nibble.
func (i SymbolInfo) Binding() SymbolBinding {
	return SymbolBinding(i >> 4)
}

// Type returns the low nibble.
func (i SymbolInfo) Type() SymbolType {
	return SymbolType(i & 0x0f)
}

func (i SymbolInfo) String() string {
	return fmt.Sprintf("%s %s", i.Binding(), i.Type())
}

// SymbolEntrySize is the fixed size of an ELF64 symbol record.
const SymbolEntrySize = 0x18

// SymbolEntry is one record of a symbol table. Name is a byte offset
// into the table's associated string table; Section names the section
// the symbol is defined relative to.
type SymbolEntry struct {
	Name    uint32
	Info    SymbolInfo
	Section Index
	Value   Address
	Size    uint64
}

// decodeSymbolEntry rejects records whose reserved byte at offset 0x05
// is non-zero; everything always-zero on disk must really be zero.
func decodeSymbolEntry(b []byte, bo binary.ByteOrder) (SymbolEntry, error) {
	if len(b) < SymbolEntrySize {
		return SymbolEntry{}, ErrTooShort
	}
	if b[0x05] != 0 {
		return SymbolEntry{}, &ReservedFieldError{Offset: 0x05, Value: b[0x05]}
	}
	return SymbolEntry{
		Name:    bo.Uint32(b[0x00:]),
		Info:    SymbolInfo(b[0x04]),
		Section: Index(bo.Uint16(b[0x06:])),
		Value:   bo.Uint64(b[0x08:]),
		Size:    bo.Uint64(b[0x10:]),
	}, nil
}
