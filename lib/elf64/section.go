package elf64

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Index is the 16-bit section-index domain. Besides regular indices it
// encodes a handful of special meanings (undefined, absolute, common)
// and two reserved ranges. The raw code is preserved, so converting an
// Index back to uint16 is always exact.
type Index uint16

const (
	IndexUndefined Index = 0x0000
	IndexAbsolute  Index = 0xfff1
	IndexCommon    Index = 0xfff2
)

// Regular reports whether the index names an ordinary section, and if
// so which one. Only the named special codes and the two reserved
// ranges are excluded; the rest of the 16-bit domain is regular.
func (x Index) Regular() (uint16, bool) {
	switch {
	case x == IndexUndefined, x == IndexAbsolute, x == IndexCommon:
		return 0, false
	case x >= 0xff00 && x <= 0xff3f:
		return 0, false
	}
	return uint16(x), true
}

// ProcessorSpecific reports whether the index falls in the
// processor-reserved range 0xff00-0xff1f, and the offset within it.
func (x Index) ProcessorSpecific() (uint8, bool) {
	if x >= 0xff00 && x <= 0xff1f {
		return uint8(x & 0x001f), true
	}
	return 0, false
}

// EnvironmentSpecific reports whether the index falls in the
// environment-reserved range 0xff20-0xff3f, and the offset within it.
func (x Index) EnvironmentSpecific() (uint8, bool) {
	if x >= 0xff20 && x <= 0xff3f {
		return uint8(x & 0x001f), true
	}
	return 0, false
}

func (x Index) String() string {
	switch x {
	case IndexUndefined:
		return "UND"
	case IndexAbsolute:
		return "ABS"
	case IndexCommon:
		return "COM"
	}
	if c, ok := x.ProcessorSpecific(); ok {
		return fmt.Sprintf("PROC+0x%02x", c)
	}
	if c, ok := x.EnvironmentSpecific(); ok {
		return fmt.Sprintf("ENV+0x%02x", c)
	}
	return fmt.Sprintf("%d", uint16(x))
}

// SectionType is the section type code of a section header.
type SectionType uint32

const (
	SecTypeNull               SectionType = 0x00000000
	SecTypeProgramBits        SectionType = 0x00000001
	SecTypeSymbolTable        SectionType = 0x00000002
	SecTypeStringTable        SectionType = 0x00000003
	SecTypeRela               SectionType = 0x00000004
	SecTypeHash               SectionType = 0x00000005
	SecTypeDynamic            SectionType = 0x00000006
	SecTypeNote               SectionType = 0x00000007
	SecTypeNoBits             SectionType = 0x00000008
	SecTypeRel                SectionType = 0x00000009
	SecTypeShlib              SectionType = 0x0000000a
	SecTypeDynamicSymbolTable SectionType = 0x0000000b
)

// OSSpecific reports whether the type is in the OS-reserved range
// 0x60000000-0x6fffffff.
func (t SectionType) OSSpecific() (uint32, bool) {
	if t >= 0x60000000 && t <= 0x6fffffff {
		return uint32(t), true
	}
	return 0, false
}

// ProcessorSpecific reports whether the type is in the
// processor-reserved range 0x70000000-0x7fffffff.
func (t SectionType) ProcessorSpecific() (uint32, bool) {
	if t >= 0x70000000 && t <= 0x7fffffff {
		return uint32(t), true
	}
	return 0, false
}

func (t SectionType) String() string {
	switch t {
	case SecTypeNull:
		return "NULL"
	case SecTypeProgramBits:
		return "PROGBITS"
	case SecTypeSymbolTable:
		return "SYMTAB"
	case SecTypeStringTable:
		return "STRTAB"
	case SecTypeRela:
		return "RELA"
	case SecTypeHash:
		return "HASH"
	case SecTypeDynamic:
		return "DYNAMIC"
	case SecTypeNote:
		return "NOTE"
	case SecTypeNoBits:
		return "NOBITS"
	case SecTypeRel:
		return "REL"
	case SecTypeShlib:
		return "SHLIB"
	case SecTypeDynamicSymbolTable:
		return "DYNSYM"
	}
	if c, ok := t.OSSpecific(); ok {
		return fmt.Sprintf("OS(0x%08x)", c)
	}
	if c, ok := t.ProcessorSpecific(); ok {
		return fmt.Sprintf("PROC(0x%08x)", c)
	}
	return fmt.Sprintf("SectionType(0x%08x)", uint32(t))
}

// SectionFlags holds the section attribute bits.
type SectionFlags uint32

const (
	SecFlagWrite     SectionFlags = 0x1
	SecFlagAlloc     SectionFlags = 0x2
	SecFlagExecInstr SectionFlags = 0x4
)

func (f SectionFlags) String() string {
	var sb strings.Builder
	if f&SecFlagWrite != 0 {
		sb.WriteByte('W')
	}
	if f&SecFlagAlloc != 0 {
		sb.WriteByte('A')
	}
	if f&SecFlagExecInstr != 0 {
		sb.WriteByte('X')
	}
	return sb.String()
}

// SectionHeaderSize is the fixed size of an ELF64 section header record.
const SectionHeaderSize = 0x40

// SectionHeader describes one section of the file. Name is a byte
// offset into the section-name string table. Info is auxiliary and its
// meaning depends on Type: the count of local symbols for symbol
// tables, the target section index for relocation tables.
type SectionHeader struct {
	Name      uint32
	Type      SectionType
	Flags     SectionFlags
	Address   Address
	Offset    Offset
	Size      uint64
	Link      Index
	Info      uint32
	Alignment uint64
	EntrySize uint64
}

// Byte ranges 0x0c-0x10 and 0x2a-0x2c of the record are unused.
func decodeSectionHeader(b []byte, bo binary.ByteOrder) (SectionHeader, error) {
	if len(b) < SectionHeaderSize {
		return SectionHeader{}, ErrTooShort
	}
	return SectionHeader{
		Name:      bo.Uint32(b[0x00:]),
		Type:      SectionType(bo.Uint32(b[0x04:])),
		Flags:     SectionFlags(bo.Uint32(b[0x08:])),
		Address:   bo.Uint64(b[0x10:]),
		Offset:    bo.Uint64(b[0x18:]),
		Size:      bo.Uint64(b[0x20:]),
		Link:      Index(bo.Uint16(b[0x28:])),
		Info:      bo.Uint32(b[0x2c:]),
		Alignment: bo.Uint64(b[0x30:]),
		EntrySize: bo.Uint64(b[0x38:]),
	}, nil
}
