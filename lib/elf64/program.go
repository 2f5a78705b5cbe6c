package elf64

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// ProgramType is the segment type code of a program header.
type ProgramType uint32

const (
	ProgTypeNull               ProgramType = 0x00000000
	ProgTypeLoad               ProgramType = 0x00000001
	ProgTypeDynamic            ProgramType = 0x00000002
	ProgTypeInterpreter        ProgramType = 0x00000003
	ProgTypeNote               ProgramType = 0x00000004
	ProgTypeShlib              ProgramType = 0x00000005
	ProgTypeProgramHeaderTable ProgramType = 0x00000006
)

// OSSpecific reports whether the type is in the OS-reserved range
// 0x60000000-0x6fffffff.
func (t ProgramType) OSSpecific() (uint32, bool) {
	if t >= 0x60000000 && t <= 0x6fffffff {
		return uint32(t), true
	}
	return 0, false
}

// ProcessorSpecific reports whether the type is in the
// processor-reserved range 0x70000000-0x7fffffff.
func (t ProgramType) ProcessorSpecific() (uint32, bool) {
	if t >= 0x70000000 && t <= 0x7fffffff {
		return uint32(t), true
	}
	return 0, false
}

func (t ProgramType) String() string {
	switch t {
	case ProgTypeNull:
		return "NULL"
	case ProgTypeLoad:
		return "LOAD"
	case ProgTypeDynamic:
		return "DYNAMIC"
	case ProgTypeInterpreter:
		return "INTERP"
	case ProgTypeNote:
		return "NOTE"
	case ProgTypeShlib:
		return "SHLIB"
	case ProgTypeProgramHeaderTable:
		return "PHDR"
	}
	if c, ok := t.OSSpecific(); ok {
		return fmt.Sprintf("OS(0x%08x)", c)
	}
	if c, ok := t.ProcessorSpecific(); ok {
		return fmt.Sprintf("PROC(0x%08x)", c)
	}
	return fmt.Sprintf("ProgramType(0x%08x)", uint32(t))
}

// ProgramFlags holds the segment permission bits.
type ProgramFlags uint32

const (
	ProgFlagExecute ProgramFlags = 0x1
	ProgFlagWrite   ProgramFlags = 0x2
	ProgFlagRead    ProgramFlags = 0x4
)

func (f ProgramFlags) String() string {
	var sb strings.Builder
	for _, bit := range []struct {
		flag ProgramFlags
		c    byte
	}{
		{ProgFlagRead, 'R'},
		{ProgFlagWrite, 'W'},
		{ProgFlagExecute, 'E'},
	} {
		if f&bit.flag != 0 {
			sb.WriteByte(bit.c)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// ProgramHeaderSize is the fixed size of an ELF64 program header record.
const ProgramHeaderSize = 0x38

// ProgramHeader describes one segment of the file.
type ProgramHeader struct {
	Type            ProgramType
	Flags           ProgramFlags
	FileOffset      Offset
	VirtualAddress  Address
	PhysicalAddress Address
	FileSize        uint64
	MemorySize      uint64
	Alignment       uint64
}

func decodeProgramHeader(b []byte, bo binary.ByteOrder) (ProgramHeader, error) {
	if len(b) < ProgramHeaderSize {
		return ProgramHeader{}, ErrTooShort
	}
	return ProgramHeader{
		Type:            ProgramType(bo.Uint32(b[0x00:])),
		Flags:           ProgramFlags(bo.Uint32(b[0x04:])),
		FileOffset:      bo.Uint64(b[0x08:]),
		VirtualAddress:  bo.Uint64(b[0x10:]),
		PhysicalAddress: bo.Uint64(b[0x18:]),
		FileSize:        bo.Uint64(b[0x20:]),
		MemorySize:      bo.Uint64(b[0x28:]),
		Alignment:       bo.Uint64(b[0x30:]),
	}, nil
}
