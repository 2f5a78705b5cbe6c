package elf64

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Address is a 64-bit virtual or physical address in the target image.
type Address = uint64

// Offset is a 64-bit byte offset into the file image.
type Offset = uint64

// ELFMagic is the fixed 4-byte prefix of every ELF file.
var ELFMagic = []byte{0x7f, 'E', 'L', 'F'}

// Class identifies the file class declared at offset 0x04. Only the
// 64-bit record layouts are decoded by this package; Class32 files are
// identified but their tables cannot be read.
type Class uint8

const (
	Class32 Class = 1
	Class64 Class = 2
)

func (c Class) String() string {
	switch c {
	case Class32:
		return "ELF32"
	case Class64:
		return "ELF64"
	}
	return fmt.Sprintf("Class(0x%02x)", uint8(c))
}

// Encoding is the byte order declared at offset 0x05. It is validated
// at decode time, so a constructed Encoding is always Little or Big.
type Encoding uint8

const (
	Little Encoding = 1
	Big    Encoding = 2
)

// ByteOrder returns the binary.ByteOrder used for every multi-byte
// field in a file with this encoding.
func (e Encoding) ByteOrder() binary.ByteOrder {
	if e == Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func (e Encoding) String() string {
	switch e {
	case Little:
		return "little endian"
	case Big:
		return "big endian"
	}
	return fmt.Sprintf("Encoding(0x%02x)", uint8(e))
}

// ABI is the OS/ABI code declared at offset 0x07.
type ABI uint8

const (
	ABISystemV    ABI = 0x00
	ABIHPUX       ABI = 0x01
	ABINetBSD     ABI = 0x02
	ABILinux      ABI = 0x03
	ABISolaris    ABI = 0x06
	ABIAIX        ABI = 0x07
	ABIIRIX       ABI = 0x08
	ABIFreeBSD    ABI = 0x09
	ABIOpenBSD    ABI = 0x0c
	ABIOpenVMS    ABI = 0x0d
	ABIStandalone ABI = 0xff
)

func (a ABI) String() string {
	switch a {
	case ABISystemV:
		return "System V"
	case ABIHPUX:
		return "HP-UX"
	case ABINetBSD:
		return "NetBSD"
	case ABILinux:
		return "Linux"
	case ABISolaris:
		return "Solaris"
	case ABIAIX:
		return "AIX"
	case ABIIRIX:
		return "IRIX"
	case ABIFreeBSD:
		return "FreeBSD"
	case ABIOpenBSD:
		return "OpenBSD"
	case ABIOpenVMS:
		return "OpenVMS"
	case ABIStandalone:
		return "Standalone"
	}
	return fmt.Sprintf("ABI(0x%02x)", uint8(a))
}

// Type is the object file type at offset 0x10. The value is the raw
// on-disk code, so converting back to uint16 is always exact.
type Type uint16

const (
	TypeNone         Type = 0x0000
	TypeRelocatable  Type = 0x0001
	TypeExecutable   Type = 0x0002
	TypeSharedObject Type = 0x0003
	TypeCore         Type = 0x0004
)

// OSSpecific reports whether the type falls in the OS-reserved range
// 0xfe00-0xfeff, and the offset within that range.
func (t Type) OSSpecific() (uint8, bool) {
	if t >= 0xfe00 && t <= 0xfeff {
		return uint8(t), true
	}
	return 0, false
}

// ProcessorSpecific reports whether the type falls in the
// processor-reserved range 0xff00-0xffff, and the offset within it.
func (t Type) ProcessorSpecific() (uint8, bool) {
	if t >= 0xff00 {
		return uint8(t), true
	}
	return 0, false
}

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "NONE"
	case TypeRelocatable:
		return "REL"
	case TypeExecutable:
		return "EXEC"
	case TypeSharedObject:
		return "DYN"
	case TypeCore:
		return "CORE"
	}
	if c, ok := t.OSSpecific(); ok {
		return fmt.Sprintf("OS+0x%02x", c)
	}
	if c, ok := t.ProcessorSpecific(); ok {
		return fmt.Sprintf("PROC+0x%02x", c)
	}
	return fmt.Sprintf("Type(0x%04x)", uint16(t))
}

// Machine is the target architecture code at offset 0x12.
type Machine uint16

const (
	MachineNone    Machine = 0x0000
	MachineSPARC   Machine = 0x0002
	MachineX86     Machine = 0x0003
	MachineMIPS    Machine = 0x0008
	MachinePowerPC Machine = 0x0014
	MachineARM     Machine = 0x0028
	MachineSuperH  Machine = 0x002a
	MachineIA64    Machine = 0x0032
	MachineX86_64  Machine = 0x003e
	MachineAArch64 Machine = 0x00b7
	MachineBPF     Machine = 0x00f7
)

func (m Machine) String() string {
	switch m {
	case MachineNone:
		return "none"
	case MachineSPARC:
		return "SPARC"
	case MachineX86:
		return "x86"
	case MachineMIPS:
		return "MIPS"
	case MachinePowerPC:
		return "PowerPC"
	case MachineARM:
		return "ARM"
	case MachineSuperH:
		return "SuperH"
	case MachineIA64:
		return "IA-64"
	case MachineX86_64:
		return "x86-64"
	case MachineAArch64:
		return "AArch64"
	case MachineBPF:
		return "BPF"
	}
	return fmt.Sprintf("Machine(0x%04x)", uint16(m))
}

// Identifier is the decoded e_ident prefix. It determines, among other
// things, the byte order used for every other field in the file.
type Identifier struct {
	Class      Class
	Encoding   Encoding
	Version    uint8
	ABI        ABI
	ABIVersion uint8
}

const identSize = 0x10

func decodeIdentifier(b []byte) (Identifier, error) {
	if len(b) < identSize {
		return Identifier{}, ErrTooShort
	}
	if !bytes.Equal(b[:4], ELFMagic) {
		return Identifier{}, ErrWrongMagic
	}
	enc := Encoding(b[0x05])
	if enc != Little && enc != Big {
		return Identifier{}, &UnknownEncodingError{Code: b[0x05]}
	}
	return Identifier{
		Class:      Class(b[0x04]),
		Encoding:   enc,
		Version:    b[0x06],
		ABI:        ABI(b[0x07]),
		ABIVersion: b[0x08],
	}, nil
}

// HeaderSize is the fixed size of the ELF64 file header.
const HeaderSize = 0x40

// Header is the decoded ELF64 file header. All values are copied out of
// the buffer; a Header does not reference the file image.
type Header struct {
	Ident                Identifier
	Type                 Type
	Machine              Machine
	FormatVersion        uint32
	Entry                Address
	ProgramHeadersOffset Offset
	SectionHeadersOffset Offset
	Flags                uint32
	ProgramHeaderCount   uint16
	SectionHeaderCount   uint16
	SectionNames         Index
}

// decodeHeader decodes the 0x40-byte file header. The identifier runs
// first since it fixes the byte order for every other field. The three
// self-declared record sizes must match this decoder's fixed layouts,
// otherwise the file is from a format revision we do not support.
func decodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, ErrTooShort
	}
	ident, err := decodeIdentifier(b[:identSize])
	if err != nil {
		return Header{}, err
	}
	bo := ident.Encoding.ByteOrder()
	if declared := bo.Uint16(b[0x34:]); declared != HeaderSize {
		return Header{}, &SizeMismatchError{Record: "header", Declared: declared, Want: HeaderSize}
	}
	if declared := bo.Uint16(b[0x36:]); declared != ProgramHeaderSize {
		return Header{}, &SizeMismatchError{Record: "program header", Declared: declared, Want: ProgramHeaderSize}
	}
	if declared := bo.Uint16(b[0x3a:]); declared != SectionHeaderSize {
		return Header{}, &SizeMismatchError{Record: "section header", Declared: declared, Want: SectionHeaderSize}
	}
	return Header{
		Ident:                ident,
		Type:                 Type(bo.Uint16(b[0x10:])),
		Machine:              Machine(bo.Uint16(b[0x12:])),
		FormatVersion:        bo.Uint32(b[0x14:]),
		Entry:                bo.Uint64(b[0x18:]),
		ProgramHeadersOffset: bo.Uint64(b[0x20:]),
		SectionHeadersOffset: bo.Uint64(b[0x28:]),
		Flags:                bo.Uint32(b[0x30:]),
		ProgramHeaderCount:   bo.Uint16(b[0x38:]),
		SectionHeaderCount:   bo.Uint16(b[0x3c:]),
		SectionNames:         Index(bo.Uint16(b[0x3e:])),
	}, nil
}
