// Package elf64 is a read-only decoder for 64-bit ELF file images held
// in memory. It turns a raw byte buffer into validated, strongly-typed
// views of the file header, program and section headers, symbol tables,
// relocation tables, string tables and note records, without copying
// the buffer and without allocating per-entry state. Every offset,
// count and size read from the file is treated as hostile input: all
// accesses are bounds-checked and surface errors instead of panicking.
//
// The decoder is lazy. Constructing a File decodes the header once;
// everything else is resolved on demand, per index, from the offsets
// the header declares. All views are immutable windows into the one
// buffer supplied to New, so any number of goroutines may share a File
// and its views without coordination.
package elf64

// File binds a decoded header to the whole-file buffer and resolves
// segments and sections on demand.
type File struct {
	raw      []byte
	header   Header
	programs Table[ProgramHeader]
	sections Table[SectionHeader]
	names    *StringTable
}

// New decodes the header of raw and validates that the program-header
// and section-header tables it declares lie inside the buffer. If the
// header's section-name index refers to a regular section of string
// table type, section names become resolvable; otherwise names are
// simply absent, which is a capability gap, not an error.
func New(raw []byte) (*File, error) {
	if len(raw) < HeaderSize {
		return nil, ErrTooShort
	}
	header, err := decodeHeader(raw[:HeaderSize])
	if err != nil {
		return nil, err
	}
	enc := header.Ident.Encoding

	progRegion, err := region(raw, header.ProgramHeadersOffset, uint64(header.ProgramHeaderCount)*ProgramHeaderSize)
	if err != nil {
		return nil, err
	}
	secRegion, err := region(raw, header.SectionHeadersOffset, uint64(header.SectionHeaderCount)*SectionHeaderSize)
	if err != nil {
		return nil, err
	}

	f := &File{
		raw:      raw,
		header:   header,
		programs: NewProgramHeaderTable(progRegion, enc),
		sections: NewSectionHeaderTable(secRegion, enc),
	}

	if i, ok := header.SectionNames.Regular(); ok {
		names, err := f.sections.Pick(int(i))
		if err != nil {
			return nil, err
		}
		if names.Type == SecTypeStringTable {
			data, err := region(raw, names.Offset, names.Size)
			if err != nil {
				return nil, err
			}
			table := NewStringTable(data)
			f.names = &table
		}
	}
	return f, nil
}

// region slices raw at [off, off+size), failing with ErrTooShort when
// the range extends past the buffer. The check runs in uint64 space so
// hostile offsets cannot wrap.
func region(raw []byte, off Offset, size uint64) ([]byte, error) {
	if off > uint64(len(raw)) || size > uint64(len(raw))-off {
		return nil, ErrTooShort
	}
	return raw[off : off+size], nil
}

// Header returns the decoded file header.
func (f *File) Header() Header {
	return f.header
}

// Class returns the file class from the identifier.
func (f *File) Class() Class {
	return f.header.Ident.Class
}

// Encoding returns the byte order declared by the identifier.
func (f *File) Encoding() Encoding {
	return f.header.Ident.Encoding
}

// Version returns the identifier version byte.
func (f *File) Version() uint8 {
	return f.header.Ident.Version
}

// ABI returns the OS/ABI code from the identifier.
func (f *File) ABI() ABI {
	return f.header.Ident.ABI
}

// ABIVersion returns the ABI version byte from the identifier.
func (f *File) ABIVersion() uint8 {
	return f.header.Ident.ABIVersion
}

// Type returns the object file type.
func (f *File) Type() Type {
	return f.header.Type
}

// Machine returns the target architecture code.
func (f *File) Machine() Machine {
	return f.header.Machine
}

// FormatVersion returns the 32-bit format version field.
func (f *File) FormatVersion() uint32 {
	return f.header.FormatVersion
}

// Entry returns the program entry address.
func (f *File) Entry() Address {
	return f.header.Entry
}

// Flags returns the processor-specific flags field.
func (f *File) Flags() uint32 {
	return f.header.Flags
}

// ProgramCount returns the number of program headers the file declares.
func (f *File) ProgramCount() int {
	return int(f.header.ProgramHeaderCount)
}

// SectionCount returns the number of section headers the file declares.
func (f *File) SectionCount() int {
	return int(f.header.SectionHeaderCount)
}

// ProgramHeader returns the index-th program header record.
func (f *File) ProgramHeader(index int) (ProgramHeader, error) {
	return f.programs.Pick(index)
}

// SectionHeader returns the index-th section header record.
func (f *File) SectionHeader(index int) (SectionHeader, error) {
	return f.sections.Pick(index)
}

// SectionName resolves the name of the index-th section via the
// section-name string table. It returns nil when the file has no
// resolvable name table.
func (f *File) SectionName(index int) ([]byte, error) {
	sh, err := f.sections.Pick(index)
	if err != nil {
		return nil, err
	}
	if f.names == nil {
		return nil, nil
	}
	return f.names.Pick(sh.Name)
}
