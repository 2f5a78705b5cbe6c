package elf64

import "fmt"

// SegmentData is the tagged payload of a resolved segment. The concrete
// type is one of LoadData, InterpreterData, NoteData or RawData,
// depending on the segment type.
type SegmentData interface {
	segmentData()
}

// SectionData is the tagged payload of a resolved section. The concrete
// type is one of ProgramBitsData, SymbolTableData,
// DynamicSymbolTableData, StringTableData, RelaData, RelData, NoteData
// or RawData, depending on the section type.
type SectionData interface {
	sectionData()
}

// LoadData is the file-backed part of a loadable segment together with
// the virtual address it maps to.
type LoadData struct {
	Data    []byte
	Address Address
}

// InterpreterData is the program interpreter path, raw bytes as stored.
type InterpreterData struct {
	Path []byte
}

// NoteData carries the note records of a note segment or note section.
type NoteData struct {
	Notes NoteTable
}

// RawData is the payload of a segment or section whose type is
// OS-specific, processor-specific or unknown: the raw bytes plus the
// numeric type code, undecoded. Address is meaningful for segments
// only.
type RawData struct {
	Code    uint32
	Data    []byte
	Address Address
}

// ProgramBitsData is the raw content of a program-bits section.
type ProgramBitsData struct {
	Data []byte
}

// SymbolTableData is a symbol table section: a record table plus the
// count of local symbols taken from the header's info field.
type SymbolTableData struct {
	Table  Table[SymbolEntry]
	Locals int
}

// DynamicSymbolTableData is the dynamic-linking symbol table, shaped
// like SymbolTableData.
type DynamicSymbolTableData struct {
	Table  Table[SymbolEntry]
	Locals int
}

// StringTableData is a string table section.
type StringTableData struct {
	Strings StringTable
}

// RelaData is a relocation-with-addend table plus the section the
// relocations apply to, derived from the header's info field.
type RelaData struct {
	Table     Table[RelaEntry]
	AppliesTo Index
}

// RelData is a relocation table plus the section the relocations apply
// to, derived from the header's info field.
type RelData struct {
	Table     Table[RelEntry]
	AppliesTo Index
}

func (*LoadData) segmentData()        {}
func (*InterpreterData) segmentData() {}
func (*NoteData) segmentData()        {}
func (*RawData) segmentData()         {}

func (*ProgramBitsData) sectionData()        {}
func (*SymbolTableData) sectionData()        {}
func (*DynamicSymbolTableData) sectionData() {}
func (*StringTableData) sectionData()        {}
func (*RelaData) sectionData()               {}
func (*RelData) sectionData()                {}
func (*NoteData) sectionData()               {}
func (*RawData) sectionData()                {}

// Segment is a resolved program header: its tagged payload plus the
// attributes a loader needs alongside it.
type Segment struct {
	Data       SegmentData
	Flags      ProgramFlags
	MemorySize uint64
	Alignment  uint64
}

// Section is a resolved section header: its tagged payload, its name
// from the section-name string table (empty when the file has none),
// and its attributes.
type Section struct {
	Data      SectionData
	Name      []byte
	Flags     SectionFlags
	Address   Address
	Alignment uint64
	Link      Index
}

// Program resolves the index-th segment. It returns (nil, nil) for
// segment types that carry no payload (null, shlib, the program header
// table itself) and ErrNotImplemented for the dynamic-linking table,
// whose payload this decoder deliberately does not parse.
func (f *File) Program(index int) (*Segment, error) {
	ph, err := f.programs.Pick(index)
	if err != nil {
		return nil, err
	}
	slice, err := region(f.raw, ph.FileOffset, ph.FileSize)
	if err != nil {
		return nil, err
	}
	enc := f.header.Ident.Encoding

	var data SegmentData
	switch ph.Type {
	case ProgTypeNull, ProgTypeShlib, ProgTypeProgramHeaderTable:
		return nil, nil
	case ProgTypeDynamic:
		return nil, fmt.Errorf("%w: dynamic segment", ErrNotImplemented)
	case ProgTypeLoad:
		data = &LoadData{Data: slice, Address: ph.VirtualAddress}
	case ProgTypeInterpreter:
		data = &InterpreterData{Path: slice}
	case ProgTypeNote:
		data = &NoteData{Notes: NewNoteTable(slice, enc)}
	default:
		data = &RawData{Code: uint32(ph.Type), Data: slice, Address: ph.VirtualAddress}
	}

	return &Segment{
		Data:       data,
		Flags:      ph.Flags,
		MemorySize: ph.MemorySize,
		Alignment:  ph.Alignment,
	}, nil
}

// Section resolves the index-th section. It returns (nil, nil) for
// section types that carry no payload (null, no-bits, shlib) and
// ErrNotImplemented for the hash table and the dynamic-linking table.
func (f *File) Section(index int) (*Section, error) {
	sh, err := f.sections.Pick(index)
	if err != nil {
		return nil, err
	}
	slice, err := region(f.raw, sh.Offset, sh.Size)
	if err != nil {
		return nil, err
	}
	enc := f.header.Ident.Encoding

	var data SectionData
	switch sh.Type {
	case SecTypeNull, SecTypeNoBits, SecTypeShlib:
		return nil, nil
	case SecTypeHash:
		return nil, fmt.Errorf("%w: hash section", ErrNotImplemented)
	case SecTypeDynamic:
		return nil, fmt.Errorf("%w: dynamic section", ErrNotImplemented)
	case SecTypeProgramBits:
		data = &ProgramBitsData{Data: slice}
	case SecTypeSymbolTable:
		data = &SymbolTableData{Table: NewSymbolTable(slice, enc), Locals: int(sh.Info)}
	case SecTypeDynamicSymbolTable:
		data = &DynamicSymbolTableData{Table: NewSymbolTable(slice, enc), Locals: int(sh.Info)}
	case SecTypeStringTable:
		data = &StringTableData{Strings: NewStringTable(slice)}
	case SecTypeRela:
		data = &RelaData{Table: NewRelaTable(slice, enc), AppliesTo: Index(uint16(sh.Info))}
	case SecTypeRel:
		data = &RelData{Table: NewRelTable(slice, enc), AppliesTo: Index(uint16(sh.Info))}
	case SecTypeNote:
		data = &NoteData{Notes: NewNoteTable(slice, enc)}
	default:
		data = &RawData{Code: uint32(sh.Type), Data: slice}
	}

	var name []byte
	if f.names != nil {
		name, err = f.names.Pick(sh.Name)
		if err != nil {
			return nil, err
		}
	}

	return &Section{
		Data:      data,
		Name:      name,
		Flags:     sh.Flags,
		Address:   sh.Address,
		Alignment: sh.Alignment,
		Link:      sh.Link,
	}, nil
}
