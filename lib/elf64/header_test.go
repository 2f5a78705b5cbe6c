package elf64

import (
	"encoding/binary"
	"errors"
	"testing"
)

// validHeader builds a minimal little-endian ELF64 header declaring no
// program headers and no section headers.
func validHeader() []byte {
	b := make([]byte, HeaderSize)
	copy(b, ELFMagic)
	b[0x04] = byte(Class64)
	b[0x05] = byte(Little)
	b[0x06] = 1
	b[0x07] = byte(ABILinux)
	binary.LittleEndian.PutUint16(b[0x10:], uint16(TypeExecutable))
	binary.LittleEndian.PutUint16(b[0x12:], uint16(MachineX86_64))
	binary.LittleEndian.PutUint32(b[0x14:], 1)
	binary.LittleEndian.PutUint64(b[0x18:], 0x0123456789abcdef)
	binary.LittleEndian.PutUint16(b[0x34:], HeaderSize)
	binary.LittleEndian.PutUint16(b[0x36:], ProgramHeaderSize)
	binary.LittleEndian.PutUint16(b[0x3a:], SectionHeaderSize)
	return b
}

func TestDecodeHeader(t *testing.T) {
	h, err := decodeHeader(validHeader())
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if h.Ident.Class != Class64 {
		t.Errorf("class = %v", h.Ident.Class)
	}
	if h.Ident.Encoding != Little {
		t.Errorf("encoding = %v", h.Ident.Encoding)
	}
	if h.Ident.ABI != ABILinux {
		t.Errorf("abi = %v", h.Ident.ABI)
	}
	if h.Type != TypeExecutable {
		t.Errorf("type = %v", h.Type)
	}
	if h.Machine != MachineX86_64 {
		t.Errorf("machine = %v", h.Machine)
	}
	if h.Entry != 0x0123456789abcdef {
		t.Errorf("entry = 0x%x", h.Entry)
	}
	if h.ProgramHeaderCount != 0 || h.SectionHeaderCount != 0 {
		t.Errorf("counts = %d, %d", h.ProgramHeaderCount, h.SectionHeaderCount)
	}
	if h.SectionNames != IndexUndefined {
		t.Errorf("section names = %v", h.SectionNames)
	}
}

func TestDecodeHeaderBigEndian(t *testing.T) {
	b := make([]byte, HeaderSize)
	copy(b, ELFMagic)
	b[0x04] = byte(Class64)
	b[0x05] = byte(Big)
	binary.BigEndian.PutUint16(b[0x10:], uint16(TypeSharedObject))
	binary.BigEndian.PutUint16(b[0x12:], uint16(MachinePowerPC))
	binary.BigEndian.PutUint64(b[0x18:], 0x10000000)
	binary.BigEndian.PutUint16(b[0x34:], HeaderSize)
	binary.BigEndian.PutUint16(b[0x36:], ProgramHeaderSize)
	binary.BigEndian.PutUint16(b[0x3a:], SectionHeaderSize)

	h, err := decodeHeader(b)
	if err != nil {
		t.Fatalf("decodeHeader: %v", err)
	}
	if h.Ident.Encoding != Big {
		t.Errorf("encoding = %v", h.Ident.Encoding)
	}
	if h.Type != TypeSharedObject || h.Machine != MachinePowerPC {
		t.Errorf("type = %v, machine = %v", h.Type, h.Machine)
	}
	if h.Entry != 0x10000000 {
		t.Errorf("entry = 0x%x", h.Entry)
	}
}

func TestDecodeHeaderTooShort(t *testing.T) {
	full := validHeader()
	for _, n := range []int{0, 1, 0x04, 0x10, 0x3f} {
		if _, err := decodeHeader(full[:n]); !errors.Is(err, ErrTooShort) {
			t.Errorf("len %d: err = %v, want ErrTooShort", n, err)
		}
	}
}

func TestDecodeHeaderWrongMagic(t *testing.T) {
	b := validHeader()
	b[0x01] = 'X'
	if _, err := decodeHeader(b); !errors.Is(err, ErrWrongMagic) {
		t.Errorf("err = %v, want ErrWrongMagic", err)
	}
}

func TestDecodeHeaderUnknownEncoding(t *testing.T) {
	b := validHeader()
	b[0x05] = 3
	_, err := decodeHeader(b)
	var encErr *UnknownEncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("err = %v, want UnknownEncodingError", err)
	}
	if encErr.Code != 3 {
		t.Errorf("code = %d, want 3", encErr.Code)
	}
}

func TestDecodeHeaderSizeMismatch(t *testing.T) {
	cases := []struct {
		name   string
		off    int
		record string
	}{
		{"header size", 0x34, "header"},
		{"program header size", 0x36, "program header"},
		{"section header size", 0x3a, "section header"},
	}
	for _, c := range cases {
		b := validHeader()
		binary.LittleEndian.PutUint16(b[c.off:], 0x1234)
		_, err := decodeHeader(b)
		var sizeErr *SizeMismatchError
		if !errors.As(err, &sizeErr) {
			t.Errorf("%s: err = %v, want SizeMismatchError", c.name, err)
			continue
		}
		if sizeErr.Record != c.record {
			t.Errorf("%s: record = %q, want %q", c.name, sizeErr.Record, c.record)
		}
		if sizeErr.Declared != 0x1234 {
			t.Errorf("%s: declared = 0x%x", c.name, sizeErr.Declared)
		}
	}
}

func TestEncodingByteOrder(t *testing.T) {
	if Little.ByteOrder() != binary.ByteOrder(binary.LittleEndian) {
		t.Error("little encoding should map to binary.LittleEndian")
	}
	if Big.ByteOrder() != binary.ByteOrder(binary.BigEndian) {
		t.Error("big encoding should map to binary.BigEndian")
	}
}
