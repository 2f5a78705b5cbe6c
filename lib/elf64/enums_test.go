package elf64

import "testing"

func TestIndexClassification(t *testing.T) {
	cases := []struct {
		code uint16
		want string
	}{
		{0x0000, "UND"},
		{0x0001, "1"},
		{0x1234, "4660"},
		{0xfeff, "65279"},
		{0xff00, "PROC+0x00"},
		{0xff1f, "PROC+0x1f"},
		{0xff20, "ENV+0x00"},
		{0xff3f, "ENV+0x1f"},
		{0xfff1, "ABS"},
		{0xfff2, "COM"},
	}
	for _, c := range cases {
		x := Index(c.code)
		if got := x.String(); got != c.want {
			t.Errorf("Index(0x%04x) = %q, want %q", c.code, got, c.want)
		}
		// The raw code is always recoverable.
		if uint16(x) != c.code {
			t.Errorf("Index(0x%04x) does not round-trip", c.code)
		}
	}

	if n, ok := Index(7).Regular(); !ok || n != 7 {
		t.Errorf("Regular() = %d, %v", n, ok)
	}
}

// Only the named special codes and the two reserved ranges fall outside
// the regular domain; the codes between the reserved ranges and the
// special values are ordinary section indices.
func TestIndexRegularDomain(t *testing.T) {
	nonRegular := []uint16{0x0000, 0xff00, 0xff1f, 0xff20, 0xff3f, 0xfff1, 0xfff2}
	for _, code := range nonRegular {
		if n, ok := Index(code).Regular(); ok {
			t.Errorf("Index(0x%04x).Regular() = %d, true, want false", code, n)
		}
	}
	regular := []uint16{0x0001, 0xfeff, 0xff40, 0xfff0, 0xfff3, 0xffff}
	for _, code := range regular {
		n, ok := Index(code).Regular()
		if !ok || n != code {
			t.Errorf("Index(0x%04x).Regular() = %d, %v, want %d, true", code, n, ok, code)
		}
	}
}

func TestTypeRanges(t *testing.T) {
	if _, ok := TypeCore.OSSpecific(); ok {
		t.Error("CORE is not OS-specific")
	}
	if c, ok := Type(0xfe42).OSSpecific(); !ok || c != 0x42 {
		t.Errorf("0xfe42: %d, %v", c, ok)
	}
	if c, ok := Type(0xff07).ProcessorSpecific(); !ok || c != 0x07 {
		t.Errorf("0xff07: %d, %v", c, ok)
	}
}

func TestProgramTypeRanges(t *testing.T) {
	if c, ok := ProgramType(0x6474e551).OSSpecific(); !ok || c != 0x6474e551 {
		t.Errorf("GNU_STACK: %08x, %v", c, ok)
	}
	if c, ok := ProgramType(0x70000001).ProcessorSpecific(); !ok || c != 0x70000001 {
		t.Errorf("0x70000001: %08x, %v", c, ok)
	}
	if _, ok := ProgTypeLoad.OSSpecific(); ok {
		t.Error("LOAD is not OS-specific")
	}
}

func TestSectionTypeRanges(t *testing.T) {
	if c, ok := SectionType(0x6ffffff6).OSSpecific(); !ok || c != 0x6ffffff6 {
		t.Errorf("GNU_HASH: %08x, %v", c, ok)
	}
	if c, ok := SectionType(0x7fffffff).ProcessorSpecific(); !ok || c != 0x7fffffff {
		t.Errorf("0x7fffffff: %08x, %v", c, ok)
	}
	if _, ok := SecTypeRela.ProcessorSpecific(); ok {
		t.Error("RELA is not processor-specific")
	}
}

func TestFlagStrings(t *testing.T) {
	if got := (ProgFlagRead | ProgFlagExecute).String(); got != "R E" {
		t.Errorf("program flags = %q, want %q", got, "R E")
	}
	if got := (SecFlagAlloc | SecFlagExecInstr).String(); got != "AX" {
		t.Errorf("section flags = %q, want %q", got, "AX")
	}
}
