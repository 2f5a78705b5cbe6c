package elf64

// StringTable is a buffer region holding concatenated null-terminated
// byte strings, addressed by byte offset. Entries are returned as raw
// byte views into the region; no text validation is performed.
type StringTable struct {
	data []byte
}

// NewStringTable wraps a buffer region as a string table.
func NewStringTable(data []byte) StringTable {
	return StringTable{data: data}
}

// maxStringLength caps the forward scan so a maliciously unterminated
// table cannot make a single lookup scan the whole region.
const maxStringLength = 0xff

// Pick returns the bytes at the given offset up to, and excluding, the
// terminating zero byte. The scan stops after maxStringLength bytes and
// returns what it has; it fails with ErrTooShort only when it runs off
// the end of the region first.
func (t StringTable) Pick(offset uint32) ([]byte, error) {
	if int64(offset) >= int64(len(t.data)) {
		return nil, ErrTooShort
	}
	start := int(offset)
	n := 0
	for {
		if start+n >= len(t.data) {
			return nil, ErrTooShort
		}
		if t.data[start+n] == 0 || n == maxStringLength {
			break
		}
		n++
	}
	return t.data[start : start+n], nil
}

// Raw exposes the whole underlying region.
func (t StringTable) Raw() []byte {
	return t.data
}
