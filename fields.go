package m68k

// Bit-field accessors shared by every ops_*.go file. All operate on the
// instruction register c.ir unless the word is passed explicitly.

func regField(word uint16, shift uint) uint8 {
	return uint8((word >> shift) & 7)
}

func modeField(word uint16, shift uint) uint8 {
	return uint8((word >> shift) & 7)
}

// quickData maps a 3-bit ADDQ/SUBQ/shift-count immediate field to its
// value, with the architectural 0 -> 8 substitution.
func quickData(word uint16, shift uint) uint32 {
	d := (word >> shift) & 7
	if d == 0 {
		return 8
	}
	return uint32(d)
}

// branchOffset decodes a Bcc/BRA/BSR-family displacement: an 8-bit field
// in the opcode word of 0x00 means the real displacement is the following
// word (sign-extended), 0xFF means it's the following long, and any other
// value is used directly as a sign-extended 8-bit displacement. Returns the
// offset and consumes any extension word from the instruction stream.
func (c *CPU) branchOffset(word uint16) int32 {
	switch uint8(word) {
	case 0x00:
		return int32(int16(c.fetchPC()))
	case 0xFF:
		return int32(c.fetchPCLong())
	default:
		return int32(int8(word))
	}
}
