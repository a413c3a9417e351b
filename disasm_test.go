package m68k

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassembleSimpleInstructions(t *testing.T) {
	cases := []struct {
		word uint16
		want string
		len  int
	}{
		{0x4E71, "nop", 2},
		{0x4E75, "rts", 2},
		{0x7005, "moveq #5, D0", 2},
		{0x4200, "clr.b D0", 2},
		{0xD081, "add.l D1, D0", 2},
	}
	for _, tc := range cases {
		bus := NewFlatBus()
		write16(bus, 0, tc.word)
		n, text := Disassemble(bus, 0)
		assert.Equal(t, tc.want, text)
		assert.Equal(t, tc.len, n)
	}
}

func TestDisassembleMoveWithDisplacementEA(t *testing.T) {
	bus := NewFlatBus()
	write16(bus, 0, 0x303A) // move.w (d16,PC),D0
	write16(bus, 2, 0x0010) // d16 = 16

	n, text := Disassemble(bus, 0)
	assert.Equal(t, "move.w ($10,PC), D0", text)
	assert.Equal(t, 4, n)
}

func TestDisassembleBranchResolvesTarget(t *testing.T) {
	bus := NewFlatBus()
	write16(bus, 0x1000, 0x6704) // beq +4 -> target 0x1006

	_, text := Disassemble(bus, 0x1000)
	assert.Equal(t, "beq $1006", text)
}

func TestDisassembleUnknownEncodingProducesPlaceholder(t *testing.T) {
	bus := NewFlatBus()
	write16(bus, 0, 0xFFFF)

	n, text := Disassemble(bus, 0)
	assert.Equal(t, "dc.w $ffff", text)
	assert.Equal(t, 2, n)
}

func TestMovemListCollapsesContiguousRanges(t *testing.T) {
	assert.Equal(t, "D0-D3/D7", movemList(0x008F, false))
}
