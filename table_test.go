package m68k

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpcodeTagKnownEncodings(t *testing.T) {
	cases := []struct {
		name string
		word uint16
		tag  Tag
	}{
		{"nop", 0x4E71, TagNop},
		{"rts", 0x4E75, TagRts},
		{"rte", 0x4E73, TagRte},
		{"reset", 0x4E70, TagReset},
		{"moveq D0,#0", 0x7000, TagMoveQ},
		{"move.b D1,D0", 0x1001, TagMoveByte},
		{"move.w D1,D0", 0x3001, TagMoveWord},
		{"move.l D1,D0", 0x2001, TagMoveLong},
		{"lea (d16,A0),A1", 0x43E8, TagLeaOffset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.tag, opcodeTag(tc.word), "word %#04x", tc.word)
		})
	}
}

func TestOpcodeTagCmpFamilyOverlap(t *testing.T) {
	// The B100 opmode is shared between EOR.b and CMPM.b, and CMPM.b must win
	// over the broader EorByte mask; CMPA.l (B1C0) sits beside them.
	require.Equal(t, TagCmpaLong, opcodeTag(0xB1C0))
	require.Equal(t, TagCmpmByte, opcodeTag(0xB108))
	require.Equal(t, TagEorByte, opcodeTag(0xB100))
}

func TestOpcodeTagAddqExcludesNonAlterableForms(t *testing.T) {
	// ADDQ's EA field excludes the An-relative-to-immediate sub-forms
	// 0x3A-0x3F (PC-relative/immediate destinations aren't alterable).
	assert.Equal(t, TagAddqByte, opcodeTag(0x5000))
	assert.NotEqual(t, TagAddqByte, opcodeTag(0x503A))
}

func TestOpcodeTagUnknownDefaultsZero(t *testing.T) {
	assert.Equal(t, TagUnknown, opcodeTag(0xFFFF))
}

func TestTagStringCoversEveryTag(t *testing.T) {
	for tag := TagUnknown; tag < tagCount; tag++ {
		assert.NotEmpty(t, tag.String())
	}
}
