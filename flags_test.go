package m68k

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetFlagsAddOverflow(t *testing.T) {
	c := New(NewFlatBus())

	// 0x7FFFFFFF + 1 overflows into the sign bit: V set, N set, C/X clear.
	c.setFlagsAdd(0x7FFFFFFF, 1, 0x80000000, Long)
	assert.True(t, c.flag(flagV))
	assert.True(t, c.flag(flagN))
	assert.False(t, c.flag(flagC))
	assert.False(t, c.flag(flagX))
	assert.False(t, c.flag(flagZ))
}

func TestSetFlagsAddCarry(t *testing.T) {
	c := New(NewFlatBus())

	c.setFlagsAdd(0xFF, 0x01, 0x00, Byte)
	assert.True(t, c.flag(flagC))
	assert.True(t, c.flag(flagX))
	assert.True(t, c.flag(flagZ))
	assert.False(t, c.flag(flagV))
}

func TestSetFlagsSubBorrow(t *testing.T) {
	c := New(NewFlatBus())

	c.setFlagsSub(0x00, 0x01, 0xFF, Byte)
	assert.True(t, c.flag(flagC))
	assert.True(t, c.flag(flagX))
	assert.True(t, c.flag(flagN))
}

func TestSetFlagsCmpDoesNotTouchX(t *testing.T) {
	c := New(NewFlatBus())
	c.setFlag(flagX, true)

	c.setFlagsCmp(0x00, 0x01, 0xFF, Byte)
	assert.True(t, c.flag(flagX), "CMP must not affect X")
	assert.True(t, c.flag(flagC))
}

func TestSetFlagsLogicalClearsVC(t *testing.T) {
	c := New(NewFlatBus())
	c.setFlag(flagV, true)
	c.setFlag(flagC, true)

	c.setFlagsLogical(0, Word)
	assert.False(t, c.flag(flagV))
	assert.False(t, c.flag(flagC))
	assert.True(t, c.flag(flagZ))
}

func TestTestConditionTable(t *testing.T) {
	c := New(NewFlatBus())
	c.setFlag(flagZ, true)
	assert.True(t, c.testCondition(0x7)) // EQ
	assert.False(t, c.testCondition(0x6)) // NE

	c.setFlag(flagZ, false)
	c.setFlag(flagN, true)
	c.setFlag(flagV, false)
	assert.True(t, c.testCondition(0xD)) // LT: N != V
	assert.False(t, c.testCondition(0xC)) // GE
}
