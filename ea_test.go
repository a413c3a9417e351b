package m68k

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEAPostIncrementAdvancesByOperandSize(t *testing.T) {
	bus := NewFlatBus()
	c := New(bus)
	c.reg.A[0] = 0x1000

	e := c.resolveEA(3, 0, Long)
	require.Equal(t, eaMemory, e.kind)
	assert.EqualValues(t, 0x1000, e.addr)
	assert.EqualValues(t, 0x1004, c.reg.A[0])
}

func TestResolveEAPreDecrementSubtractsFirst(t *testing.T) {
	bus := NewFlatBus()
	c := New(bus)
	c.reg.A[0] = 0x1000

	e := c.resolveEA(4, 0, Word)
	assert.EqualValues(t, 0x0FFE, e.addr)
	assert.EqualValues(t, 0x0FFE, c.reg.A[0])
}

func TestResolveEADisplacement(t *testing.T) {
	bus := NewFlatBus()
	write16(bus, 0, 0xFFF0) // -16
	c := New(bus)
	c.SetPC(0)
	c.reg.A[3] = 0x2000

	e := c.resolveEA(5, 3, Word)
	assert.EqualValues(t, 0x1FF0, e.addr)
	assert.EqualValues(t, 2, c.reg.PC)
}

func TestResolveEAImmediateWord(t *testing.T) {
	bus := NewFlatBus()
	write16(bus, 0, 0x1234)
	c := New(bus)
	c.SetPC(0)

	e := c.resolveEA(7, 4, Word)
	assert.EqualValues(t, 0x1234, e.read(c, Word))
}

func TestEAWriteAddrRegWordPreservesUpperHalf(t *testing.T) {
	c := New(NewFlatBus())
	c.reg.A[2] = 0xAAAA0000

	e := ea{kind: eaAddrReg, reg: 2}
	e.write(c, Word, 0x1234)
	assert.EqualValues(t, 0xAAAA1234, c.reg.A[2], "MOVEA word write must not sign-extend or touch the upper half")
}

func TestEAWriteDataRegPreservesUntouchedBits(t *testing.T) {
	c := New(NewFlatBus())
	c.reg.D[1] = 0xAABBCCDD

	e := ea{kind: eaDataReg, reg: 1}
	e.write(c, Byte, 0xFF)
	assert.EqualValues(t, 0xAABBCCFF, c.reg.D[1])
}

func TestResolveEAIndexedBriefFaultsOnFullExtension(t *testing.T) {
	bus := NewFlatBus()
	write16(bus, 0, 0x0100) // bit8 set -> full/memory-indirect form
	c := New(bus)
	c.SetPC(0)

	var f *Fault
	func() {
		defer func() {
			if r := recover(); r != nil {
				f = r.(*Fault)
			}
		}()
		c.resolveEA(6, 0, Word)
	}()
	require.NotNil(t, f)
	assert.Equal(t, FaultUnsupportedMode, f.Kind)
}
