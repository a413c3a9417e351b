package m68k

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetLoadsStackPointerAndPCFromVectors(t *testing.T) {
	bus := NewFlatBus()
	write32(bus, 0, 0x00104000)
	write32(bus, 4, 0x00001000)

	c := New(bus)
	assert.EqualValues(t, 0x00104000, c.Registers().A[7])
	assert.EqualValues(t, 0x00001000, c.Registers().PC)
}

func TestStepMoveqThenAddSetsRegisterAndFlags(t *testing.T) {
	bus := NewFlatBus()
	write32(bus, 0, 0x1000) // SP
	write32(bus, 4, 0x2000) // PC
	write16(bus, 0x2000, 0x7005)       // moveq #5,D0
	write16(bus, 0x2002, 0x7203)       // moveq #3,D1
	write16(bus, 0x2004, 0xD081) // add.l D1,D0

	c := New(bus)
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	require.NoError(t, c.Step())

	assert.EqualValues(t, 8, c.Registers().D[0])
	assert.False(t, c.flag(flagZ))
	assert.False(t, c.flag(flagN))
}

func TestStepUnknownOpcodeReturnsFault(t *testing.T) {
	bus := NewFlatBus()
	write32(bus, 0, 0x1000)
	write32(bus, 4, 0x2000)
	write16(bus, 0x2000, 0xFFFF)

	c := New(bus)
	err := c.Step()
	require.Error(t, err)

	var f *Fault
	require.ErrorAs(t, err, &f)
	assert.Equal(t, FaultUnknownOpcode, f.Kind)
	assert.EqualValues(t, 0x2000, f.PC)
}

func TestBranchTakenAndNotTaken(t *testing.T) {
	bus := NewFlatBus()
	write32(bus, 0, 0x1000)
	write32(bus, 4, 0x2000)
	write16(bus, 0x2000, 0x4200) // clr.b D0 -> sets Z
	write16(bus, 0x2002, 0x6702) // beq +2 -> target 0x2006
	write16(bus, 0x2004, 0x7A2A) // moveq #42,D5 (should be skipped)
	write16(bus, 0x2006, 0x7001) // moveq #1,D0 -> clears Z
	write16(bus, 0x2008, 0x6702) // beq +2 (not taken, falls through to 0x200A)

	c := New(bus)
	require.NoError(t, c.Step()) // clr.b D0
	require.NoError(t, c.Step()) // beq taken
	assert.EqualValues(t, 0x2006, c.Registers().PC)
	require.NoError(t, c.Step()) // moveq #1,D0
	assert.EqualValues(t, 1, c.Registers().D[0])
	assert.EqualValues(t, 0, c.Registers().D[5])
	require.NoError(t, c.Step()) // beq not taken
	assert.EqualValues(t, 0x200A, c.Registers().PC)
}

func TestDbraLoopsUntilExhausted(t *testing.T) {
	bus := NewFlatBus()
	write32(bus, 0, 0x1000)
	write32(bus, 4, 0x2000)
	write16(bus, 0x2000, 0x7003) // moveq #3,D0
	write16(bus, 0x2002, 0x5241) // addq.w #1,D1
	write16(bus, 0x2004, 0x51C8) // dbra D0,<disp>
	write16(bus, 0x2006, 0xFFFC) // disp -4, branches back to 0x2002

	c := New(bus)
	require.NoError(t, c.Step()) // moveq
	for i := 0; i < 4; i++ {
		require.NoError(t, c.Step()) // addq
		require.NoError(t, c.Step()) // dbra
	}
	assert.EqualValues(t, 0x2008, c.Registers().PC)
	assert.EqualValues(t, 4, c.Registers().D[1])
	assert.EqualValues(t, 0xFFFF, c.Registers().D[0]&0xFFFF)
}

func TestBsrAndRtsRoundTrip(t *testing.T) {
	bus := NewFlatBus()
	write32(bus, 0, 0x9000)
	write32(bus, 4, 0x2000)
	write16(bus, 0x2000, 0x6102) // bsr.b +2 -> call 0x2004
	write16(bus, 0x2002, 0x7A07) // moveq #7,D5 (after return)
	write16(bus, 0x2004, 0x7C09) // moveq #9,D6 (subroutine body)
	write16(bus, 0x2006, 0x4E75) // rts

	c := New(bus)
	require.NoError(t, c.Step()) // bsr
	assert.EqualValues(t, 0x2004, c.Registers().PC)
	require.NoError(t, c.Step()) // moveq #9,D6
	require.NoError(t, c.Step()) // rts
	assert.EqualValues(t, 0x2002, c.Registers().PC)
	require.NoError(t, c.Step()) // moveq #7,D5
	assert.EqualValues(t, 9, c.Registers().D[6])
	assert.EqualValues(t, 7, c.Registers().D[5])
}

func TestMovemStoreAndReload(t *testing.T) {
	bus := NewFlatBus()
	write32(bus, 0, 0x3000)
	write32(bus, 4, 0x2000)
	write16(bus, 0x2000, 0x48E0) // movem.l D0-D1,-(A0) ... register mask follows
	write16(bus, 0x2002, 0xC000) // predecrement mask: bit15=D0, bit14=D1
	write16(bus, 0x2004, 0x4CD8) // movem.l (A0)+,D2-D3
	write16(bus, 0x2006, 0x000C) // mask: D2,D3

	c := New(bus)
	c.SetState(Registers{
		D:  [8]uint32{0x11111111, 0x22222222},
		A:  [8]uint32{0x5000},
		PC: 0x2000,
	})

	require.NoError(t, c.Step()) // movem to mem
	assert.EqualValues(t, 0x4FF8, c.Registers().A[0])

	require.NoError(t, c.Step()) // movem to reg
	assert.EqualValues(t, 0x5000, c.Registers().A[0])
	assert.EqualValues(t, 0x11111111, c.Registers().D[2])
	assert.EqualValues(t, 0x22222222, c.Registers().D[3])
}
