package m68k

func init() {
	handlers[TagMoveByte] = opMove(Byte)
	handlers[TagMoveWord] = opMove(Word)
	handlers[TagMoveLong] = opMove(Long)
	handlers[TagMoveQ] = opMoveQ
	handlers[TagMovemToMem] = opMovemToMem
	handlers[TagMovemToReg] = opMovemToReg
	handlers[TagMoveToSR] = opMoveToSR
	handlers[TagMoveFromSR] = opMoveFromSR
	handlers[TagMoveToSRImm] = opMoveToSRImm
	handlers[TagLeaDirect] = opLea
	handlers[TagLeaOffset] = opLea
	handlers[TagLeaOffsetD] = opLea
	handlers[TagLeaOffsetPC] = opLea
	handlers[TagSwap] = opSwap
}

// opMove implements MOVE.{b,w,l} <ea>,<ea>: 00 ss DDD MMM mmm rrr, where the
// destination (reg,mode) field precedes the source (mode,reg) field in the
// word — the one instruction whose EA fields aren't in (mode,reg) order for
// both operands. Sets NZ, clears VC, leaves X.
func opMove(sz Size) opFunc {
	return func(c *CPU) {
		destMode := modeField(c.ir, 6)
		destReg := regField(c.ir, 9)
		srcMode := modeField(c.ir, 3)
		srcReg := regField(c.ir, 0)

		src := c.resolveEA(srcMode, srcReg, sz)
		val := src.read(c, sz)
		dst := c.resolveEA(destMode, destReg, sz)
		dst.write(c, sz, val)

		c.setFlagsLogical(val, sz)
	}
}

// opMoveQ implements MOVEQ #data,Dn: 0111 rrr 0 dddddddd. The 8-bit
// immediate sign-extends into the full 32-bit register.
func opMoveQ(c *CPU) {
	reg := regField(c.ir, 9)
	data := uint32(int32(int8(c.ir)))
	c.reg.D[reg] = data
	c.setFlagsLogical(data, Long)
}

// movemMask walks a 16-bit MOVEM register-select mask, calling fn with each
// selected register's slot: bit 0=D0..7=D7,8=A0..15=A7 for every EA mode
// except predecrement, where the mapping is reversed (bit 0=A7..15=D0).
// Bits are visited from 0 upward, so in predecrement mode registers are
// reported A7 first and D0 last, matching descending memory addresses.
func movemMask(mask uint16, predecrement bool, fn func(isAddr bool, reg uint8)) {
	for bit := 0; bit < 16; bit++ {
		var slot int
		if predecrement {
			slot = 15 - bit
		} else {
			slot = bit
		}
		if mask&(1<<bit) == 0 {
			continue
		}
		fn(slot >= 8, uint8(slot&7))
	}
}

// opMovemToMem implements MOVEM.L <register list>,-(An). Registers are
// stored in descending memory order as the predecrement address register
// is walked down by 4 for each one selected.
func opMovemToMem(c *CPU) {
	an := regField(c.ir, 0)
	mask := c.fetchPC()

	movemMask(mask, true, func(isAddr bool, reg uint8) {
		c.reg.A[an] -= 4
		var v uint32
		if isAddr {
			v = c.reg.A[reg]
		} else {
			v = c.reg.D[reg]
		}
		write32(c.bus, c.reg.A[an], v)
	})
}

// opMovemToReg implements MOVEM.L (An)+,<register list>. Registers load in
// ascending memory order as An is walked up by 4 for each one selected.
func opMovemToReg(c *CPU) {
	an := regField(c.ir, 0)
	mask := c.fetchPC()

	movemMask(mask, false, func(isAddr bool, reg uint8) {
		v := read32(c.bus, c.reg.A[an])
		c.reg.A[an] += 4
		if isAddr {
			c.reg.A[reg] = v
		} else {
			c.reg.D[reg] = v
		}
	})
}

// opMoveFromSR implements MOVE SR,<ea> (word, no flags affected).
func opMoveFromSR(c *CPU) {
	mode := modeField(c.ir, 3)
	reg := regField(c.ir, 0)
	dst := c.resolveEA(mode, reg, Word)
	dst.write(c, Word, uint32(c.reg.SR))
}

// opMoveToSR implements MOVE <ea>,SR (word, no supervisor check: this core
// has no user/supervisor distinction).
func opMoveToSR(c *CPU) {
	mode := modeField(c.ir, 3)
	reg := regField(c.ir, 0)
	src := c.resolveEA(mode, reg, Word)
	c.reg.SR = uint16(src.read(c, Word))
}

// opMoveToSRImm implements the fixed-encoding MOVE #imm,SR singleton.
func opMoveToSRImm(c *CPU) {
	c.reg.SR = c.fetchPC()
}

// opLea implements LEA <ea>,An for every addressing sub-form this core
// supports: the destination is always the address register in bits 11-9,
// the source's (mode,reg) field is decoded generically and resolveEA
// already faults on unsupported sub-forms.
func opLea(c *CPU) {
	an := regField(c.ir, 9)
	mode := modeField(c.ir, 3)
	reg := regField(c.ir, 0)
	src := c.resolveEA(mode, reg, Long)
	if src.kind != eaMemory {
		c.fault(FaultUnsupportedMode, "LEA source did not resolve to a memory address")
	}
	c.reg.A[an] = src.address()
}

// opSwap implements SWAP Dn: exchange the high and low 16-bit halves.
func opSwap(c *CPU) {
	reg := regField(c.ir, 0)
	v := c.reg.D[reg]
	c.reg.D[reg] = v<<16 | v>>16
	c.setFlagsLogical(c.reg.D[reg], Long)
}
