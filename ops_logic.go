package m68k

func init() {
	handlers[TagAndByte] = opAnd(Byte)
	handlers[TagAndWord] = opAnd(Word)
	handlers[TagAndLong] = opAnd(Long)
	handlers[TagAndiWord] = opAndi(Word)

	handlers[TagOrByte] = opOr(Byte)
	handlers[TagOrWord] = opOr(Word)
	handlers[TagOriByte] = opOri(Byte)
	handlers[TagOriWord] = opOri(Word)

	handlers[TagEorByte] = opEor
	handlers[TagEoriByte] = opEori(Byte)
	handlers[TagEoriWord] = opEori(Word)
}

// opAnd implements AND <ea>,Dn. Like ADD, only the EA->Dn direction is
// wired into the decode table; AND Dn,<ea> decodes as TagUnknown.
func opAnd(sz Size) opFunc {
	return func(c *CPU) {
		reg := regField(c.ir, 9)
		mode := modeField(c.ir, 3)
		srcReg := regField(c.ir, 0)
		src := c.resolveEA(mode, srcReg, sz)

		result := (c.reg.D[reg] & src.read(c, sz)) & sz.Mask()
		dst := ea{kind: eaDataReg, reg: reg}
		dst.write(c, sz, result)
		c.setFlagsLogical(result, sz)
	}
}

func opAndi(sz Size) opFunc {
	return func(c *CPU) {
		imm := immediateFor(c, sz)
		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)
		dst := c.resolveEA(mode, reg, sz)

		result := (dst.read(c, sz) & imm) & sz.Mask()
		dst.write(c, sz, result)
		c.setFlagsLogical(result, sz)
	}
}

func opOr(sz Size) opFunc {
	return func(c *CPU) {
		reg := regField(c.ir, 9)
		mode := modeField(c.ir, 3)
		srcReg := regField(c.ir, 0)
		src := c.resolveEA(mode, srcReg, sz)

		result := (c.reg.D[reg] | src.read(c, sz)) & sz.Mask()
		dst := ea{kind: eaDataReg, reg: reg}
		dst.write(c, sz, result)
		c.setFlagsLogical(result, sz)
	}
}

func opOri(sz Size) opFunc {
	return func(c *CPU) {
		imm := immediateFor(c, sz)
		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)
		dst := c.resolveEA(mode, reg, sz)

		result := (dst.read(c, sz) | imm) & sz.Mask()
		dst.write(c, sz, result)
		c.setFlagsLogical(result, sz)
	}
}

// opEor implements EOR Dn,<ea>: unlike AND/OR, EOR has no EA->Dn form, so
// the register field is always the source and <ea> is always the
// destination.
func opEor(c *CPU) {
	reg := regField(c.ir, 9)
	mode := modeField(c.ir, 3)
	dstReg := regField(c.ir, 0)
	dst := c.resolveEA(mode, dstReg, Byte)

	result := (dst.read(c, Byte) ^ c.reg.D[reg]) & Byte.Mask()
	dst.write(c, Byte, result)
	c.setFlagsLogical(result, Byte)
}

func opEori(sz Size) opFunc {
	return func(c *CPU) {
		imm := immediateFor(c, sz)
		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)
		dst := c.resolveEA(mode, reg, sz)

		result := (dst.read(c, sz) ^ imm) & sz.Mask()
		dst.write(c, sz, result)
		c.setFlagsLogical(result, sz)
	}
}

// immediateFor fetches an immediate operand of the given size from the
// instruction stream, used by the ANDI/ORI/EORI families.
func immediateFor(c *CPU, sz Size) uint32 {
	if sz == Byte {
		return uint32(c.fetchPC() & 0xFF)
	}
	if sz == Word {
		return uint32(c.fetchPC())
	}
	return c.fetchPCLong()
}
