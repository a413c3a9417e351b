package m68k

func init() {
	handlers[TagAslImByte] = opAslIm(Byte)
	handlers[TagAslImWord] = opAslIm(Word)
	handlers[TagAslImLong] = opAslIm(Long)
	handlers[TagLsrImByte] = opLsrIm(Byte)
	handlers[TagLsrImWord] = opLsrIm(Word)
	handlers[TagLslImWord] = opLslIm
	handlers[TagRorImWord] = opRorIm(Word)
	handlers[TagRorImLong] = opRorIm(Long)
	handlers[TagRolWord] = opRolWord
	handlers[TagRolImByte] = opRolImByte
	handlers[TagExtWord] = opExtWord
}

// opAslIm implements ASL #<1-8>,Dn: arithmetic shift left. V is set if the
// operand's sign bit changes value at any point during the shift, not just
// at the end — the classic ASL overflow rule. X and C both take the last
// bit shifted out of the MSB.
func opAslIm(sz Size) opFunc {
	return func(c *CPU) {
		count := quickData(c.ir, 9)
		reg := regField(c.ir, 0)
		v := c.reg.D[reg] & sz.Mask()

		msb := sz.MSB()
		origSign := v&msb != 0
		var carry bool
		overflow := false
		for i := uint32(0); i < count; i++ {
			carry = v&msb != 0
			v = (v << 1) & sz.Mask()
			if (v&msb != 0) != origSign {
				overflow = true
			}
		}

		c.reg.D[reg] = (c.reg.D[reg] &^ sz.Mask()) | v
		c.setFlag(flagC, carry)
		c.setFlag(flagX, carry)
		c.setFlag(flagV, overflow)
		c.setFlag(flagZ, v == 0)
		c.setFlag(flagN, signBit(v, sz))
	}
}

// opLsrIm implements LSR #<1-8>,Dn: logical shift right, zero-filled.
func opLsrIm(sz Size) opFunc {
	return func(c *CPU) {
		count := quickData(c.ir, 9)
		reg := regField(c.ir, 0)
		v := c.reg.D[reg] & sz.Mask()

		var carry bool
		for i := uint32(0); i < count; i++ {
			carry = v&1 != 0
			v >>= 1
		}

		c.reg.D[reg] = (c.reg.D[reg] &^ sz.Mask()) | v
		c.setFlag(flagC, carry)
		c.setFlag(flagX, carry)
		c.setFlag(flagV, false)
		c.setFlag(flagZ, v == 0)
		c.setFlag(flagN, signBit(v, sz))
	}
}

// opLslIm implements LSL.W #<1-8>,Dn: logical shift left, zero-filled, V
// always cleared (unlike ASL).
func opLslIm(c *CPU) {
	count := quickData(c.ir, 9)
	reg := regField(c.ir, 0)
	v := c.reg.D[reg] & Word.Mask()

	var carry bool
	for i := uint32(0); i < count; i++ {
		carry = v&Word.MSB() != 0
		v = (v << 1) & Word.Mask()
	}

	c.reg.D[reg] = (c.reg.D[reg] &^ Word.Mask()) | v
	c.setFlag(flagC, carry)
	c.setFlag(flagX, carry)
	c.setFlag(flagV, false)
	c.setFlag(flagZ, v == 0)
	c.setFlag(flagN, signBit(v, Word))
}

// opRorIm implements ROR #<1-8>,Dn: rotate right, not through X. C takes
// the last bit rotated into the MSB.
func opRorIm(sz Size) opFunc {
	return func(c *CPU) {
		count := quickData(c.ir, 9) % uint32(sz.Bits())
		reg := regField(c.ir, 0)
		v := c.reg.D[reg] & sz.Mask()

		bits := sz.Bits()
		var carry bool
		for i := uint32(0); i < count; i++ {
			carry = v&1 != 0
			v = ((v >> 1) | (v << (bits - 1))) & sz.Mask()
		}
		if count == 0 {
			carry = false
		}

		c.reg.D[reg] = (c.reg.D[reg] &^ sz.Mask()) | v
		c.setFlag(flagC, carry)
		c.setFlag(flagV, false)
		c.setFlag(flagZ, v == 0)
		c.setFlag(flagN, signBit(v, sz))
	}
}

// opRolWord implements ROL.W Dy,Dx: rotate left by a register-supplied
// count, taken modulo 64 by the architecture and reduced modulo the
// operand width here since a full-width rotation is a no-op.
func opRolWord(c *CPU) {
	countReg := regField(c.ir, 9)
	reg := regField(c.ir, 0)
	count := (c.reg.D[countReg] % 64) % uint32(Word.Bits())
	v := c.reg.D[reg] & Word.Mask()

	bits := Word.Bits()
	var carry bool
	for i := uint32(0); i < count; i++ {
		carry = v&Word.MSB() != 0
		v = ((v << 1) | (v >> (bits - 1))) & Word.Mask()
	}
	if count == 0 {
		carry = false
	}

	c.reg.D[reg] = (c.reg.D[reg] &^ Word.Mask()) | v
	c.setFlag(flagC, carry)
	c.setFlag(flagV, false)
	c.setFlag(flagZ, v == 0)
	c.setFlag(flagN, signBit(v, Word))
}

// opRolImByte implements ROL.B #<1-8>,Dn.
func opRolImByte(c *CPU) {
	count := quickData(c.ir, 9)
	reg := regField(c.ir, 0)
	v := c.reg.D[reg] & Byte.Mask()

	bits := Byte.Bits()
	var carry bool
	for i := uint32(0); i < count; i++ {
		carry = v&Byte.MSB() != 0
		v = ((v << 1) | (v >> (bits - 1))) & Byte.Mask()
	}

	c.reg.D[reg] = (c.reg.D[reg] &^ Byte.Mask()) | v
	c.setFlag(flagC, carry)
	c.setFlag(flagV, false)
	c.setFlag(flagZ, v == 0)
	c.setFlag(flagN, signBit(v, Byte))
}

// opExtWord implements EXT.W Dn: sign-extend the low byte into the low
// word, leaving the upper word of the register untouched.
func opExtWord(c *CPU) {
	reg := regField(c.ir, 0)
	v := uint32(int32(int8(c.reg.D[reg])))
	c.reg.D[reg] = (c.reg.D[reg] &^ Word.Mask()) | (v & Word.Mask())
	c.setFlagsLogical(v, Word)
}
