package m68k

func init() {
	handlers[TagClrByte] = opClr(Byte)
	handlers[TagClrWord] = opClr(Word)
	handlers[TagClrLong] = opClr(Long)
	handlers[TagTstByte] = opTst(Byte)
	handlers[TagTstWord] = opTst(Word)
	handlers[TagTstLong] = opTst(Long)

	handlers[TagCmpByte] = opCmp(Byte)
	handlers[TagCmpWord] = opCmp(Word)
	handlers[TagCmpLong] = opCmp(Long)
	handlers[TagCmpiByte] = opCmpi(Byte)
	handlers[TagCmpiWord] = opCmpi(Word)
	handlers[TagCmpaLong] = opCmpa
	handlers[TagCmpmByte] = opCmpm

	handlers[TagAddByte] = opAdd(Byte)
	handlers[TagAddWord] = opAdd(Word)
	handlers[TagAddLong] = opAdd(Long)
	handlers[TagAddiByte] = opAddi(Byte)
	handlers[TagAddiWord] = opAddi(Word)
	handlers[TagAddaLong] = opAdda
	handlers[TagAddqByte] = opAddq(Byte)
	handlers[TagAddqWord] = opAddq(Word)
	handlers[TagAddqLong] = opAddq(Long)

	handlers[TagSubByte] = opSub(Byte)
	handlers[TagSubWord] = opSub(Word)
	handlers[TagSubiByte] = opSubi(Byte)
	handlers[TagSubaLong] = opSuba
	handlers[TagSubqWord] = opSubq(Word)
	handlers[TagSubqLong] = opSubq(Long)

	handlers[TagMuluWord] = opMulu
}

// opClr implements CLR: <ea> <- 0. Still touches the bus with a read-modify
// write pattern is unnecessary here; CLR only writes. Sets Z, clears NVC.
func opClr(sz Size) opFunc {
	return func(c *CPU) {
		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)
		dst := c.resolveEA(mode, reg, sz)
		dst.write(c, sz, 0)
		c.setFlagsLogical(0, sz)
	}
}

// opTst implements TST <ea>: read-only comparison against zero.
func opTst(sz Size) opFunc {
	return func(c *CPU) {
		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)
		src := c.resolveEA(mode, reg, sz)
		c.setFlagsTst(src.read(c, sz), sz)
	}
}

// opCmp implements CMP <ea>,Dn: Dn - <ea>, result discarded.
func opCmp(sz Size) opFunc {
	return func(c *CPU) {
		reg := regField(c.ir, 9)
		mode := modeField(c.ir, 3)
		srcReg := regField(c.ir, 0)
		src := c.resolveEA(mode, srcReg, sz)

		a := c.reg.D[reg] & sz.Mask()
		b := src.read(c, sz)
		result := (a - b) & sz.Mask()
		c.setFlagsCmp(a, b, result, sz)
	}
}

// opCmpi implements CMPI #imm,<ea>.
func opCmpi(sz Size) opFunc {
	return func(c *CPU) {
		var imm uint32
		if sz == Byte {
			imm = uint32(c.fetchPC() & 0xFF)
		} else {
			imm = uint32(c.fetchPC())
		}
		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)
		dst := c.resolveEA(mode, reg, sz)

		b := dst.read(c, sz)
		result := (b - imm) & sz.Mask()
		c.setFlagsCmp(b, imm, result, sz)
	}
}

// opCmpa implements CMPA.L <ea>,An: An - <ea>, long only in this core.
func opCmpa(c *CPU) {
	an := regField(c.ir, 9)
	mode := modeField(c.ir, 3)
	reg := regField(c.ir, 0)
	src := c.resolveEA(mode, reg, Long)

	a := c.reg.A[an]
	b := src.read(c, Long)
	result := a - b
	c.setFlagsCmp(a, b, result, Long)
}

// opCmpm implements CMPM.B (Ay)+,(Ax)+: the one compare whose both operands
// are memory, both walked by postincrement.
func opCmpm(c *CPU) {
	ax := regField(c.ir, 9)
	ay := regField(c.ir, 0)

	srcEA := c.resolveEA(3, ay, Byte)
	src := srcEA.read(c, Byte)
	dstEA := c.resolveEA(3, ax, Byte)
	dst := dstEA.read(c, Byte)

	result := (dst - src) & Byte.Mask()
	c.setFlagsCmp(dst, src, result, Byte)
}

// opAdd implements ADD <ea>,Dn. The decode table only claims the opmode
// forms with the direction bit clear (<ea>,Dn); the Dn,<ea> (memory
// destination) direction is not wired into any tag and so decodes as
// TagUnknown.
func opAdd(sz Size) opFunc {
	return func(c *CPU) {
		reg := regField(c.ir, 9)
		mode := modeField(c.ir, 3)
		srcReg := regField(c.ir, 0)
		src := c.resolveEA(mode, srcReg, sz)

		a := c.reg.D[reg] & sz.Mask()
		b := src.read(c, sz)
		result := (a + b) & sz.Mask()
		c.setFlagsAdd(a, b, result, sz)

		dst := ea{kind: eaDataReg, reg: reg}
		dst.write(c, sz, result)
	}
}

func opAddi(sz Size) opFunc {
	return func(c *CPU) {
		var imm uint32
		if sz == Byte {
			imm = uint32(c.fetchPC() & 0xFF)
		} else {
			imm = uint32(c.fetchPC())
		}
		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)
		dst := c.resolveEA(mode, reg, sz)

		b := dst.read(c, sz)
		result := (imm + b) & sz.Mask()
		c.setFlagsAdd(imm, b, result, sz)
		dst.write(c, sz, result)
	}
}

// opAdda implements ADDA.L <ea>,An. An is updated unconditionally and
// flags are never affected, per the architecture's address-arithmetic rule.
func opAdda(c *CPU) {
	an := regField(c.ir, 9)
	mode := modeField(c.ir, 3)
	reg := regField(c.ir, 0)
	src := c.resolveEA(mode, reg, Long)
	c.reg.A[an] += src.read(c, Long)
}

// opAddq implements ADDQ #<1-8>,<ea>. An immediate quick-data destination
// that is an address register updates the full 32-bit register and does
// not affect flags, mirroring ADDA; any other destination affects flags
// normally.
func opAddq(sz Size) opFunc {
	return func(c *CPU) {
		data := quickData(c.ir, 9)
		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)
		dst := c.resolveEA(mode, reg, sz)

		if dst.kind == eaAddrReg {
			c.reg.A[reg] += data
			return
		}

		b := dst.read(c, sz)
		result := (data + b) & sz.Mask()
		c.setFlagsAdd(data, b, result, sz)
		dst.write(c, sz, result)
	}
}

func opSub(sz Size) opFunc {
	return func(c *CPU) {
		reg := regField(c.ir, 9)
		mode := modeField(c.ir, 3)
		srcReg := regField(c.ir, 0)
		src := c.resolveEA(mode, srcReg, sz)

		a := c.reg.D[reg] & sz.Mask()
		b := src.read(c, sz)
		result := (a - b) & sz.Mask()
		c.setFlagsSub(a, b, result, sz)

		dst := ea{kind: eaDataReg, reg: reg}
		dst.write(c, sz, result)
	}
}

func opSubi(sz Size) opFunc {
	return func(c *CPU) {
		var imm uint32
		if sz == Byte {
			imm = uint32(c.fetchPC() & 0xFF)
		} else {
			imm = uint32(c.fetchPC())
		}
		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)
		dst := c.resolveEA(mode, reg, sz)

		b := dst.read(c, sz)
		result := (b - imm) & sz.Mask()
		c.setFlagsSub(b, imm, result, sz)
		dst.write(c, sz, result)
	}
}

func opSuba(c *CPU) {
	an := regField(c.ir, 9)
	mode := modeField(c.ir, 3)
	reg := regField(c.ir, 0)
	src := c.resolveEA(mode, reg, Long)
	c.reg.A[an] -= src.read(c, Long)
}

func opSubq(sz Size) opFunc {
	return func(c *CPU) {
		data := quickData(c.ir, 9)
		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)
		dst := c.resolveEA(mode, reg, sz)

		if dst.kind == eaAddrReg {
			c.reg.A[reg] -= data
			return
		}

		b := dst.read(c, sz)
		result := (b - data) & sz.Mask()
		c.setFlagsSub(b, data, result, sz)
		dst.write(c, sz, result)
	}
}

// opMulu implements MULU.W <ea>,Dn: 16x16 unsigned multiply producing a
// 32-bit result. Clears C and V, sets NZ from the 32-bit product.
func opMulu(c *CPU) {
	reg := regField(c.ir, 9)
	mode := modeField(c.ir, 3)
	srcReg := regField(c.ir, 0)
	src := c.resolveEA(mode, srcReg, Word)

	a := c.reg.D[reg] & 0xFFFF
	b := src.read(c, Word) & 0xFFFF
	result := a * b

	c.reg.D[reg] = result
	c.setFlagsLogical(result, Long)
}
