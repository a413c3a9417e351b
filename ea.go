package m68k

// EA mode-class constants, used by the ea descriptor's kind field.
const (
	eaDataReg   uint8 = iota // Dn direct
	eaAddrReg                // An direct
	eaMemory                 // any memory-resolved address
	eaImmediate              // #imm
)

// ea is a resolved effective-address operand: a (mode, register) pair with
// any extension words already consumed. Resolving once and acting on the
// descriptor twice (read, then write) is this core's answer to the
// classic 68000 interpreter problem of read-modify-write operands sharing
// one set of extension words — equivalent to, but simpler than, a separate
// "_no_adv" read variant that re-fetches the same words for the write.
type ea struct {
	kind uint8
	reg  uint8
	addr uint32
	imm  uint32
}

// read returns the value at this effective address for the given size.
func (e ea) read(c *CPU, sz Size) uint32 {
	switch e.kind {
	case eaDataReg:
		return c.reg.D[e.reg] & sz.Mask()
	case eaAddrReg:
		return c.reg.A[e.reg] & sz.Mask()
	case eaMemory:
		return readSize(c.bus, sz, e.addr)
	case eaImmediate:
		return e.imm & sz.Mask()
	}
	return 0
}

// write stores val at this effective address. Data-register writes
// preserve the register's unaffected upper bits (I3). Address-register
// long writes replace all 32 bits; address-register *word* writes replace
// only the low 16 bits, leaving the upper half untouched — this is a
// deliberate deviation from the MC68000's MOVEA rule (which sign-extends
// the word into all 32 bits), carried over unchanged from the source this
// core is modeled on. See SPEC_FULL.md / DESIGN.md.
func (e ea) write(c *CPU, sz Size, val uint32) {
	switch e.kind {
	case eaDataReg:
		mask := sz.Mask()
		c.reg.D[e.reg] = (c.reg.D[e.reg] &^ mask) | (val & mask)
	case eaAddrReg:
		if sz == Long {
			c.reg.A[e.reg] = val
		} else {
			c.reg.A[e.reg] = (c.reg.A[e.reg] &^ 0xFFFF) | (val & 0xFFFF)
		}
	case eaMemory:
		writeSize(c.bus, sz, e.addr, val)
	}
}

// address returns the resolved memory address. Only meaningful for
// eaMemory descriptors; used by LEA.
func (e ea) address() uint32 {
	return e.addr
}

// resolveEA decodes an EA from its 3-bit mode and 3-bit register fields,
// fetching any extension words from the instruction stream (advancing PC)
// as each mode requires. mode/reg follow the standard bit-5..3 / bit-2..0
// split of an EA field.
func (c *CPU) resolveEA(mode, reg uint8, sz Size) ea {
	switch mode {
	case 0: // Dn
		return ea{kind: eaDataReg, reg: reg}

	case 1: // An
		return ea{kind: eaAddrReg, reg: reg}

	case 2: // (An)
		return ea{kind: eaMemory, addr: c.reg.A[reg]}

	case 3: // (An)+
		addr := c.reg.A[reg]
		c.reg.A[reg] += uint32(sz)
		return ea{kind: eaMemory, addr: addr}

	case 4: // -(An)
		c.reg.A[reg] -= uint32(sz)
		return ea{kind: eaMemory, addr: c.reg.A[reg]}

	case 5: // (d16,An)
		disp := int32(int16(c.fetchPC()))
		return ea{kind: eaMemory, addr: uint32(int32(c.reg.A[reg]) + disp)}

	case 6: // (d8,An,Xn.w/l) - brief extension word only
		ext := c.fetchPC()
		if ext&0x0100 != 0 {
			c.fault(FaultUnsupportedMode, "full/memory-indirect indexed addressing is not supported")
		}
		return ea{kind: eaMemory, addr: c.calcIndex(c.reg.A[reg], ext)}

	case 7:
		switch reg {
		case 1: // (xxx).L
			addr := c.fetchPCLong()
			return ea{kind: eaMemory, addr: addr}

		case 2: // (d16,PC) - PC is the value after fetching the displacement
			pc := c.reg.PC
			disp := int32(int16(c.fetchPC()))
			return ea{kind: eaMemory, addr: uint32(int32(pc) + disp)}

		case 4: // #imm
			switch sz {
			case Byte:
				return ea{kind: eaImmediate, imm: uint32(c.fetchPC() & 0xFF)}
			case Word:
				return ea{kind: eaImmediate, imm: uint32(c.fetchPC())}
			default:
				return ea{kind: eaImmediate, imm: c.fetchPCLong()}
			}
		}
	}

	c.fault(FaultUnsupportedMode, "unsupported (mode, reg) combination in effective-address field")
	return ea{}
}

// calcIndex computes a base + d8(Xn) indexed address from a brief extension
// word. Layout: bit15 D/A, bits14-12 Xn, bit11 W/L, bits7-0 signed d8.
func (c *CPU) calcIndex(base uint32, ext uint16) uint32 {
	xn := (ext >> 12) & 7
	var idx int32
	if ext&0x8000 != 0 {
		idx = int32(c.reg.A[xn])
	} else {
		idx = int32(c.reg.D[xn])
	}
	if ext&0x0800 == 0 {
		idx = int32(int16(idx)) // sign-extend the word half
	}
	disp := int32(int8(ext & 0xFF))
	return uint32(int32(base) + idx + disp)
}
