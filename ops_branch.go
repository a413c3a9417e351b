package m68k

func init() {
	handlers[TagBra] = opBranchAlways
	handlers[TagBsr] = opBsr
	handlers[TagBcc] = opBranchIf(0x4)
	handlers[TagBcs] = opBranchIf(0x5)
	handlers[TagBne] = opBranchIf(0x6)
	handlers[TagBeq] = opBranchIf(0x7)
	handlers[TagBpl] = opBranchIf(0xA)
	handlers[TagBmi] = opBranchIf(0xB)
	handlers[TagBge] = opBranchIf(0xC)
	handlers[TagBlt] = opBranchIf(0xD)
	handlers[TagBgt] = opBranchIf(0xE)
	handlers[TagBle] = opBranchIf(0xF)
	handlers[TagDbra] = opDbra
	handlers[TagJsrA] = opJsrA
	handlers[TagRts] = opRts
	handlers[TagRte] = opRte
	handlers[TagTrap] = opTrap
	handlers[TagReset] = opReset
	handlers[TagNop] = opNop
}

// branchTarget applies a Bcc/BSR-family displacement: the target is always
// relative to the address of the opcode word itself, plus 2, regardless of
// whether the displacement came from the opcode's low byte, a following
// word, or a following long.
func (c *CPU) branchTarget(disp int32) uint32 {
	return uint32(int32(c.prevPC) + 2 + disp)
}

func opBranchAlways(c *CPU) {
	disp := c.branchOffset(c.ir)
	c.reg.PC = c.branchTarget(disp)
}

// opBsr implements BSR: push the address of the instruction following the
// branch (already sitting in PC once the displacement word/long, if any,
// has been consumed), then branch.
func opBsr(c *CPU) {
	disp := c.branchOffset(c.ir)
	c.push32(c.reg.PC)
	c.reg.PC = c.branchTarget(disp)
}

func opBranchIf(cc uint8) opFunc {
	return func(c *CPU) {
		disp := c.branchOffset(c.ir)
		if c.testCondition(cc) {
			c.reg.PC = c.branchTarget(disp)
		}
	}
}

// opDbra implements DBRA Dn,<label>: decrement Dn's low word; branch while
// it has not wrapped past -1. The displacement is always the following
// word, never the opcode's low byte or a long form.
func opDbra(c *CPU) {
	reg := regField(c.ir, 0)
	disp := int32(int16(c.fetchPC()))

	word := uint16(c.reg.D[reg]) - 1
	c.reg.D[reg] = (c.reg.D[reg] &^ 0xFFFF) | uint32(word)

	if word != 0xFFFF {
		c.reg.PC = c.branchTarget(disp)
	}
}

// opJsrA implements JSR (An). The decode table claims every control-mode
// addressing sub-form so the disassembler can name them; the interpreter
// only actually supports the (An) sub-form and faults on anything else.
func opJsrA(c *CPU) {
	mode := modeField(c.ir, 3)
	reg := regField(c.ir, 0)
	if mode != 2 {
		c.fault(FaultUnsupportedMode, "JSR only supports the (An) addressing sub-form")
	}
	c.push32(c.reg.PC)
	c.reg.PC = c.reg.A[reg]
}

func opRts(c *CPU) {
	c.reg.PC = c.pop32()
}

// opRte implements RTE: pop PC. This core models no supervisor/user mode
// split, so there is no saved SR to restore and no privilege switch.
func opRte(c *CPU) {
	c.reg.PC = c.pop32()
}

// opTrap implements TRAP #<vector>: push PC, then load PC from the vector's
// entry in the exception table at (32+vector)*4. No mode switch is modelled,
// so there is no SR to push.
func opTrap(c *CPU) {
	vector := uint32(c.ir & 0xF)
	c.push32(c.reg.PC)
	c.reg.PC = read32(c.bus, 0x80+vector*4)
}

// opReset implements the RESET instruction: asserts the external reset
// line for five bus cycles on real hardware. This core has no attached
// devices to reset, so it is a no-op beyond advancing PC (already done by
// fetchPC).
func opReset(c *CPU) {}

func opNop(c *CPU) {}
