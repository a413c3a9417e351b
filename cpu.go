// Package m68k implements the interpreter/disassembler core of an emulator
// for the MC68000-subset CPU embedded in an X68000-class workstation.
//
// The core is the opcode classification table, the fetch-decode-execute
// loop, the effective-address unit, the condition-code model, and a twin
// disassembler driven by the same table. Everything else — device stubs,
// the host loop, window/graphics presentation, IPL-ROM loading — lives
// behind the Bus interface and is the caller's concern.
//
// This core targets the subset of the instruction set exercised by the
// embedded boot ROM, not full 68000 coverage: no supervisor/user mode
// protection, no exception/interrupt pipelining beyond TRAP, no
// floating-point/BCD/bit-field instructions, and no cycle-accurate timing.
package m68k

// Registers is the programmer-visible state of the core's MC68000 subset.
type Registers struct {
	D  [8]uint32 // Data registers
	A  [8]uint32 // Address registers; A7 is the stack pointer
	PC uint32    // Program counter
	SR uint16    // Status register (bits 0-4: C,V,Z,N,X; rest writable but unused)
}

// CPU is the MC68000-subset processor core.
type CPU struct {
	reg Registers
	bus Bus

	ir     uint16 // first word of the instruction currently executing
	prevPC uint32 // PC of the instruction currently executing, for diagnostics
}

// New constructs a CPU wired to bus and performs a hardware reset.
func New(bus Bus) *CPU {
	c := &CPU{bus: bus}
	c.Reset()
	return c
}

// Reset performs the architectural reset: SR <- 0, then A7 <- long at
// address 0, then PC <- long at address 4.
func (c *CPU) Reset() {
	c.bus.Reset()
	c.reg = Registers{}
	c.reg.A[7] = read32(c.bus, 0)
	c.reg.PC = read32(c.bus, 4)
}

// SetPC sets the program counter directly, for tests that want to drop the
// CPU into the middle of a memory image without going through Reset.
func (c *CPU) SetPC(addr uint32) {
	c.reg.PC = addr
}

// SetState installs a full register snapshot directly, for tests that need
// exact CPU state before executing a single instruction.
func (c *CPU) SetState(regs Registers) {
	c.reg = regs
}

// Registers returns a copy of the current register state.
func (c *CPU) Registers() Registers {
	return c.reg
}

// Step decodes and executes a single instruction. On a fatal condition
// (unknown opcode, unsupported addressing sub-form, bus fault) it returns a
// *Fault and leaves the register file as of just before the failing access;
// PC has already been advanced past the opcode word.
func (c *CPU) Step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(*Fault); ok {
				err = f
				return
			}
			panic(r)
		}
	}()

	c.prevPC = c.reg.PC
	c.ir = c.fetchPC()

	tag := opcodeTag(c.ir)
	handler := handlers[tag]
	if handler == nil {
		c.fault(FaultUnknownOpcode, "no handler registered for decoded tag")
	}
	handler(c)
	return nil
}

// RunCycles executes up to n instructions, stopping early and returning the
// first *Fault encountered. n here is an instruction count, a coarse proxy
// for cycles — this core does not model cycle-accurate timing.
func (c *CPU) RunCycles(n int) error {
	for i := 0; i < n; i++ {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// fetchPC reads a 16-bit word at PC and advances PC by 2.
func (c *CPU) fetchPC() uint16 {
	v := read16(c.bus, c.reg.PC)
	c.reg.PC += 2
	return v
}

// fetchPCLong reads a 32-bit long at PC and advances PC by 4.
func (c *CPU) fetchPCLong() uint32 {
	v := read32(c.bus, c.reg.PC)
	c.reg.PC += 4
	return v
}

// push32 decrements A7 by 4, then writes v there (I4).
func (c *CPU) push32(v uint32) {
	c.reg.A[7] -= 4
	write32(c.bus, c.reg.A[7], v)
}

// pop32 reads a long at A7, then increments A7 by 4 (I4).
func (c *CPU) pop32() uint32 {
	v := read32(c.bus, c.reg.A[7])
	c.reg.A[7] += 4
	return v
}
