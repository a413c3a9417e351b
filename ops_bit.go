package m68k

func init() {
	handlers[TagBtstImm] = opBit(bitOpTest, true)
	handlers[TagBtstReg] = opBit(bitOpTest, false)
	handlers[TagBclrImm] = opBit(bitOpClear, true)
	handlers[TagBclrReg] = opBit(bitOpClear, false)
	handlers[TagBsetImm] = opBit(bitOpSet, true)
	handlers[TagBsetReg] = opBit(bitOpSet, false)
}

type bitOpKind int

const (
	bitOpTest bitOpKind = iota
	bitOpClear
	bitOpSet
)

// opBit implements the BTST/BCLR/BSET family. A Dn destination treats the
// bit number modulo 32 and operates on the full long register; any memory
// destination treats it modulo 8 and operates on a single byte. Z is set
// from the bit's value before modification; no other flag is touched.
func opBit(kind bitOpKind, immediate bool) opFunc {
	return func(c *CPU) {
		var bitNum uint32
		if immediate {
			bitNum = uint32(c.fetchPC() & 0xFF)
		} else {
			bitNum = c.reg.D[regField(c.ir, 9)]
		}

		mode := modeField(c.ir, 3)
		reg := regField(c.ir, 0)

		if mode == 0 {
			bitNum &= 31
			mask := uint32(1) << bitNum
			v := c.reg.D[reg]
			c.setFlag(flagZ, v&mask == 0)
			switch kind {
			case bitOpClear:
				c.reg.D[reg] = v &^ mask
			case bitOpSet:
				c.reg.D[reg] = v | mask
			}
			return
		}

		bitNum &= 7
		mask := uint8(1) << bitNum
		dst := c.resolveEA(mode, reg, Byte)
		v := uint8(dst.read(c, Byte))
		c.setFlag(flagZ, v&mask == 0)
		switch kind {
		case bitOpClear:
			dst.write(c, Byte, uint32(v&^mask))
		case bitOpSet:
			dst.write(c, Byte, uint32(v|mask))
		}
	}
}
