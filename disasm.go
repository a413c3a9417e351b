package m68k

import (
	"fmt"
	"strings"
)

// disasmCursor walks the instruction stream for disassembly purposes only.
// It never touches CPU register state; PC-relative and register-indexed
// operands are rendered symbolically (as "(d,PC)" or "(d,An,Xn.W)") rather than
// resolved to a concrete address, since no live registers are available.
type disasmCursor struct {
	bus Bus
	pc  uint32
}

func (d *disasmCursor) fetch16() uint16 {
	v := read16(d.bus, d.pc)
	d.pc += 2
	return v
}

func (d *disasmCursor) fetch32() uint32 {
	v := read32(d.bus, d.pc)
	d.pc += 4
	return v
}

func hexSigned(v int32) string {
	if v < 0 {
		return fmt.Sprintf("-$%x", -v)
	}
	return fmt.Sprintf("$%x", v)
}

// eaText renders one effective-address operand in the addr,An,Xn family of
// textual conventions, consuming whatever extension words that mode needs.
func (d *disasmCursor) eaText(mode, reg uint8) string {
	switch mode {
	case 0:
		return fmt.Sprintf("D%d", reg)
	case 1:
		return fmt.Sprintf("A%d", reg)
	case 2:
		return fmt.Sprintf("(A%d)", reg)
	case 3:
		return fmt.Sprintf("(A%d)+", reg)
	case 4:
		return fmt.Sprintf("-(A%d)", reg)
	case 5:
		disp := int32(int16(d.fetch16()))
		return fmt.Sprintf("(%s,A%d)", hexSigned(disp), reg)
	case 6:
		ext := d.fetch16()
		if ext&0x0100 != 0 {
			return "<unsupported indexed mode>"
		}
		xn := (ext >> 12) & 7
		xname := "D"
		if ext&0x8000 != 0 {
			xname = "A"
		}
		size := "W"
		if ext&0x0800 != 0 {
			size = "L"
		}
		disp := int32(int8(ext & 0xFF))
		return fmt.Sprintf("(%s,A%d,%s%d.%s)", hexSigned(disp), reg, xname, xn, size)
	case 7:
		switch reg {
		case 1:
			addr := d.fetch32()
			return fmt.Sprintf("$%x.l", addr)
		case 2:
			disp := int32(int16(d.fetch16()))
			return fmt.Sprintf("(%s,PC)", hexSigned(disp))
		case 3:
			ext := d.fetch16()
			xn := (ext >> 12) & 7
			xname := "D"
			if ext&0x8000 != 0 {
				xname = "A"
			}
			disp := int32(int8(ext & 0xFF))
			return fmt.Sprintf("(%s,PC,%s%d)", hexSigned(disp), xname, xn)
		case 4:
			return "#imm"
		}
	}
	return "<unsupported ea>"
}

// movemList formats a MOVEM register mask as range-collapsed groups, e.g.
// "D0-D3/D7/A0-A2".
func movemList(mask uint16, predecrement bool) string {
	type slot struct {
		isAddr bool
		reg    uint8
	}
	var slots []slot
	movemMask(mask, predecrement, func(isAddr bool, reg uint8) {
		slots = append(slots, slot{isAddr, reg})
	})
	if len(slots) == 0 {
		return ""
	}
	if predecrement {
		// movemMask reports predecrement registers A7..D0; list them D0..A7.
		for l, r := 0, len(slots)-1; l < r; l, r = l+1, r-1 {
			slots[l], slots[r] = slots[r], slots[l]
		}
	}

	name := func(s slot) string {
		if s.isAddr {
			return fmt.Sprintf("A%d", s.reg)
		}
		return fmt.Sprintf("D%d", s.reg)
	}

	var groups []string
	i := 0
	for i < len(slots) {
		j := i
		for j+1 < len(slots) && slots[j+1].isAddr == slots[i].isAddr && slots[j+1].reg == slots[j].reg+1 {
			j++
		}
		if j == i {
			groups = append(groups, name(slots[i]))
		} else {
			groups = append(groups, fmt.Sprintf("%s-%s", name(slots[i]), name(slots[j])))
		}
		i = j + 1
	}
	return strings.Join(groups, "/")
}

// Disassemble decodes a single instruction at addr and returns its encoded
// length in bytes and its textual form. Unknown or unimplemented encodings
// never abort the walk: they render as a placeholder so a caller can keep
// scanning a memory image.
func Disassemble(bus Bus, addr uint32) (int, string) {
	d := &disasmCursor{bus: bus, pc: addr}
	word := d.fetch16()
	tag := opcodeTag(word)

	text := disasmText(d, word, tag)
	return int(d.pc - addr), text
}

func disasmText(d *disasmCursor, word uint16, tag Tag) string {
	switch tag {
	case TagUnknown:
		return fmt.Sprintf("dc.w $%04x", word)

	case TagNop:
		return "nop"
	case TagReset:
		return "reset"
	case TagRts:
		return "rts"
	case TagRte:
		return "rte"
	case TagTrap:
		return fmt.Sprintf("trap #%d", word&0xF)

	case TagMoveByte, TagMoveWord, TagMoveLong:
		sz := map[Tag]string{TagMoveByte: "b", TagMoveWord: "w", TagMoveLong: "l"}[tag]
		destMode, destReg := modeField(word, 6), regField(word, 9)
		srcMode, srcReg := modeField(word, 3), regField(word, 0)
		src := d.eaText(srcMode, srcReg)
		dst := d.eaText(destMode, destReg)
		return fmt.Sprintf("move.%s %s, %s", sz, src, dst)

	case TagMoveQ:
		reg := regField(word, 9)
		data := int8(word)
		return fmt.Sprintf("moveq #%d, D%d", data, reg)

	case TagMovemToMem:
		an := regField(word, 0)
		mask := d.fetch16()
		return fmt.Sprintf("movem.l %s, -(A%d)", movemList(mask, true), an)
	case TagMovemToReg:
		an := regField(word, 0)
		mask := d.fetch16()
		return fmt.Sprintf("movem.l (A%d)+, %s", an, movemList(mask, false))

	case TagMoveToSR:
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("move %s, SR", d.eaText(mode, reg))
	case TagMoveFromSR:
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("move SR, %s", d.eaText(mode, reg))
	case TagMoveToSRImm:
		imm := d.fetch16()
		return fmt.Sprintf("move #$%x, SR", imm)

	case TagLeaDirect, TagLeaOffset, TagLeaOffsetD, TagLeaOffsetPC:
		an := regField(word, 9)
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("lea %s, A%d", d.eaText(mode, reg), an)

	case TagSwap:
		return fmt.Sprintf("swap D%d", regField(word, 0))
	case TagExtWord:
		return fmt.Sprintf("ext.w D%d", regField(word, 0))

	case TagClrByte, TagClrWord, TagClrLong:
		sz := sizeSuffix(tag, TagClrByte, TagClrWord, TagClrLong)
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("clr.%s %s", sz, d.eaText(mode, reg))
	case TagTstByte, TagTstWord, TagTstLong:
		sz := sizeSuffix(tag, TagTstByte, TagTstWord, TagTstLong)
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("tst.%s %s", sz, d.eaText(mode, reg))

	case TagCmpByte, TagCmpWord, TagCmpLong:
		sz := sizeSuffix(tag, TagCmpByte, TagCmpWord, TagCmpLong)
		reg := regField(word, 9)
		mode, srcReg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("cmp.%s %s, D%d", sz, d.eaText(mode, srcReg), reg)
	case TagCmpiByte, TagCmpiWord:
		sz := "b"
		var imm uint32
		if tag == TagCmpiByte {
			imm = uint32(d.fetch16() & 0xFF)
		} else {
			sz = "w"
			imm = uint32(d.fetch16())
		}
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("cmpi.%s #$%x, %s", sz, imm, d.eaText(mode, reg))
	case TagCmpaLong:
		an := regField(word, 9)
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("cmpa.l %s, A%d", d.eaText(mode, reg), an)
	case TagCmpmByte:
		ax, ay := regField(word, 9), regField(word, 0)
		return fmt.Sprintf("cmpm.b (A%d)+, (A%d)+", ay, ax)

	case TagBtstImm, TagBclrImm, TagBsetImm:
		bit := d.fetch16() & 0xFF
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("%s #%d, %s", bitMnemonic(tag), bit, d.eaText(mode, reg))
	case TagBtstReg, TagBclrReg, TagBsetReg:
		reg := regField(word, 9)
		mode, dstReg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("%s D%d, %s", bitMnemonic(tag), reg, d.eaText(mode, dstReg))

	case TagAddByte, TagAddWord, TagAddLong:
		sz := sizeSuffix(tag, TagAddByte, TagAddWord, TagAddLong)
		reg := regField(word, 9)
		mode, srcReg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("add.%s %s, D%d", sz, d.eaText(mode, srcReg), reg)
	case TagAddiByte, TagAddiWord:
		sz := "b"
		var imm uint32
		if tag == TagAddiByte {
			imm = uint32(d.fetch16() & 0xFF)
		} else {
			sz = "w"
			imm = uint32(d.fetch16())
		}
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("addi.%s #$%x, %s", sz, imm, d.eaText(mode, reg))
	case TagAddaLong:
		an := regField(word, 9)
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("adda.l %s, A%d", d.eaText(mode, reg), an)
	case TagAddqByte, TagAddqWord, TagAddqLong:
		sz := sizeSuffix(tag, TagAddqByte, TagAddqWord, TagAddqLong)
		data := quickData(word, 9)
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("addq.%s #%d, %s", sz, data, d.eaText(mode, reg))

	case TagSubByte, TagSubWord:
		sz := "b"
		if tag == TagSubWord {
			sz = "w"
		}
		reg := regField(word, 9)
		mode, srcReg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("sub.%s %s, D%d", sz, d.eaText(mode, srcReg), reg)
	case TagSubiByte:
		imm := d.fetch16() & 0xFF
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("subi.b #$%x, %s", imm, d.eaText(mode, reg))
	case TagSubaLong:
		an := regField(word, 9)
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("suba.l %s, A%d", d.eaText(mode, reg), an)
	case TagSubqWord, TagSubqLong:
		sz := "w"
		if tag == TagSubqLong {
			sz = "l"
		}
		data := quickData(word, 9)
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("subq.%s #%d, %s", sz, data, d.eaText(mode, reg))
	case TagMuluWord:
		reg := regField(word, 9)
		mode, srcReg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("mulu.w %s, D%d", d.eaText(mode, srcReg), reg)

	case TagAndByte, TagAndWord, TagAndLong:
		sz := sizeSuffix(tag, TagAndByte, TagAndWord, TagAndLong)
		reg := regField(word, 9)
		mode, srcReg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("and.%s %s, D%d", sz, d.eaText(mode, srcReg), reg)
	case TagAndiWord:
		imm := d.fetch16()
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("andi.w #$%x, %s", imm, d.eaText(mode, reg))
	case TagOrByte, TagOrWord:
		sz := "b"
		if tag == TagOrWord {
			sz = "w"
		}
		reg := regField(word, 9)
		mode, srcReg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("or.%s %s, D%d", sz, d.eaText(mode, srcReg), reg)
	case TagOriByte, TagOriWord:
		sz := "b"
		var imm uint32
		if tag == TagOriByte {
			imm = uint32(d.fetch16() & 0xFF)
		} else {
			sz = "w"
			imm = uint32(d.fetch16())
		}
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("ori.%s #$%x, %s", sz, imm, d.eaText(mode, reg))
	case TagEorByte:
		reg := regField(word, 9)
		mode, dstReg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("eor.b D%d, %s", reg, d.eaText(mode, dstReg))
	case TagEoriByte, TagEoriWord:
		sz := "b"
		var imm uint32
		if tag == TagEoriByte {
			imm = uint32(d.fetch16() & 0xFF)
		} else {
			sz = "w"
			imm = uint32(d.fetch16())
		}
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("eori.%s #$%x, %s", sz, imm, d.eaText(mode, reg))

	case TagAslImByte, TagAslImWord, TagAslImLong:
		sz := sizeSuffix(tag, TagAslImByte, TagAslImWord, TagAslImLong)
		count := quickData(word, 9)
		return fmt.Sprintf("asl.%s #%d, D%d", sz, count, regField(word, 0))
	case TagLsrImByte, TagLsrImWord:
		sz := "b"
		if tag == TagLsrImWord {
			sz = "w"
		}
		count := quickData(word, 9)
		return fmt.Sprintf("lsr.%s #%d, D%d", sz, count, regField(word, 0))
	case TagLslImWord:
		count := quickData(word, 9)
		return fmt.Sprintf("lsl.w #%d, D%d", count, regField(word, 0))
	case TagRorImWord, TagRorImLong:
		sz := "w"
		if tag == TagRorImLong {
			sz = "l"
		}
		count := quickData(word, 9)
		return fmt.Sprintf("ror.%s #%d, D%d", sz, count, regField(word, 0))
	case TagRolWord:
		return fmt.Sprintf("rol.w D%d, D%d", regField(word, 9), regField(word, 0))
	case TagRolImByte:
		count := quickData(word, 9)
		return fmt.Sprintf("rol.b #%d, D%d", count, regField(word, 0))

	case TagBra, TagBsr, TagBcc, TagBcs, TagBne, TagBeq, TagBpl, TagBmi, TagBge, TagBlt, TagBgt, TagBle:
		mnemonic := map[Tag]string{
			TagBra: "bra", TagBsr: "bsr", TagBcc: "bcc", TagBcs: "bcs",
			TagBne: "bne", TagBeq: "beq", TagBpl: "bpl", TagBmi: "bmi",
			TagBge: "bge", TagBlt: "blt", TagBgt: "bgt", TagBle: "ble",
		}[tag]
		opcodeAddr := d.pc - 2
		var disp int32
		switch uint8(word) {
		case 0x00:
			disp = int32(int16(d.fetch16()))
		case 0xFF:
			disp = int32(d.fetch32())
		default:
			disp = int32(int8(word))
		}
		target := uint32(int32(opcodeAddr) + 2 + disp)
		return fmt.Sprintf("%s $%x", mnemonic, target)

	case TagDbra:
		reg := regField(word, 0)
		opcodeAddr := d.pc - 2
		disp := int32(int16(d.fetch16()))
		target := uint32(int32(opcodeAddr) + 2 + disp)
		return fmt.Sprintf("dbra D%d, $%x", reg, target)

	case TagJsrA:
		mode, reg := modeField(word, 3), regField(word, 0)
		return fmt.Sprintf("jsr %s", d.eaText(mode, reg))

	default:
		return fmt.Sprintf("dc.w $%04x", word)
	}
}

func sizeSuffix(tag, b, w, l Tag) string {
	switch tag {
	case b:
		return "b"
	case w:
		return "w"
	case l:
		return "l"
	}
	return "?"
}

func bitMnemonic(tag Tag) string {
	switch tag {
	case TagBtstImm, TagBtstReg:
		return "btst"
	case TagBclrImm, TagBclrReg:
		return "bclr"
	case TagBsetImm, TagBsetReg:
		return "bset"
	}
	return "b??"
}
