package m68k

import "sync"

// table is the immutable 65536-entry map from first instruction word to Tag.
// It is built once, lazily, behind buildOnce and then only ever read.
var (
	table     [65536]Tag
	buildOnce sync.Once
)

// opcodeTag returns the Tag for a raw first instruction word, building the
// table on first use.
func opcodeTag(word uint16) Tag {
	buildOnce.Do(buildTable)
	return table[word]
}

// maskRule fills every 16-bit pattern x where x&mask==value with tag.
// Ported from the original source's mask_inst: it walks the bits left free
// by mask and fills in every combination, so e.g. mask=0xF000,value=0x1000
// claims the entire 0x1000-0x1FFF range.
func maskRule(mask, value uint16, tag Tag) {
	var free []uint
	for i := uint(0); i < 16; i++ {
		if mask&(1<<i) == 0 {
			free = append(free, i)
		}
	}
	for i := 0; i < (1 << len(free)); i++ {
		op := value
		for j, bit := range free {
			if i&(1<<j) != 0 {
				op |= 1 << bit
			}
		}
		table[op] = tag
	}
}

// rangeRule fills the half-open range [lo, hi) with tag. Used for encodings
// (e.g. ADDQ/SUBQ) whose valid opcodes are a contiguous span that a single
// mask/value pair can't express cleanly because of an excluded sub-range
// at the top.
func rangeRule(lo, hi uint16, tag Tag) {
	for op := uint32(lo); op < uint32(hi); op++ {
		table[uint16(op)] = tag
	}
}

// singleton maps exactly one opcode word.
func singleton(value uint16, tag Tag) {
	table[value] = tag
}

// buildTable applies the declarative rule list in declaration order: later
// rules overwrite earlier ones where ranges genuinely overlap (e.g. EorByte
// vs CmpmByte in the B000-BFFF family). Grounded on
// original_source/src/cpu/opcode.rs's INST table construction.
func buildTable() {
	for i := range table {
		table[i] = TagUnknown
	}

	// --- Data movement ---
	maskRule(0xF000, 0x1000, TagMoveByte)
	maskRule(0xF000, 0x2000, TagMoveLong)
	maskRule(0xF000, 0x3000, TagMoveWord)
	maskRule(0xF100, 0x7000, TagMoveQ)
	maskRule(0xFFF8, 0x48E0, TagMovemToMem) // MOVEM.L Dn/An-list,-(An)
	maskRule(0xFFF8, 0x4CD8, TagMovemToReg) // MOVEM.L (An)+,Dn/An-list
	maskRule(0xFFC0, 0x40C0, TagMoveFromSR)
	maskRule(0xFFC0, 0x46C0, TagMoveToSR)
	singleton(0x46FC, TagMoveToSRImm)
	maskRule(0xF1F8, 0x41E8, TagLeaOffset)   // lea (d16,As),Ad
	maskRule(0xF1F8, 0x41F0, TagLeaOffsetD)  // lea (d8,As,Xn),Ad
	maskRule(0xF1FF, 0x41F9, TagLeaDirect)   // lea abs.l,Ad
	maskRule(0xF1FF, 0x41FA, TagLeaOffsetPC) // lea (d16,PC),Ad
	maskRule(0xFFF8, 0x4840, TagSwap)

	// --- Clear / test ---
	maskRule(0xFFC0, 0x4200, TagClrByte)
	maskRule(0xFFC0, 0x4240, TagClrWord)
	maskRule(0xFFC0, 0x4280, TagClrLong)
	maskRule(0xFFC0, 0x4A00, TagTstByte)
	maskRule(0xFFC0, 0x4A40, TagTstWord)
	maskRule(0xFFC0, 0x4A80, TagTstLong)

	// --- Compares ---
	// EorByte (B100, declared in the Logical section further below in the
	// original source's layout) shares the B000-BFFF family and must be
	// applied before CmpmByte so that the narrower, more specific sub-form
	// wins the overlap, matching the declaration order in
	// original_source/src/cpu/opcode.rs.
	maskRule(0xF1C0, 0xB000, TagCmpByte)
	maskRule(0xF1C0, 0xB040, TagCmpWord)
	maskRule(0xF1C0, 0xB080, TagCmpLong)
	maskRule(0xFFC0, 0x0C00, TagCmpiByte)
	maskRule(0xFFC0, 0x0C40, TagCmpiWord)
	maskRule(0xF1C0, 0xB100, TagEorByte)
	maskRule(0xF1F8, 0xB108, TagCmpmByte)
	// CmpLong's mask fixes bit 8 to 0 and CmpaLong's fixes it to 1, so the
	// two patterns are disjoint; no override happens here. The genuine
	// overlap this ordering resolves is EorByte vs CmpmByte above.
	maskRule(0xF1C0, 0xB1C0, TagCmpaLong)

	// --- Bit operations (register-source family + immediate family) ---
	maskRule(0xF1C0, 0x0100, TagBtstReg)
	maskRule(0xF1C0, 0x0180, TagBclrReg)
	maskRule(0xF1C0, 0x01C0, TagBsetReg)
	maskRule(0xFFC0, 0x0800, TagBtstImm)
	maskRule(0xFFC0, 0x0880, TagBclrImm)
	maskRule(0xFFC0, 0x08C0, TagBsetImm)

	// --- Arithmetic ---
	maskRule(0xF1C0, 0xD000, TagAddByte)
	maskRule(0xF1C0, 0xD040, TagAddWord)
	maskRule(0xF1C0, 0xD080, TagAddLong)
	maskRule(0xFFC0, 0x0600, TagAddiByte)
	maskRule(0xFFC0, 0x0640, TagAddiWord)
	maskRule(0xF1C0, 0xD1C0, TagAddaLong)
	maskRule(0xF1C0, 0x9000, TagSubByte)
	maskRule(0xF1C0, 0x9040, TagSubWord)
	maskRule(0xFFC0, 0x0400, TagSubiByte)
	maskRule(0xF1C0, 0x91C0, TagSubaLong)
	maskRule(0xF1C0, 0xC0C0, TagMuluWord)

	// ADDQ/SUBQ: quick-data field (bits 11-9, 0 maps to 8) x 8, EA field is a
	// contiguous alterable-addressing-mode span (destination cannot be
	// PC-relative or immediate).
	for q := uint16(0); q < 8; q++ {
		base := q << 9
		rangeRule(0x5000|base, 0x5000|base|0x3A, TagAddqByte)
		rangeRule(0x5040|base, 0x5040|base|0x3A, TagAddqWord)
		rangeRule(0x5080|base, 0x5080|base|0x3A, TagAddqLong)
		rangeRule(0x5140|base, 0x5140|base|0x3A, TagSubqWord)
		rangeRule(0x5180|base, 0x5180|base|0x3A, TagSubqLong)
	}
	maskRule(0xFFF8, 0x51C8, TagDbra)

	// --- Logical ---
	maskRule(0xF1C0, 0xC000, TagAndByte)
	maskRule(0xF1C0, 0xC040, TagAndWord)
	maskRule(0xF1C0, 0xC080, TagAndLong)
	maskRule(0xFFC0, 0x0240, TagAndiWord)
	maskRule(0xF1C0, 0x8000, TagOrByte)
	maskRule(0xF1C0, 0x8040, TagOrWord)
	maskRule(0xFFC0, 0x0000, TagOriByte)
	maskRule(0xFFC0, 0x0040, TagOriWord)
	maskRule(0xFFC0, 0x0A00, TagEoriByte)
	maskRule(0xFFC0, 0x0A40, TagEoriWord)

	// --- Shifts / rotates ---
	maskRule(0xF1F8, 0xE100, TagAslImByte)
	maskRule(0xF1F8, 0xE140, TagAslImWord)
	maskRule(0xF1F8, 0xE180, TagAslImLong)
	maskRule(0xF1F8, 0xE008, TagLsrImByte)
	maskRule(0xF1F8, 0xE048, TagLsrImWord)
	maskRule(0xF1F8, 0xE148, TagLslImWord)
	maskRule(0xF1F8, 0xE058, TagRorImWord)
	maskRule(0xF1F8, 0xE098, TagRorImLong)
	maskRule(0xF1F8, 0xE178, TagRolWord)
	maskRule(0xF1F8, 0xE118, TagRolImByte)

	maskRule(0xFFF8, 0x4880, TagExtWord)

	// --- Control flow ---
	maskRule(0xFF00, 0x6000, TagBra)
	maskRule(0xFF00, 0x6100, TagBsr)
	maskRule(0xFF00, 0x6400, TagBcc)
	maskRule(0xFF00, 0x6500, TagBcs)
	maskRule(0xFF00, 0x6600, TagBne)
	maskRule(0xFF00, 0x6700, TagBeq)
	maskRule(0xFF00, 0x6A00, TagBpl)
	maskRule(0xFF00, 0x6B00, TagBmi)
	maskRule(0xFF00, 0x6C00, TagBge)
	maskRule(0xFF00, 0x6D00, TagBlt)
	maskRule(0xFF00, 0x6E00, TagBgt)
	maskRule(0xFF00, 0x6F00, TagBle)
	maskRule(0xFFC0, 0x4E80, TagJsrA) // all control-mode encodings; handler faults unsupported sub-forms
	maskRule(0xFFF0, 0x4E40, TagTrap)

	singleton(0x4E70, TagReset)
	singleton(0x4E71, TagNop)
	singleton(0x4E73, TagRte)
	singleton(0x4E75, TagRts)
}
