package m68k

// Tag identifies the operation (and, where the encoding fixes it, the
// operand size) that a first instruction word decodes to. The table in
// table.go maps all 65536 possible first words onto one of these.
type Tag uint8

const (
	TagUnknown Tag = iota

	TagNop
	TagReset

	// Data movement.
	TagMoveByte
	TagMoveWord
	TagMoveLong
	TagMoveQ
	TagMovemToMem // register list -> memory
	TagMovemToReg // memory -> register list
	TagMoveToSR
	TagMoveFromSR
	TagMoveToSRImm
	TagLeaDirect
	TagLeaOffset
	TagLeaOffsetD
	TagLeaOffsetPC
	TagSwap

	// Clear / test.
	TagClrByte
	TagClrWord
	TagClrLong
	TagTstByte
	TagTstWord
	TagTstLong

	// Compares.
	TagCmpByte
	TagCmpWord
	TagCmpLong
	TagCmpiByte
	TagCmpiWord
	TagCmpaLong
	TagCmpmByte

	// Bit operations.
	TagBtstImm
	TagBtstReg
	TagBclrImm
	TagBclrReg
	TagBsetImm
	TagBsetReg

	// Arithmetic.
	TagAddByte
	TagAddWord
	TagAddLong
	TagAddiByte
	TagAddiWord
	TagAddaLong
	TagAddqByte
	TagAddqWord
	TagAddqLong
	TagSubByte
	TagSubWord
	TagSubiByte
	TagSubaLong
	TagSubqWord
	TagSubqLong
	TagMuluWord

	// Logical.
	TagAndByte
	TagAndWord
	TagAndLong
	TagAndiWord
	TagOrByte
	TagOrWord
	TagOriByte
	TagOriWord
	TagEorByte
	TagEoriByte
	TagEoriWord

	// Shifts/rotates (immediate count unless noted).
	TagAslImByte
	TagAslImWord
	TagAslImLong
	TagLsrImByte
	TagLsrImWord
	TagLslImWord
	TagRorImWord
	TagRorImLong
	TagRolWord // register-supplied count
	TagRolImByte

	// Sign extension.
	TagExtWord

	// Control flow.
	TagBra
	TagBcc
	TagBcs
	TagBne
	TagBeq
	TagBpl
	TagBmi
	TagBge
	TagBlt
	TagBgt
	TagBle
	TagDbra
	TagBsr
	TagJsrA
	TagRts
	TagRte
	TagTrap

	tagCount
)

// String names a tag for diagnostics.
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "Unknown"
}

var tagNames = [tagCount]string{
	TagUnknown:     "Unknown",
	TagNop:         "Nop",
	TagReset:       "Reset",
	TagMoveByte:    "MoveByte",
	TagMoveWord:    "MoveWord",
	TagMoveLong:    "MoveLong",
	TagMoveQ:       "MoveQ",
	TagMovemToMem:  "MovemToMem",
	TagMovemToReg:  "MovemToReg",
	TagMoveToSR:    "MoveToSR",
	TagMoveFromSR:  "MoveFromSR",
	TagMoveToSRImm: "MoveToSRImm",
	TagLeaDirect:   "LeaDirect",
	TagLeaOffset:   "LeaOffset",
	TagLeaOffsetD:  "LeaOffsetD",
	TagLeaOffsetPC: "LeaOffsetPC",
	TagSwap:        "Swap",
	TagClrByte:     "ClrByte",
	TagClrWord:     "ClrWord",
	TagClrLong:     "ClrLong",
	TagTstByte:     "TstByte",
	TagTstWord:     "TstWord",
	TagTstLong:     "TstLong",
	TagCmpByte:     "CmpByte",
	TagCmpWord:     "CmpWord",
	TagCmpLong:     "CmpLong",
	TagCmpiByte:    "CmpiByte",
	TagCmpiWord:    "CmpiWord",
	TagCmpaLong:    "CmpaLong",
	TagCmpmByte:    "CmpmByte",
	TagBtstImm:     "BtstImm",
	TagBtstReg:     "BtstReg",
	TagBclrImm:     "BclrImm",
	TagBclrReg:     "BclrReg",
	TagBsetImm:     "BsetImm",
	TagBsetReg:     "BsetReg",
	TagAddByte:     "AddByte",
	TagAddWord:     "AddWord",
	TagAddLong:     "AddLong",
	TagAddiByte:    "AddiByte",
	TagAddiWord:    "AddiWord",
	TagAddaLong:    "AddaLong",
	TagAddqByte:    "AddqByte",
	TagAddqWord:    "AddqWord",
	TagAddqLong:    "AddqLong",
	TagSubByte:     "SubByte",
	TagSubWord:     "SubWord",
	TagSubiByte:    "SubiByte",
	TagSubaLong:    "SubaLong",
	TagSubqWord:    "SubqWord",
	TagSubqLong:    "SubqLong",
	TagMuluWord:    "MuluWord",
	TagAndByte:     "AndByte",
	TagAndWord:     "AndWord",
	TagAndLong:     "AndLong",
	TagAndiWord:    "AndiWord",
	TagOrByte:      "OrByte",
	TagOrWord:      "OrWord",
	TagOriByte:     "OriByte",
	TagOriWord:     "OriWord",
	TagEorByte:     "EorByte",
	TagEoriByte:    "EoriByte",
	TagEoriWord:    "EoriWord",
	TagAslImByte:   "AslImByte",
	TagAslImWord:   "AslImWord",
	TagAslImLong:   "AslImLong",
	TagLsrImByte:   "LsrImByte",
	TagLsrImWord:   "LsrImWord",
	TagLslImWord:   "LslImWord",
	TagRorImWord:   "RorImWord",
	TagRorImLong:   "RorImLong",
	TagRolWord:     "RolWord",
	TagRolImByte:   "RolImByte",
	TagExtWord:     "ExtWord",
	TagBra:         "Bra",
	TagBcc:         "Bcc",
	TagBcs:         "Bcs",
	TagBne:         "Bne",
	TagBeq:         "Beq",
	TagBpl:         "Bpl",
	TagBmi:         "Bmi",
	TagBge:         "Bge",
	TagBlt:         "Blt",
	TagBgt:         "Bgt",
	TagBle:         "Ble",
	TagDbra:        "Dbra",
	TagBsr:         "Bsr",
	TagJsrA:        "JsrA",
	TagRts:         "Rts",
	TagRte:         "Rte",
	TagTrap:        "Trap",
}
