package m68k

// opFunc is the handler signature for a single operation. By the time it is
// called, c.ir holds the first instruction word and PC has already been
// advanced past it.
type opFunc func(*CPU)

// handlers maps each Tag to its execution handler. Populated by each
// ops_*.go file's init(). This is a table-from-tag-to-handler rather than a
// single exhaustive switch — the decode table already separates
// classification from execution, so the dispatch step stays a flat lookup.
var handlers [tagCount]opFunc
