// Command m68kmonitor is an interactive single-step TUI for watching the
// m68k core execute a flat memory image one instruction at a time.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/user-none/go-chip-m68k"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: m68kmonitor <image>")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	bus := m68k.NewFlatBus()
	bus.Load(0, data)
	cpu := m68k.New(bus)

	p := tea.NewProgram(model{cpu: cpu, bus: bus})
	result, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if m := result.(model); m.fault != nil {
		fmt.Println("halted:", m.fault)
	}
}

type model struct {
	cpu   *m68k.CPU
	bus   *m68k.FlatBus
	fault error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "n":
			if m.fault == nil {
				if err := m.cpu.Step(); err != nil {
					m.fault = err
				}
			}
		}
	}
	return m, nil
}

// memoryRow renders 16 bytes of the image starting at addr, bracketing the
// byte at PC the way a hex-dump monitor traditionally highlights the
// instruction pointer.
func (m model) memoryRow(addr uint32) string {
	pc := m.cpu.Registers().PC
	s := fmt.Sprintf("%06x | ", addr)
	for i := uint32(0); i < 16; i++ {
		b := m.bus.Read8(addr + i)
		if addr+i == pc {
			s += fmt.Sprintf("[%02x]", b)
		} else {
			s += fmt.Sprintf(" %02x ", b)
		}
	}
	return s
}

func (m model) registerPane() string {
	regs := m.cpu.Registers()
	s := fmt.Sprintf("PC: %06x   SR: %04x\n", regs.PC, regs.SR)
	for i := 0; i < 8; i++ {
		s += fmt.Sprintf("D%d: %08x   A%d: %08x\n", i, regs.D[i], i, regs.A[i])
	}
	if m.fault != nil {
		s += fmt.Sprintf("\nfault: %v\n", m.fault)
	}
	return s
}

func (m model) disasmPane() string {
	pc := m.cpu.Registers().PC
	var lines []string
	addr := pc
	for i := 0; i < 8; i++ {
		n, text := m68k.Disassemble(m.bus, addr)
		lines = append(lines, fmt.Sprintf("%06x  %s", addr, text))
		if n == 0 {
			break
		}
		addr += uint32(n)
	}
	return strings.Join(lines, "\n")
}

func (m model) View() string {
	pc := m.cpu.Registers().PC
	base := pc &^ 0xF
	var memory string
	for row := uint32(0); row < 8; row++ {
		memory += m.memoryRow(base+row*16) + "\n"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, memory, "   ", m.registerPane()),
		"",
		m.disasmPane(),
		"",
		"space/n: step   q: quit",
		"",
		spew.Sdump(m.cpu.Registers()),
	)
}
