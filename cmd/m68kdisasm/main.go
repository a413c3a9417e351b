// Command m68kdisasm disassembles a flat binary memory image using the
// m68k core's decode table, and prints the boot-time reset vectors it
// declares.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/user-none/go-chip-m68k"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "m68kdisasm",
		Short: "disassemble a flat MC68000-subset memory image",
	}

	var base uint32
	var count int

	dumpCmd := &cobra.Command{
		Use:   "dump <image>",
		Short: "disassemble instructions starting at --base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0], base, count)
		},
	}
	dumpCmd.Flags().Uint32Var(&base, "base", 0, "starting address within the image")
	dumpCmd.Flags().IntVar(&count, "count", 32, "number of instructions to disassemble, 0 for until EOF")

	vectorsCmd := &cobra.Command{
		Use:   "vectors <image>",
		Short: "print the initial SP and PC reset vectors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVectors(args[0])
		},
	}

	rootCmd.AddCommand(dumpCmd, vectorsCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadImage(path string) (*m68k.FlatBus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	bus := m68k.NewFlatBus()
	bus.Load(0, data)
	return bus, nil
}

func runVectors(path string) error {
	bus, err := loadImage(path)
	if err != nil {
		return err
	}
	c := m68k.New(bus)
	regs := c.Registers()
	fmt.Printf("initial SP: %#08x\n", regs.A[7])
	fmt.Printf("initial PC: %#08x\n", regs.PC)
	return nil
}

func runDump(path string, base uint32, count int) error {
	bus, err := loadImage(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	end := uint32(info.Size())

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	addr := base
	for i := 0; count == 0 || i < count; i++ {
		if count == 0 && addr >= end {
			break
		}
		n, text := m68k.Disassemble(bus, addr)
		fmt.Fprintf(w, "%08x  %s\n", addr, text)
		addr += uint32(n)
		if n == 0 {
			break
		}
	}
	return nil
}
