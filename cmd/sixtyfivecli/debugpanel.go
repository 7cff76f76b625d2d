package main

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/sixtyfivec02/sixtyfivec02/cpu6502"
)

const (
	panelW float64 = 420
	panelH float64 = 520
)

// debugPanel is the windowed equivalent of tests.c's print_regs/print_flags/
// print_mem_range and the teacher's never-wired printDebugCpu/printDebugMem:
// a live, monospace text dump of CPU state, redrawn after every Execute
// call.
type debugPanel struct {
	window *pixelgl.Window
	txt    *text.Text
}

func newDebugPanel() (*debugPanel, error) {
	config := pixelgl.WindowConfig{
		Title:  "sixtyfivec02 debug panel",
		Bounds: pixel.R(0, 0, panelW, panelH),
		VSync:  true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		return nil, err
	}

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	orig := pixel.V(10, panelH-20)
	txt := text.New(orig, atlas)

	return &debugPanel{window: window, txt: txt}, nil
}

func (d *debugPanel) draw(cpu *cpu6502.CPU, bus *cpu6502.Bus) {
	d.txt.Clear()
	d.printRegisters(cpu)
	d.printStack(bus, cpu.Snapshot().SP)

	d.window.Clear(colornames.Black)
	d.txt.Draw(d.window, pixel.IM)
	d.window.Update()
}

func (d *debugPanel) printRegisters(cpu *cpu6502.CPU) {
	s := cpu.Snapshot()
	fmt.Fprintf(d.txt, "PC: $%04X\n", s.PC)
	fmt.Fprintf(d.txt, "A:  $%02X\n", s.A)
	fmt.Fprintf(d.txt, "X:  $%02X\n", s.X)
	fmt.Fprintf(d.txt, "Y:  $%02X\n", s.Y)
	fmt.Fprintf(d.txt, "SP: $%02X\n", s.SP)
	fmt.Fprintf(d.txt, "P:  %08b\n", s.P)
	fmt.Fprintf(d.txt, "    NV-BDIZC\n\n")
	fmt.Fprintf(d.txt, "Cycles: %d\n\n", cpu.CycleCount)
}

// printStack dumps the stack page 16 bytes per row, bracketing the byte at
// the current SP so the live top-of-stack position is visible in the grid.
func (d *debugPanel) printStack(bus *cpu6502.Bus, sp cpu6502.Byte) {
	fmt.Fprintf(d.txt, "Stack (page 1):\n")
	spAddr := cpu6502.Word(0x0100) | cpu6502.Word(sp)
	base := cpu6502.Word(0x01F0)
	for row := 0; row < 16; row++ {
		addr := base - cpu6502.Word(row)*16
		fmt.Fprintf(d.txt, "$%04X:", addr)
		for col := 0; col < 16; col++ {
			cur := addr + cpu6502.Word(col)
			if cur == spAddr {
				fmt.Fprintf(d.txt, " [%02X]", bus.Read(cur))
			} else {
				fmt.Fprintf(d.txt, "  %02X ", bus.Read(cur))
			}
		}
		fmt.Fprintf(d.txt, "\n")
	}
}

func (d *debugPanel) closed() bool {
	return d.window.Closed()
}
