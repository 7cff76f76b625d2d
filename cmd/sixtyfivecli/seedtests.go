package main

import (
	"fmt"

	"github.com/sixtyfivec02/sixtyfivec02/cpu6502"
)

// result mirrors original_source/tests.c's test_pass/test_fail counters: a
// running tally plus the per-check pass/fail lines check() would have
// printed.
type result struct {
	pass, fail int
}

func (r *result) check(desc string, condition bool) {
	if condition {
		r.pass++
		fmt.Printf("[PASS] %s\n", desc)
	} else {
		r.fail++
		fmt.Printf("[FAIL] %s\n", desc)
	}
}

// runSeedTests executes the six concrete end-to-end scenarios plus the SBC
// round-trip, CMP, JMP-indirect and interrupt-masking checks, each against a
// freshly reset CPU.
// It returns the accumulated pass/fail counts, the harness's generalization
// of tests.c's single-file scenario list.
func runSeedTests() result {
	var r result

	fmt.Println("=== LDA then ADC ===")
	seedADC(&r)

	fmt.Println("=== ADC overflow into negative ===")
	seedADCOverflow(&r)

	fmt.Println("=== ADC wraps to zero with carry ===")
	seedADCCarry(&r)

	fmt.Println("=== LDA zero-page,X wrap ===")
	seedLDAZeroPageWrap(&r)

	fmt.Println("=== BRK push/vector protocol ===")
	seedBRK(&r)

	fmt.Println("=== BIT flags ===")
	seedBIT(&r)

	fmt.Println("=== SBC round-trips ADC ===")
	seedSBCRoundTrip(&r)

	fmt.Println("=== CMP leaves A unmodified ===")
	seedCMPNonMutation(&r)

	fmt.Println("=== JMP indirect page-wrap bug ===")
	seedJMPIndirectPageWrap(&r)

	fmt.Println("=== IRQ masked by I, NMI never masked ===")
	seedInterruptMasking(&r)

	return r
}

func newSeedCPU() (*cpu6502.CPU, *cpu6502.Bus) {
	bus := cpu6502.NewBus()
	cpu := cpu6502.NewCPU(bus)
	cpu.Reset()
	return cpu, bus
}

// loadAt builds a Program from code and loads it at PrgStart, the harness's
// named equivalent of tests.c's PRG_START literal.
func loadAt(bus *cpu6502.Bus, name string, code ...cpu6502.Byte) {
	prog := cpu6502.Program{Name: name, Origin: cpu6502.PrgStart, Code: code}
	prog.Load(bus)
}

func seedADC(r *result) {
	cpu, bus := newSeedCPU()
	cpu.SetPC(cpu6502.PrgStart)
	loadAt(bus, "LDA then ADC",
		0xA9, 0x20, // LDA #$20
		0x69, 0x22, // ADC #$22
	)

	cpu.Execute(4)

	s := cpu.Snapshot()
	r.check("A == 0x42", s.A == 0x42)
	r.check("C == 0", cpu.FlagGet(cpu6502.FlagC) == 0)
	r.check("Z == 0", cpu.FlagGet(cpu6502.FlagZ) == 0)
	r.check("V == 0", cpu.FlagGet(cpu6502.FlagV) == 0)
	r.check("N == 0", cpu.FlagGet(cpu6502.FlagN) == 0)
}

func seedADCOverflow(r *result) {
	cpu, bus := newSeedCPU()
	cpu.SetPC(cpu6502.PrgStart)
	loadAt(bus, "ADC overflow",
		0xA9, 0x7F, // LDA #$7F
		0x69, 0x01, // ADC #$01
	)

	cpu.Execute(4)

	s := cpu.Snapshot()
	r.check("A == 0x80", s.A == 0x80)
	r.check("V == 1", cpu.FlagGet(cpu6502.FlagV) == 1)
	r.check("N == 1", cpu.FlagGet(cpu6502.FlagN) == 1)
	r.check("C == 0", cpu.FlagGet(cpu6502.FlagC) == 0)
}

func seedADCCarry(r *result) {
	cpu, bus := newSeedCPU()
	cpu.SetPC(cpu6502.PrgStart)
	loadAt(bus, "ADC carry to zero",
		0xA9, 0xFF, // LDA #$FF
		0x69, 0x01, // ADC #$01
	)

	cpu.Execute(4)

	s := cpu.Snapshot()
	r.check("A == 0x00", s.A == 0x00)
	r.check("C == 1", cpu.FlagGet(cpu6502.FlagC) == 1)
	r.check("Z == 1", cpu.FlagGet(cpu6502.FlagZ) == 1)
	r.check("V == 0", cpu.FlagGet(cpu6502.FlagV) == 0)
}

func seedLDAZeroPageWrap(r *result) {
	cpu, bus := newSeedCPU()
	bus.Write(0x0001, 0x77) // data: zero-page wrap target
	cpu.SetPC(cpu6502.PrgStart)
	loadAt(bus, "LDA zero-page,X wrap",
		0xA2, 0x02, // LDX #$02
		0xB5, 0xFF, // LDA $FF,X
	)

	cpu.Execute(6)

	s := cpu.Snapshot()
	r.check("A == 0x77", s.A == 0x77)
}

func seedBRK(r *result) {
	cpu, bus := newSeedCPU()
	bus.Write(0xFFFE, 0x34)
	bus.Write(0xFFFF, 0x12)
	cpu.SetPC(cpu6502.PrgStart)
	cpu.SetSP(0xFF)
	loadAt(bus, "BRK push/vector protocol",
		0x00, // BRK
	)

	cpu.Execute(7)

	s := cpu.Snapshot()
	r.check("PC == 0x1234", s.PC == 0x1234)
	r.check("SP == 0xFC", s.SP == 0xFC)
	r.check("stack[0x01FF] == 0x02", bus.Read(0x01FF) == 0x02)
	r.check("stack[0x01FE] == 0x02", bus.Read(0x01FE) == 0x02)
	pushedStatus := bus.Read(0x01FD)
	r.check("pushed status has B set", pushedStatus&(1<<cpu6502.FlagB) != 0)
	r.check("I == 1 after BRK", cpu.FlagGet(cpu6502.FlagI) == 1)
}

func seedBIT(r *result) {
	cpu, bus := newSeedCPU()
	bus.Write(0x0010, 0xF0) // data: BIT operand
	cpu.SetPC(cpu6502.PrgStart)
	loadAt(bus, "BIT flags",
		0xA9, 0x0F, // LDA #$0F
		0x24, 0x10, // BIT $10
	)

	cpu.Execute(5)

	s := cpu.Snapshot()
	r.check("Z == 1", cpu.FlagGet(cpu6502.FlagZ) == 1)
	r.check("N == 1", cpu.FlagGet(cpu6502.FlagN) == 1)
	r.check("V == 1", cpu.FlagGet(cpu6502.FlagV) == 1)
	r.check("A == 0x0F", s.A == 0x0F)
}

func seedSBCRoundTrip(r *result) {
	cpu, bus := newSeedCPU()
	cpu.SetPC(cpu6502.PrgStart)
	loadAt(bus, "SBC round-trips ADC",
		0x38,       // SEC (carry-in 1 for ADC)
		0xA9, 0x50, // LDA #$50
		0x69, 0x10, // ADC #$10 -> 0x61, C=0
		0xE9, 0x10, // SBC #$10 with borrow -> back to 0x50
	)

	cpu.Execute(8)

	s := cpu.Snapshot()
	r.check("A round-trips to 0x50", s.A == 0x50)
}

func seedCMPNonMutation(r *result) {
	cpu, bus := newSeedCPU()
	cpu.SetPC(cpu6502.PrgStart)
	loadAt(bus, "CMP leaves A unmodified",
		0xA9, 0x42, // LDA #$42
		0xC9, 0x42, // CMP #$42
	)

	cpu.Execute(4)

	s := cpu.Snapshot()
	r.check("A unchanged by CMP", s.A == 0x42)
	r.check("Z == 1 on equal compare", cpu.FlagGet(cpu6502.FlagZ) == 1)
	r.check("C == 1 on A>=M", cpu.FlagGet(cpu6502.FlagC) == 1)
}

func seedJMPIndirectPageWrap(r *result) {
	cpu, bus := newSeedCPU()
	bus.Write(0x02FF, 0x00) // data: pointer low byte
	bus.Write(0x0200, 0x34) // data: buggy high-byte source (start of same page)
	bus.Write(cpu6502.DataPage, 0x12) // data: correct high-byte source, never read

	cpu.SetPC(0x0400)
	prog := cpu6502.Program{
		Name:   "JMP indirect page-wrap bug",
		Origin: 0x0400,
		Code:   []cpu6502.Byte{0x6C, 0xFF, 0x02}, // JMP ($02FF)
	}
	prog.Load(bus)

	cpu.Execute(5)

	s := cpu.Snapshot()
	r.check("JMP indirect wraps within page", s.PC == 0x3400)
}

func seedInterruptMasking(r *result) {
	cpu, bus := newSeedCPU()
	bus.Write(0xFFFE, 0x00)
	bus.Write(0xFFFF, 0x90)
	cpu.SetPC(cpu6502.PrgStart)
	loadAt(bus, "IRQ masked by I, NMI never masked",
		0x78, // SEI
	)
	cpu.Execute(2)

	before := cpu.Snapshot().PC
	cpu.IRQ()
	r.check("IRQ suppressed when I=1", cpu.Snapshot().PC == before)

	bus.Write(0xFFFA, 0x00)
	bus.Write(0xFFFB, 0x91)
	cpu.NMI()
	r.check("NMI never suppressed", cpu.Snapshot().PC == 0x9100)
}
