package cpu6502

import "testing"

func newTestCPU() (*CPU, *Bus) {
	bus := NewBus()
	cpu := NewCPU(bus)
	cpu.Reset()
	return cpu, bus
}

// Invariant 1: bit 5 (U) of P is always 1 after any mutation.
func TestUnusedFlagAlwaysSet(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0x18) // CLC
	bus.Write(0x0201, 0x38) // SEC
	bus.Write(0x0202, 0xA9) // LDA #$00
	bus.Write(0x0203, 0x00)

	cpu.Execute(6)

	if cpu.FlagGet(FlagU) != 1 {
		t.Errorf("U flag = %d, want 1", cpu.FlagGet(FlagU))
	}
}

// Invariant 2: equal push/pop counts restore SP.
func TestStackBalancedPushPop(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0x48) // PHA
	bus.Write(0x0201, 0x08) // PHP
	bus.Write(0x0202, 0x28) // PLP
	bus.Write(0x0203, 0x68) // PLA

	before := cpu.Snapshot().SP
	cpu.Execute(14)
	after := cpu.Snapshot().SP

	if before != after {
		t.Errorf("SP = %#02x, want %#02x", after, before)
	}
}

// Invariant 3: LDA #imm sets A and the NZ flags from imm alone.
func TestLDAImmediateSetsFlags(t *testing.T) {
	cases := []struct {
		imm  Byte
		z, n bool
	}{
		{0x00, true, false},
		{0x42, false, false},
		{0x80, false, true},
		{0xFF, false, true},
	}

	for _, c := range cases {
		cpu, bus := newTestCPU()
		cpu.SetPC(0x0200)
		bus.Write(0x0200, 0xA9)
		bus.Write(0x0201, c.imm)

		cpu.Execute(2)

		s := cpu.Snapshot()
		if s.A != c.imm {
			t.Errorf("imm %#02x: A = %#02x, want %#02x", c.imm, s.A, c.imm)
		}
		if (cpu.FlagGet(FlagZ) == 1) != c.z {
			t.Errorf("imm %#02x: Z = %d, want %v", c.imm, cpu.FlagGet(FlagZ), c.z)
		}
		if (cpu.FlagGet(FlagN) == 1) != c.n {
			t.Errorf("imm %#02x: N = %d, want %v", c.imm, cpu.FlagGet(FlagN), c.n)
		}
	}
}

// Invariant 4: STA never touches P.
func TestSTALeavesFlagsUnchanged(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0xA9) // LDA #$80 (sets N)
	bus.Write(0x0201, 0x80)
	cpu.Execute(2)

	before := cpu.Snapshot().P

	bus.Write(0x0202, 0x85) // STA $10
	bus.Write(0x0203, 0x10)
	cpu.Execute(3)

	if cpu.Snapshot().P != before {
		t.Errorf("P = %#08b, want %#08b", cpu.Snapshot().P, before)
	}
	if bus.Read(0x0010) != 0x80 {
		t.Errorf("mem[0x10] = %#02x, want 0x80", bus.Read(0x0010))
	}
}

// Invariant 5: zero-page,X effective address always lands in [0, 255].
func TestZeroPageXWraps(t *testing.T) {
	cpu, bus := newTestCPU()
	bus.Write(0x0001, 0x77)
	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0xA2) // LDX #$02
	bus.Write(0x0201, 0x02)
	bus.Write(0x0202, 0xB5) // LDA $FF,X
	bus.Write(0x0203, 0xFF)

	cpu.Execute(6)

	if cpu.Snapshot().A != 0x77 {
		t.Errorf("A = %#02x, want 0x77", cpu.Snapshot().A)
	}
}

// Invariant 6: a write followed by a read at the same address returns what
// was written, until another write.
func TestBusReadAfterWrite(t *testing.T) {
	bus := NewBus()
	bus.Write(0x1234, 0xAB)
	if got := bus.Read(0x1234); got != 0xAB {
		t.Errorf("Read = %#02x, want 0xAB", got)
	}

	bus.Write(0x1234, 0xCD)
	if got := bus.Read(0x1234); got != 0xCD {
		t.Errorf("Read after second write = %#02x, want 0xCD", got)
	}
}

// Invariant 7: Reset leaves every byte of memory at 0x00.
func TestResetZeroesMemory(t *testing.T) {
	cpu, bus := newTestCPU()
	bus.Write(0x0000, 0xFF)
	bus.Write(0x8000, 0xFF)
	bus.Write(0xFFFF, 0xFF)

	cpu.Reset()

	for _, addr := range []Word{0x0000, 0x8000, 0xFFFF} {
		if bus.Read(addr) != 0x00 {
			t.Errorf("mem[%#04x] = %#02x after reset, want 0x00", addr, bus.Read(addr))
		}
	}
}

// Round-trip: push hi, push lo, pop -> lo, pop -> hi.
func TestPushPopWordRoundTrip(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.pushWord(0xBEEF)

	got := cpu.popWord()
	if got != 0xBEEF {
		t.Errorf("popWord = %#04x, want 0xBEEF", got)
	}
}

// Round-trip: SBC undoes ADC for the same operand. The carry ADC adds in is
// taken back out as the borrow SBC sees once ADC has cleared C.
func TestSBCRoundTripsADC(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0x38) // SEC: carry-in 1 for ADC; ADC leaves C=0, a borrow for SBC
	bus.Write(0x0201, 0xA9) // LDA #$50
	bus.Write(0x0202, 0x50)
	bus.Write(0x0203, 0x69) // ADC #$10
	bus.Write(0x0204, 0x10)
	bus.Write(0x0205, 0xE9) // SBC #$10
	bus.Write(0x0206, 0x10)

	cpu.Execute(8)

	if cpu.Snapshot().A != 0x50 {
		t.Errorf("A = %#02x, want 0x50", cpu.Snapshot().A)
	}
}

// Boundary: LDA ABSX crossing a page boundary costs one extra cycle.
func TestLDAAbsoluteXPageCrossCycle(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0xA2) // LDX #$01
	bus.Write(0x0201, 0x01)
	bus.Write(0x0202, 0xBD) // LDA $03FF,X -> $0400
	bus.Write(0x0203, 0xFF)
	bus.Write(0x0204, 0x03)
	bus.Write(0x0400, 0x99)

	cpu.Execute(2) // run the LDX first

	before := cpu.CycleCount
	cpu.Execute(1) // force exactly one more instruction to run
	spent := cpu.CycleCount - before

	if spent != 5 {
		t.Errorf("LDA $03FF,X spent %d cycles, want 5 (4 base + 1 page cross)", spent)
	}
	if cpu.Snapshot().A != 0x99 {
		t.Errorf("A = %#02x, want 0x99", cpu.Snapshot().A)
	}
}

// Boundary: (Indirect,X) pointer bytes wrap within the zero page.
func TestIndirectXPointerWraps(t *testing.T) {
	cpu, bus := newTestCPU()
	bus.Write(0x00FF, 0x00) // pointer lo at $FF
	bus.Write(0x0000, 0x04) // pointer hi wraps to $00
	bus.Write(0x0400, 0x55)

	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0xA2) // LDX #$01
	bus.Write(0x0201, 0x01)
	bus.Write(0x0202, 0xA1) // LDA ($FE,X) -> pointer at $FF/$00
	bus.Write(0x0203, 0xFE)

	cpu.Execute(8)

	if cpu.Snapshot().A != 0x55 {
		t.Errorf("A = %#02x, want 0x55", cpu.Snapshot().A)
	}
}

// Boundary: a taken branch that also crosses a page pays base+1+1.
func TestBranchTakenPageCrossCost(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetPC(0x02FD)
	bus.Write(0x02FD, 0xD0) // BNE +1
	bus.Write(0x02FE, 0x01)

	// Reset leaves Z=0 implicitly (P=0 with I/U set), so BNE is taken.
	before := cpu.CycleCount
	cpu.Execute(1)
	spent := cpu.CycleCount - before

	if spent != 4 {
		t.Errorf("branch spent %d cycles, want 4 (2 base + 1 taken + 1 page cross)", spent)
	}
	if cpu.Snapshot().PC != 0x0300 {
		t.Errorf("PC = %#04x, want 0x0300", cpu.Snapshot().PC)
	}
}

// CMP/CPX/CPY must never mutate the register they compare.
func TestCompareFamilyNonMutating(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0xA9) // LDA #$10
	bus.Write(0x0201, 0x10)
	bus.Write(0x0202, 0xA2) // LDX #$20
	bus.Write(0x0203, 0x20)
	bus.Write(0x0204, 0xA0) // LDY #$30
	bus.Write(0x0205, 0x30)
	bus.Write(0x0206, 0xC9) // CMP #$FF
	bus.Write(0x0207, 0xFF)
	bus.Write(0x0208, 0xE0) // CPX #$FF
	bus.Write(0x0209, 0xFF)
	bus.Write(0x020A, 0xC0) // CPY #$FF
	bus.Write(0x020B, 0xFF)

	cpu.Execute(12)

	s := cpu.Snapshot()
	if s.A != 0x10 || s.X != 0x20 || s.Y != 0x30 {
		t.Errorf("registers mutated by compare: A=%#02x X=%#02x Y=%#02x", s.A, s.X, s.Y)
	}
	if cpu.FlagGet(FlagC) != 0 {
		t.Errorf("C = %d, want 0 (register < operand)", cpu.FlagGet(FlagC))
	}
}

// JMP indirect reproduces the hardware page-wrap bug: a pointer ending in
// $FF fetches its high byte from the start of the same page.
func TestJMPIndirectPageWrapBug(t *testing.T) {
	cpu, bus := newTestCPU()
	bus.Write(0x02FF, 0x00) // pointer low byte
	bus.Write(0x0200, 0x34) // buggy high-byte source (start of same page)
	bus.Write(0x0300, 0x12) // correct high-byte source (never read)

	cpu.SetPC(0x0400)
	bus.Write(0x0400, 0x6C) // JMP ($02FF)
	bus.Write(0x0401, 0xFF)
	bus.Write(0x0402, 0x02)

	cpu.Execute(5)

	if cpu.Snapshot().PC != 0x3400 {
		t.Errorf("PC = %#04x, want 0x3400 (wrapped read)", cpu.Snapshot().PC)
	}
}

// BRK pushes PC+1, status with B forced to 1, sets I, and loads the IRQ
// vector - the exact protocol laid out for the BRK seed scenario.
func TestBRKPushAndVectorProtocol(t *testing.T) {
	cpu, bus := newTestCPU()
	bus.Write(0xFFFE, 0x34)
	bus.Write(0xFFFF, 0x12)
	cpu.SetPC(0x0200)
	cpu.SetSP(0xFF)
	bus.Write(0x0200, 0x00) // BRK

	cpu.Execute(7)

	s := cpu.Snapshot()
	if s.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234", s.PC)
	}
	if s.SP != 0xFC {
		t.Errorf("SP = %#02x, want 0xFC", s.SP)
	}
	if bus.Read(0x01FF) != 0x02 || bus.Read(0x01FE) != 0x02 {
		t.Errorf("pushed return address = %#02x/%#02x, want 0x02/0x02", bus.Read(0x01FF), bus.Read(0x01FE))
	}
	pushedStatus := bus.Read(0x01FD)
	if pushedStatus&(1<<FlagB) == 0 {
		t.Errorf("pushed status %#08b has B clear, want set", pushedStatus)
	}
	if cpu.FlagGet(FlagI) != 1 {
		t.Errorf("I = %d after BRK, want 1", cpu.FlagGet(FlagI))
	}
	if cpu.FlagGet(FlagB) != 0 {
		t.Errorf("live B = %d after BRK, want 0", cpu.FlagGet(FlagB))
	}
}

// IRQ is masked by I; NMI never is.
func TestIRQMaskedNMINot(t *testing.T) {
	cpu, bus := newTestCPU()
	bus.Write(0xFFFE, 0x00)
	bus.Write(0xFFFF, 0x90)
	bus.Write(0xFFFA, 0x00)
	bus.Write(0xFFFB, 0x91)

	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0x78) // SEI
	cpu.Execute(2)

	before := cpu.Snapshot().PC
	cpu.IRQ()
	if cpu.Snapshot().PC != before {
		t.Errorf("PC moved to %#04x after masked IRQ, want unchanged %#04x", cpu.Snapshot().PC, before)
	}

	cpu.NMI()
	if cpu.Snapshot().PC != 0x9100 {
		t.Errorf("PC = %#04x after NMI, want 0x9100", cpu.Snapshot().PC)
	}
}

// JSR/RTS round-trip: RTS returns control to the instruction right after
// the JSR, not to the JSR opcode itself.
func TestJSRRTSRoundTrip(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0x20) // JSR $0300
	bus.Write(0x0201, 0x00)
	bus.Write(0x0202, 0x03)
	bus.Write(0x0300, 0x60) // RTS
	bus.Write(0x0203, 0xEA) // NOP, the instruction RTS should return to

	cpu.Execute(12) // 6 for JSR + 6 for RTS

	if cpu.Snapshot().PC != 0x0203 {
		t.Errorf("PC after RTS = %#04x, want 0x0203", cpu.Snapshot().PC)
	}
	cpu.Execute(2)
	if cpu.Snapshot().PC != 0x0204 {
		t.Errorf("PC after trailing NOP = %#04x, want 0x0204", cpu.Snapshot().PC)
	}
}

// RTI pops status then PC, exactly once each, unlike a double status-pop.
func TestRTIPopsStatusOnceThenPC(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.pushWord(0x1234) // fake return PC, as an interrupt would have pushed
	cpu.push(0b1010_0101)

	opRTI(cpu)

	if cpu.Snapshot().PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234", cpu.Snapshot().PC)
	}
	if cpu.P&0b1010_0101 != 0b1010_0101 {
		t.Errorf("P = %#08b, did not restore pushed bits", cpu.P)
	}
}

func TestOpBITFlags(t *testing.T) {
	cpu, bus := newTestCPU()
	bus.Write(0x0010, 0xF0)
	cpu.SetPC(0x0200)
	bus.Write(0x0200, 0xA9) // LDA #$0F
	bus.Write(0x0201, 0x0F)
	bus.Write(0x0202, 0x24) // BIT $10
	bus.Write(0x0203, 0x10)

	cpu.Execute(5)

	if cpu.FlagGet(FlagZ) != 1 {
		t.Errorf("Z = %d, want 1", cpu.FlagGet(FlagZ))
	}
	if cpu.FlagGet(FlagN) != 1 {
		t.Errorf("N = %d, want 1", cpu.FlagGet(FlagN))
	}
	if cpu.FlagGet(FlagV) != 1 {
		t.Errorf("V = %d, want 1", cpu.FlagGet(FlagV))
	}
	if cpu.Snapshot().A != 0x0F {
		t.Errorf("A = %#02x, want unchanged 0x0F", cpu.Snapshot().A)
	}
}
