package cpu6502

// resolveAddress runs the addressing-mode resolver for mode, leaving the
// result in cpu.addrAbs (or cpu.isImplied set, for Implied/Accumulator) and
// cpu.addrRel (for Relative). It returns whether the resolved address is on
// a different page than the base address it was indexed from - the only
// thing the dispatch loop needs to know to apply the page-cross cycle
// penalty, and only for opcodes whose table entry says it applies.
func resolveAddress(cpu *CPU, mode AddressingMode) bool {
	switch mode {
	case AddrIMP:
		cpu.isImplied = true
		cpu.fetched = cpu.A
		return false

	case AddrIMM:
		cpu.addrAbs = cpu.PC
		cpu.PC++
		return false

	case AddrREL:
		offset := cpu.fetchByte()
		cpu.addrRel = Word(offset)
		if cpu.addrRel&0x80 != 0 {
			cpu.addrRel |= 0xFF00
		}
		return false

	case AddrZP0:
		cpu.addrAbs = Word(cpu.fetchByte())
		return false

	case AddrZPX:
		cpu.addrAbs = Word(cpu.fetchByte()+cpu.X) & 0x00FF
		return false

	case AddrZPY:
		cpu.addrAbs = Word(cpu.fetchByte()+cpu.Y) & 0x00FF
		return false

	case AddrABS:
		cpu.addrAbs = cpu.fetchWord()
		return false

	case AddrABX:
		base := cpu.fetchWord()
		cpu.addrAbs = base + Word(cpu.X)
		return cpu.addrAbs&0xFF00 != base&0xFF00

	case AddrABY:
		base := cpu.fetchWord()
		cpu.addrAbs = base + Word(cpu.Y)
		return cpu.addrAbs&0xFF00 != base&0xFF00

	case AddrIND:
		// JMP's indirect pointer has the real 6502's page-wrap bug: if the
		// pointer's low byte is 0xFF, the high byte is fetched from the
		// start of the same page instead of the next one.
		ptr := cpu.fetchWord()
		lo := cpu.read(ptr)
		hiAddr := (ptr & 0xFF00) | Word(Byte(ptr)+1)
		hi := cpu.read(hiAddr)
		cpu.addrAbs = Word(hi)<<8 | Word(lo)
		return false

	case AddrIZX:
		t := (cpu.fetchByte() + cpu.X) & 0xFF
		lo := cpu.read(Word(t))
		hi := cpu.read(Word(t+1) & 0x00FF)
		cpu.addrAbs = Word(hi)<<8 | Word(lo)
		return false

	case AddrIZY:
		t := cpu.fetchByte()
		lo := cpu.read(Word(t))
		hi := cpu.read(Word(t+1) & 0x00FF)
		base := Word(hi)<<8 | Word(lo)
		cpu.addrAbs = base + Word(cpu.Y)
		return cpu.addrAbs&0xFF00 != base&0xFF00
	}

	return false
}

// fetchOperand loads the operand byte an instruction will act on: the
// accumulator under Implied/Accumulator addressing, or the byte at the
// already-resolved effective address otherwise. Store instructions never
// call this; they write cpu.A/X/Y straight to cpu.addrAbs.
func (cpu *CPU) fetchOperand() Byte {
	if cpu.isImplied {
		cpu.fetched = cpu.A
	} else {
		cpu.fetched = cpu.read(cpu.addrAbs)
	}
	return cpu.fetched
}

// storeResult writes an ALU/shift result back to the accumulator under
// Implied/Accumulator addressing, or to the resolved effective address.
func (cpu *CPU) storeResult(value Byte) {
	if cpu.isImplied {
		cpu.A = value
	} else {
		cpu.write(cpu.addrAbs, value)
	}
}

// branchTarget resolves the effective branch target from the relative
// offset latched by resolveAddress, and reports whether it lands on a
// different page than the address immediately following the branch's
// operand byte (cpu.PC at the point this is called).
func (cpu *CPU) branchTarget() (target Word, pageCrossed bool) {
	target = cpu.PC + cpu.addrRel
	return target, target&0xFF00 != cpu.PC&0xFF00
}

// takeBranch jumps PC to the resolved relative target and records the
// taken/page-cross cycle bonus spec.md's cycle-accounting rules require.
func (cpu *CPU) takeBranch() {
	target, crossed := cpu.branchTarget()
	cpu.branchExtra++
	if crossed {
		cpu.branchExtra++
	}
	cpu.PC = target
}
