package cpu6502

// opcodeEntry is one row of the decode table: the mnemonic (for
// disassembly), the addressing mode to resolve before execution, the base
// cycle cost, whether a page-crossing effective address adds one more
// cycle, and the semantics function itself. Collapsing the original
// case-by-case dispatch into this table is the reorganization SPEC_FULL.md
// §9 / the teacher's design comment describes: ~15 semantics functions
// crossed with addressing-mode resolution, instead of one block per
// opcode/mode pair.
type opcodeEntry struct {
	Name             string
	Mode             AddressingMode
	Cycles           Byte
	PageCrossPenalty bool
	Exec             func(cpu *CPU)
}

// illegal decodes an unrecognized opcode as policy (a) from SPEC_FULL.md §7:
// a 1-cycle no-op, matching original_source/cpu.c's "default: cycles--;".
var illegal = opcodeEntry{Name: "---", Mode: AddrIMP, Cycles: 1, Exec: func(cpu *CPU) {}}

// opcodeTable is indexed directly by opcode byte. Mnemonic/mode/cycle
// assignments are the standard 6502 instruction set (the same Rockwell
// R650x reference the teacher's lookup table cites); PageCrossPenalty is set
// per spec.md §4.3.6/§4.3.8: only reads through ABX/ABY/IZY pay it, stores
// and shift/inc/dec-on-memory never do.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]opcodeEntry {
	var t [256]opcodeEntry
	for i := range t {
		t[i] = illegal
	}

	set := func(op Byte, name string, mode AddressingMode, cycles Byte, pageCross bool, exec func(cpu *CPU)) {
		t[op] = opcodeEntry{Name: name, Mode: mode, Cycles: cycles, PageCrossPenalty: pageCross, Exec: exec}
	}

	// ADC
	set(0x69, "ADC", AddrIMM, 2, false, opADC)
	set(0x65, "ADC", AddrZP0, 3, false, opADC)
	set(0x75, "ADC", AddrZPX, 4, false, opADC)
	set(0x6D, "ADC", AddrABS, 4, false, opADC)
	set(0x7D, "ADC", AddrABX, 4, true, opADC)
	set(0x79, "ADC", AddrABY, 4, true, opADC)
	set(0x61, "ADC", AddrIZX, 6, false, opADC)
	set(0x71, "ADC", AddrIZY, 5, true, opADC)

	// AND
	set(0x29, "AND", AddrIMM, 2, false, opAND)
	set(0x25, "AND", AddrZP0, 3, false, opAND)
	set(0x35, "AND", AddrZPX, 4, false, opAND)
	set(0x2D, "AND", AddrABS, 4, false, opAND)
	set(0x3D, "AND", AddrABX, 4, true, opAND)
	set(0x39, "AND", AddrABY, 4, true, opAND)
	set(0x21, "AND", AddrIZX, 6, false, opAND)
	set(0x31, "AND", AddrIZY, 5, true, opAND)

	// ASL
	set(0x0A, "ASL", AddrIMP, 2, false, opASL)
	set(0x06, "ASL", AddrZP0, 5, false, opASL)
	set(0x16, "ASL", AddrZPX, 6, false, opASL)
	set(0x0E, "ASL", AddrABS, 6, false, opASL)
	set(0x1E, "ASL", AddrABX, 7, false, opASL)

	// Branches
	set(0x90, "BCC", AddrREL, 2, false, opBCC)
	set(0xB0, "BCS", AddrREL, 2, false, opBCS)
	set(0xF0, "BEQ", AddrREL, 2, false, opBEQ)
	set(0x30, "BMI", AddrREL, 2, false, opBMI)
	set(0xD0, "BNE", AddrREL, 2, false, opBNE)
	set(0x10, "BPL", AddrREL, 2, false, opBPL)
	set(0x50, "BVC", AddrREL, 2, false, opBVC)
	set(0x70, "BVS", AddrREL, 2, false, opBVS)

	// BIT
	set(0x24, "BIT", AddrZP0, 3, false, opBIT)
	set(0x2C, "BIT", AddrABS, 4, false, opBIT)

	// BRK
	set(0x00, "BRK", AddrIMP, 7, false, opBRK)

	// Clear flags
	set(0x18, "CLC", AddrIMP, 2, false, opCLC)
	set(0xD8, "CLD", AddrIMP, 2, false, opCLD)
	set(0x58, "CLI", AddrIMP, 2, false, opCLI)
	set(0xB8, "CLV", AddrIMP, 2, false, opCLV)

	// CMP
	set(0xC9, "CMP", AddrIMM, 2, false, opCMP)
	set(0xC5, "CMP", AddrZP0, 3, false, opCMP)
	set(0xD5, "CMP", AddrZPX, 4, false, opCMP)
	set(0xCD, "CMP", AddrABS, 4, false, opCMP)
	set(0xDD, "CMP", AddrABX, 4, true, opCMP)
	set(0xD9, "CMP", AddrABY, 4, true, opCMP)
	set(0xC1, "CMP", AddrIZX, 6, false, opCMP)
	set(0xD1, "CMP", AddrIZY, 5, true, opCMP)

	// CPX / CPY
	set(0xE0, "CPX", AddrIMM, 2, false, opCPX)
	set(0xE4, "CPX", AddrZP0, 3, false, opCPX)
	set(0xEC, "CPX", AddrABS, 4, false, opCPX)
	set(0xC0, "CPY", AddrIMM, 2, false, opCPY)
	set(0xC4, "CPY", AddrZP0, 3, false, opCPY)
	set(0xCC, "CPY", AddrABS, 4, false, opCPY)

	// DEC
	set(0xC6, "DEC", AddrZP0, 5, false, opDEC)
	set(0xD6, "DEC", AddrZPX, 6, false, opDEC)
	set(0xCE, "DEC", AddrABS, 6, false, opDEC)
	set(0xDE, "DEC", AddrABX, 7, false, opDEC)

	// DEX / DEY
	set(0xCA, "DEX", AddrIMP, 2, false, opDEX)
	set(0x88, "DEY", AddrIMP, 2, false, opDEY)

	// EOR
	set(0x49, "EOR", AddrIMM, 2, false, opEOR)
	set(0x45, "EOR", AddrZP0, 3, false, opEOR)
	set(0x55, "EOR", AddrZPX, 4, false, opEOR)
	set(0x4D, "EOR", AddrABS, 4, false, opEOR)
	set(0x5D, "EOR", AddrABX, 4, true, opEOR)
	set(0x59, "EOR", AddrABY, 4, true, opEOR)
	set(0x41, "EOR", AddrIZX, 6, false, opEOR)
	set(0x51, "EOR", AddrIZY, 5, true, opEOR)

	// INC
	set(0xE6, "INC", AddrZP0, 5, false, opINC)
	set(0xF6, "INC", AddrZPX, 6, false, opINC)
	set(0xEE, "INC", AddrABS, 6, false, opINC)
	set(0xFE, "INC", AddrABX, 7, false, opINC)

	// INX / INY
	set(0xE8, "INX", AddrIMP, 2, false, opINX)
	set(0xC8, "INY", AddrIMP, 2, false, opINY)

	// JMP / JSR
	set(0x4C, "JMP", AddrABS, 3, false, opJMP)
	set(0x6C, "JMP", AddrIND, 5, false, opJMP)
	set(0x20, "JSR", AddrABS, 6, false, opJSR)

	// LDA
	set(0xA9, "LDA", AddrIMM, 2, false, opLDA)
	set(0xA5, "LDA", AddrZP0, 3, false, opLDA)
	set(0xB5, "LDA", AddrZPX, 4, false, opLDA)
	set(0xAD, "LDA", AddrABS, 4, false, opLDA)
	set(0xBD, "LDA", AddrABX, 4, true, opLDA)
	set(0xB9, "LDA", AddrABY, 4, true, opLDA)
	set(0xA1, "LDA", AddrIZX, 6, false, opLDA)
	set(0xB1, "LDA", AddrIZY, 5, true, opLDA)

	// LDX
	set(0xA2, "LDX", AddrIMM, 2, false, opLDX)
	set(0xA6, "LDX", AddrZP0, 3, false, opLDX)
	set(0xB6, "LDX", AddrZPY, 4, false, opLDX)
	set(0xAE, "LDX", AddrABS, 4, false, opLDX)
	set(0xBE, "LDX", AddrABY, 4, true, opLDX)

	// LDY
	set(0xA0, "LDY", AddrIMM, 2, false, opLDY)
	set(0xA4, "LDY", AddrZP0, 3, false, opLDY)
	set(0xB4, "LDY", AddrZPX, 4, false, opLDY)
	set(0xAC, "LDY", AddrABS, 4, false, opLDY)
	set(0xBC, "LDY", AddrABX, 4, true, opLDY)

	// LSR
	set(0x4A, "LSR", AddrIMP, 2, false, opLSR)
	set(0x46, "LSR", AddrZP0, 5, false, opLSR)
	set(0x56, "LSR", AddrZPX, 6, false, opLSR)
	set(0x4E, "LSR", AddrABS, 6, false, opLSR)
	set(0x5E, "LSR", AddrABX, 7, false, opLSR)

	// NOP
	set(0xEA, "NOP", AddrIMP, 2, false, opNOP)

	// ORA
	set(0x09, "ORA", AddrIMM, 2, false, opORA)
	set(0x05, "ORA", AddrZP0, 3, false, opORA)
	set(0x15, "ORA", AddrZPX, 4, false, opORA)
	set(0x0D, "ORA", AddrABS, 4, false, opORA)
	set(0x1D, "ORA", AddrABX, 4, true, opORA)
	set(0x19, "ORA", AddrABY, 4, true, opORA)
	set(0x01, "ORA", AddrIZX, 6, false, opORA)
	set(0x11, "ORA", AddrIZY, 5, true, opORA)

	// Stack ops
	set(0x48, "PHA", AddrIMP, 3, false, opPHA)
	set(0x08, "PHP", AddrIMP, 3, false, opPHP)
	set(0x68, "PLA", AddrIMP, 4, false, opPLA)
	set(0x28, "PLP", AddrIMP, 4, false, opPLP)

	// ROL / ROR
	set(0x2A, "ROL", AddrIMP, 2, false, opROL)
	set(0x26, "ROL", AddrZP0, 5, false, opROL)
	set(0x36, "ROL", AddrZPX, 6, false, opROL)
	set(0x2E, "ROL", AddrABS, 6, false, opROL)
	set(0x3E, "ROL", AddrABX, 7, false, opROL)
	set(0x6A, "ROR", AddrIMP, 2, false, opROR)
	set(0x66, "ROR", AddrZP0, 5, false, opROR)
	set(0x76, "ROR", AddrZPX, 6, false, opROR)
	set(0x6E, "ROR", AddrABS, 6, false, opROR)
	set(0x7E, "ROR", AddrABX, 7, false, opROR)

	// RTI / RTS
	set(0x40, "RTI", AddrIMP, 6, false, opRTI)
	set(0x60, "RTS", AddrIMP, 6, false, opRTS)

	// SBC
	set(0xE9, "SBC", AddrIMM, 2, false, opSBC)
	set(0xE5, "SBC", AddrZP0, 3, false, opSBC)
	set(0xF5, "SBC", AddrZPX, 4, false, opSBC)
	set(0xED, "SBC", AddrABS, 4, false, opSBC)
	set(0xFD, "SBC", AddrABX, 4, true, opSBC)
	set(0xF9, "SBC", AddrABY, 4, true, opSBC)
	set(0xE1, "SBC", AddrIZX, 6, false, opSBC)
	set(0xF1, "SBC", AddrIZY, 5, true, opSBC)

	// Set flags
	set(0x38, "SEC", AddrIMP, 2, false, opSEC)
	set(0xF8, "SED", AddrIMP, 2, false, opSED)
	set(0x78, "SEI", AddrIMP, 2, false, opSEI)

	// STA
	set(0x85, "STA", AddrZP0, 3, false, opSTA)
	set(0x95, "STA", AddrZPX, 4, false, opSTA)
	set(0x8D, "STA", AddrABS, 4, false, opSTA)
	set(0x9D, "STA", AddrABX, 5, false, opSTA)
	set(0x99, "STA", AddrABY, 5, false, opSTA)
	set(0x81, "STA", AddrIZX, 6, false, opSTA)
	set(0x91, "STA", AddrIZY, 6, false, opSTA)

	// STX / STY
	set(0x86, "STX", AddrZP0, 3, false, opSTX)
	set(0x96, "STX", AddrZPY, 4, false, opSTX)
	set(0x8E, "STX", AddrABS, 4, false, opSTX)
	set(0x84, "STY", AddrZP0, 3, false, opSTY)
	set(0x94, "STY", AddrZPX, 4, false, opSTY)
	set(0x8C, "STY", AddrABS, 4, false, opSTY)

	// Transfers
	set(0xAA, "TAX", AddrIMP, 2, false, opTAX)
	set(0xA8, "TAY", AddrIMP, 2, false, opTAY)
	set(0xBA, "TSX", AddrIMP, 2, false, opTSX)
	set(0x8A, "TXA", AddrIMP, 2, false, opTXA)
	set(0x9A, "TXS", AddrIMP, 2, false, opTXS)
	set(0x98, "TYA", AddrIMP, 2, false, opTYA)

	return t
}

// --- Load / store ---

func opLDA(cpu *CPU) { cpu.A = cpu.fetchOperand(); cpu.setNZ(cpu.A) }
func opLDX(cpu *CPU) { cpu.X = cpu.fetchOperand(); cpu.setNZ(cpu.X) }
func opLDY(cpu *CPU) { cpu.Y = cpu.fetchOperand(); cpu.setNZ(cpu.Y) }

func opSTA(cpu *CPU) { cpu.write(cpu.addrAbs, cpu.A) }
func opSTX(cpu *CPU) { cpu.write(cpu.addrAbs, cpu.X) }
func opSTY(cpu *CPU) { cpu.write(cpu.addrAbs, cpu.Y) }

// --- ALU ---

// opADC implements spec.md §4.3.6's exact ADC flag rules: r computed in
// 9 bits, C from the carry out, V from "both operands share a sign
// different from the result's sign".
func opADC(cpu *CPU) {
	m := cpu.fetchOperand()
	r := uint16(cpu.A) + uint16(m) + uint16(cpu.FlagGet(FlagC))

	cpu.FlagSet(FlagC, r > 0xFF)
	cpu.FlagSet(FlagZ, Byte(r) == 0)
	cpu.FlagSet(FlagN, r&0x80 != 0)
	cpu.FlagSet(FlagV, (uint16(cpu.A)^r)&(uint16(m)^r)&0x80 != 0)

	cpu.A = Byte(r)
}

// opSBC derives subtraction from ADC by complementing the operand, the
// standard 6502 identity: A-M-(1-C) == A+(M^0xFF)+C.
func opSBC(cpu *CPU) {
	m := cpu.fetchOperand() ^ 0xFF
	r := uint16(cpu.A) + uint16(m) + uint16(cpu.FlagGet(FlagC))

	cpu.FlagSet(FlagC, r > 0xFF)
	cpu.FlagSet(FlagZ, Byte(r) == 0)
	cpu.FlagSet(FlagN, r&0x80 != 0)
	cpu.FlagSet(FlagV, (uint16(cpu.A)^r)&(uint16(m)^r)&0x80 != 0)

	cpu.A = Byte(r)
}

func opAND(cpu *CPU) { cpu.A &= cpu.fetchOperand(); cpu.setNZ(cpu.A) }
func opORA(cpu *CPU) { cpu.A |= cpu.fetchOperand(); cpu.setNZ(cpu.A) }
func opEOR(cpu *CPU) { cpu.A ^= cpu.fetchOperand(); cpu.setNZ(cpu.A) }

// opBIT computes A&M for the Z flag only; A is left untouched. N and V come
// straight from bits 7 and 6 of the memory operand, per spec.md §4.3.6.
func opBIT(cpu *CPU) {
	m := cpu.fetchOperand()
	cpu.FlagSet(FlagZ, m&cpu.A == 0)
	cpu.FlagSet(FlagV, m&0x40 != 0)
	cpu.FlagSet(FlagN, m&0x80 != 0)
}

func compare(cpu *CPU, reg Byte) {
	m := cpu.fetchOperand()
	result := reg - m
	cpu.FlagSet(FlagC, reg >= m)
	cpu.FlagSet(FlagZ, reg == m)
	cpu.FlagSet(FlagN, result&0x80 != 0)
}

func opCMP(cpu *CPU) { compare(cpu, cpu.A) }
func opCPX(cpu *CPU) { compare(cpu, cpu.X) }
func opCPY(cpu *CPU) { compare(cpu, cpu.Y) }

// --- Shifts / rotates ---

func opASL(cpu *CPU) {
	v := cpu.fetchOperand()
	cpu.FlagSet(FlagC, v&0x80 != 0)
	result := v << 1
	cpu.storeResult(result)
	cpu.setNZ(result)
}

func opLSR(cpu *CPU) {
	v := cpu.fetchOperand()
	cpu.FlagSet(FlagC, v&0x01 != 0)
	result := v >> 1
	cpu.storeResult(result)
	cpu.setNZ(result)
}

func opROL(cpu *CPU) {
	v := cpu.fetchOperand()
	carryIn := cpu.FlagGet(FlagC)
	cpu.FlagSet(FlagC, v&0x80 != 0)
	result := (v << 1) | carryIn
	cpu.storeResult(result)
	cpu.setNZ(result)
}

func opROR(cpu *CPU) {
	v := cpu.fetchOperand()
	carryIn := cpu.FlagGet(FlagC)
	cpu.FlagSet(FlagC, v&0x01 != 0)
	result := (v >> 1) | (carryIn << 7)
	cpu.storeResult(result)
	cpu.setNZ(result)
}

// --- Increment / decrement ---

func opINC(cpu *CPU) {
	v := cpu.fetchOperand() + 1
	cpu.write(cpu.addrAbs, v)
	cpu.setNZ(v)
}

func opDEC(cpu *CPU) {
	v := cpu.fetchOperand() - 1
	cpu.write(cpu.addrAbs, v)
	cpu.setNZ(v)
}

func opINX(cpu *CPU) { cpu.X++; cpu.setNZ(cpu.X) }
func opINY(cpu *CPU) { cpu.Y++; cpu.setNZ(cpu.Y) }
func opDEX(cpu *CPU) { cpu.X--; cpu.setNZ(cpu.X) }
func opDEY(cpu *CPU) { cpu.Y--; cpu.setNZ(cpu.Y) }

// --- Branches ---
// Branch predicates per spec.md §4.3.6: BCC C=0, BCS C=1, BNE Z=0, BEQ Z=1,
// BPL N=0, BMI N=1, BVC V=0, BVS V=1. Each is self-contained; unlike
// original_source's C switch, none fall through to the next case (see
// spec.md §9's fall-through-bug note).

func opBCC(cpu *CPU) {
	if cpu.FlagGet(FlagC) == 0 {
		cpu.takeBranch()
	}
}
func opBCS(cpu *CPU) {
	if cpu.FlagGet(FlagC) != 0 {
		cpu.takeBranch()
	}
}
func opBNE(cpu *CPU) {
	if cpu.FlagGet(FlagZ) == 0 {
		cpu.takeBranch()
	}
}
func opBEQ(cpu *CPU) {
	if cpu.FlagGet(FlagZ) != 0 {
		cpu.takeBranch()
	}
}
func opBPL(cpu *CPU) {
	if cpu.FlagGet(FlagN) == 0 {
		cpu.takeBranch()
	}
}
func opBMI(cpu *CPU) {
	if cpu.FlagGet(FlagN) != 0 {
		cpu.takeBranch()
	}
}
func opBVC(cpu *CPU) {
	if cpu.FlagGet(FlagV) == 0 {
		cpu.takeBranch()
	}
}
func opBVS(cpu *CPU) {
	if cpu.FlagGet(FlagV) != 0 {
		cpu.takeBranch()
	}
}

// --- Jumps / subroutines ---

func opJMP(cpu *CPU) { cpu.PC = cpu.addrAbs }

func opJSR(cpu *CPU) {
	cpu.pushWord(cpu.PC - 1)
	cpu.PC = cpu.addrAbs
}

func opRTS(cpu *CPU) {
	cpu.PC = cpu.popWord() + 1
}

// opBRK implements spec.md §4.3.6's BRK protocol exactly: the pushed return
// address is PC+1 past the already-advanced opcode fetch, leaving a
// signature-byte slot; status is pushed with B forced to 1, then B is
// cleared in live state; I is set; PC loads from the IRQ/BRK vector.
func opBRK(cpu *CPU) {
	returnPC := cpu.PC + 1
	cpu.pushWord(returnPC)

	status := cpu.P | (Byte(1) << FlagB)
	cpu.push(status)

	cpu.FlagSet(FlagB, false)
	cpu.FlagSet(FlagI, true)
	cpu.PC = cpu.readWord(irqVector)
}

func opRTI(cpu *CPU) {
	cpu.P = cpu.pop()
	cpu.FlagSet(FlagU, true)
	cpu.PC = cpu.popWord()
}

// --- Stack ---

func opPHA(cpu *CPU) { cpu.push(cpu.A) }
func opPHP(cpu *CPU) { cpu.push(cpu.P | (Byte(1) << FlagB)) }

func opPLA(cpu *CPU) {
	cpu.A = cpu.pop()
	cpu.setNZ(cpu.A)
}

func opPLP(cpu *CPU) {
	cpu.P = cpu.pop()
	cpu.FlagSet(FlagU, true)
}

// --- Flags ---

func opCLC(cpu *CPU) { cpu.FlagSet(FlagC, false) }
func opCLD(cpu *CPU) { cpu.FlagSet(FlagD, false) }
func opCLI(cpu *CPU) { cpu.FlagSet(FlagI, false) }
func opCLV(cpu *CPU) { cpu.FlagSet(FlagV, false) }
func opSEC(cpu *CPU) { cpu.FlagSet(FlagC, true) }
func opSED(cpu *CPU) { cpu.FlagSet(FlagD, true) }
func opSEI(cpu *CPU) { cpu.FlagSet(FlagI, true) }

// --- Transfers ---

func opTAX(cpu *CPU) { cpu.X = cpu.A; cpu.setNZ(cpu.X) }
func opTAY(cpu *CPU) { cpu.Y = cpu.A; cpu.setNZ(cpu.Y) }
func opTXA(cpu *CPU) { cpu.A = cpu.X; cpu.setNZ(cpu.A) }
func opTYA(cpu *CPU) { cpu.A = cpu.Y; cpu.setNZ(cpu.A) }
func opTSX(cpu *CPU) { cpu.X = cpu.SP; cpu.setNZ(cpu.X) }
func opTXS(cpu *CPU) { cpu.SP = cpu.X }

// --- Misc ---

func opNOP(cpu *CPU) {}

// OpcodeInfo exposes an opcode's mnemonic and addressing mode for
// presentation layers (disassemblers, debug panels) that have no other way
// to reach the decode table, which is otherwise private to Execute.
func OpcodeInfo(opcode Byte) (name string, mode AddressingMode) {
	entry := &opcodeTable[opcode]
	return entry.Name, entry.Mode
}
