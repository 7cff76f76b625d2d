package main

import (
	"bytes"
	"fmt"

	"github.com/sixtyfivec02/sixtyfivec02/cpu6502"
)

// Disassemble walks the opcode table over [start, end] and renders one
// "$addr: MNEMONIC operand {MODE}" line per instruction, reading memory
// through read rather than mutating any CPU state. It lives in the harness,
// not the core package, because it is presentation, not emulation.
func Disassemble(read func(cpu6502.Word) cpu6502.Byte, start, end cpu6502.Word) map[cpu6502.Word]string {
	var addr uint32 = uint32(start)
	lines := make(map[cpu6502.Word]string)

	for addr <= uint32(end) {
		lineAddr := cpu6502.Word(addr)

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "$%04X: ", lineAddr)

		opcode := read(cpu6502.Word(addr))
		addr++

		name, mode := cpu6502.OpcodeInfo(opcode)
		fmt.Fprintf(&buf, "%s ", name)

		switch mode {
		case cpu6502.AddrIMP:
			buf.WriteString("{IMP}")
		case cpu6502.AddrIMM:
			v := read(cpu6502.Word(addr))
			addr++
			fmt.Fprintf(&buf, "#$%02X {IMM}", v)
		case cpu6502.AddrREL:
			offset := read(cpu6502.Word(addr))
			addr++
			target := cpu6502.Word(addr) + cpu6502.Word(int8(offset))
			fmt.Fprintf(&buf, "$%02X [$%04X] {REL}", offset, target)
		case cpu6502.AddrZP0:
			lo := read(cpu6502.Word(addr))
			addr++
			fmt.Fprintf(&buf, "$%02X {ZP0}", lo)
		case cpu6502.AddrZPX:
			lo := read(cpu6502.Word(addr))
			addr++
			fmt.Fprintf(&buf, "$%02X,X {ZPX}", lo)
		case cpu6502.AddrZPY:
			lo := read(cpu6502.Word(addr))
			addr++
			fmt.Fprintf(&buf, "$%02X,Y {ZPY}", lo)
		case cpu6502.AddrABS:
			lo := read(cpu6502.Word(addr))
			addr++
			hi := read(cpu6502.Word(addr))
			addr++
			fmt.Fprintf(&buf, "$%04X {ABS}", cpu6502.Word(hi)<<8|cpu6502.Word(lo))
		case cpu6502.AddrABX:
			lo := read(cpu6502.Word(addr))
			addr++
			hi := read(cpu6502.Word(addr))
			addr++
			fmt.Fprintf(&buf, "$%04X,X {ABX}", cpu6502.Word(hi)<<8|cpu6502.Word(lo))
		case cpu6502.AddrABY:
			lo := read(cpu6502.Word(addr))
			addr++
			hi := read(cpu6502.Word(addr))
			addr++
			fmt.Fprintf(&buf, "$%04X,Y {ABY}", cpu6502.Word(hi)<<8|cpu6502.Word(lo))
		case cpu6502.AddrIND:
			lo := read(cpu6502.Word(addr))
			addr++
			hi := read(cpu6502.Word(addr))
			addr++
			fmt.Fprintf(&buf, "($%04X) {IND}", cpu6502.Word(hi)<<8|cpu6502.Word(lo))
		case cpu6502.AddrIZX:
			lo := read(cpu6502.Word(addr))
			addr++
			fmt.Fprintf(&buf, "($%02X,X) {IZX}", lo)
		case cpu6502.AddrIZY:
			lo := read(cpu6502.Word(addr))
			addr++
			fmt.Fprintf(&buf, "($%02X),Y {IZY}", lo)
		}

		lines[lineAddr] = buf.String()
	}

	return lines
}
