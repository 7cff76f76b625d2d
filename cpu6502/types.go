package cpu6502

// Byte and Word are the native 6502 data sizes. Word is little-endian when
// materialized from two adjacent memory bytes.
type Byte = byte
type Word = uint16

// Flag identifies a single bit of the processor status register P, indexed
// the same way the original hardware datasheets number them.
type Flag byte

const (
	FlagC Flag = 0 // Carry
	FlagZ Flag = 1 // Zero
	FlagI Flag = 2 // IRQ disable
	FlagD Flag = 3 // Decimal (readable/writable, no arithmetic effect)
	FlagB Flag = 4 // Break
	FlagU Flag = 5 // Unused, forced to 1
	FlagV Flag = 6 // Overflow
	FlagN Flag = 7 // Negative
)

// AddressingMode names one of the 6502's operand-resolution strategies.
type AddressingMode int

const (
	AddrIMP AddressingMode = iota // Implied / Accumulator
	AddrIMM                       // Immediate
	AddrREL                       // Relative (branches)
	AddrZP0                       // Zero-page
	AddrZPX                       // Zero-page,X
	AddrZPY                       // Zero-page,Y
	AddrABS                       // Absolute
	AddrABX                       // Absolute,X
	AddrABY                       // Absolute,Y
	AddrIND                       // Indirect (JMP only)
	AddrIZX                       // (Indirect,X)
	AddrIZY                       // (Indirect),Y
)

// Registers is a read-only snapshot of architectural CPU state, handed out
// by CPU.Snapshot so embedders never need to reach into CPU internals
// between Execute calls.
type Registers struct {
	PC     Word
	SP     Byte
	A, X, Y Byte
	P      Byte
}
