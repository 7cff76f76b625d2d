package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"

	"github.com/sixtyfivec02/sixtyfivec02/cpu6502"
)

// Command line flags, named the way the teacher's main.go names them.
var (
	flagDebug   bool
	flagLogging bool
	flagProgram string
	flagOrigin  uint
)

// romOffset is where a loaded program image lands in memory, matching the
// teacher's romOffset = 0x8000 NES cartridge convention. The core itself
// never enforces this; it is purely a harness-level loading default.
const romOffset cpu6502.Word = 0x8000

func main() {
	parseFlags()

	cpu, bus, err := newMachine()
	if err != nil {
		log.Println(err)
		os.Exit(0)
	}

	if flagProgram != "" {
		if err := loadProgram(bus, flagProgram, cpu6502.Word(flagOrigin)); err != nil {
			log.Println(err)
			os.Exit(0)
		}
		cpu.SetPC(cpu6502.Word(flagOrigin))
		disasm := Disassemble(bus.Read, cpu6502.Word(flagOrigin), 0xFFF9)
		for addr := cpu6502.Word(flagOrigin); ; addr++ {
			if line, ok := disasm[addr]; ok {
				fmt.Println(line)
			}
			if addr == 0xFFF9 {
				break
			}
		}
	}

	fmt.Println("Running seed tests...")
	result := runSeedTests()
	fmt.Printf("\n%d passed, %d failed\n", result.pass, result.fail)

	if flagDebug {
		pixelgl.Run(func() { runDebugPanel(cpu, bus) })
	}

	os.Exit(0)
}

func parseFlags() {
	flag.BoolVar(&flagDebug, "d", false, "enable debug panel")
	flag.BoolVar(&flagLogging, "l", false, "enable per-opcode logging")
	flag.StringVar(&flagProgram, "p", "", "path to a raw binary program image to load")
	flag.UintVar(&flagOrigin, "origin", uint(romOffset), "load address for -p")

	flag.Parse()
}

// newMachine wires a fresh Bus and CPU, optionally attaching a per-run
// *log.Logger the way the teacher's NewCpu6502 constructor attaches one.
func newMachine() (*cpu6502.CPU, *cpu6502.Bus, error) {
	bus := cpu6502.NewBus()
	cpu := cpu6502.NewCPU(bus)

	if flagLogging {
		logger, err := newRunLogger()
		if err != nil {
			return nil, nil, errors.Wrap(err, "setting up cpu logger")
		}
		cpu.Logger = logger
	}

	cpu.Reset()
	return cpu, bus, nil
}

func newRunLogger() (*log.Logger, error) {
	if err := os.MkdirAll("./logs", 0755); err != nil {
		return nil, errors.Wrap(err, "creating logs directory")
	}

	name := fmt.Sprintf("./logs/cpu%d.log", time.Now().UnixNano())
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", name)
	}

	return log.New(f, "", log.LstdFlags), nil
}

// loadProgram reads a raw binary image from path, wraps it in a
// cpu6502.Program at origin, and loads it onto bus, wrapping any I/O
// failure with context the way the harness's pkg/errors dependency is
// meant to be exercised.
func loadProgram(bus *cpu6502.Bus, path string, origin cpu6502.Word) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "loading program image %s", path)
	}

	if uint32(origin)+uint32(len(data)) > 0x10000 {
		return errors.Errorf("program image %s overflows address space at origin $%04X", path, origin)
	}

	prog := cpu6502.Program{Name: path, Origin: origin, Code: data}
	prog.Load(bus)

	return nil
}

func runDebugPanel(cpu *cpu6502.CPU, bus *cpu6502.Bus) {
	panel, err := newDebugPanel()
	if err != nil {
		log.Println(errors.Wrap(err, "opening debug panel"))
		return
	}

	for !panel.closed() {
		cpu.Execute(1000)
		panel.draw(cpu, bus)
	}
}
