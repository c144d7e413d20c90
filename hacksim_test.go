package main

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

/* A minimal Hack assembler and CPU simulator, just enough to execute the
translator's output and observe the machine state it leaves behind. Symbol
resolution follows the downstream toolchain: predefined registers, then
label definitions, then variables allocated from address 16 up. */

type hackInstr struct {
	isA  bool
	addr int16

	dest string
	comp string
	jump string
}

var hackPredefined = map[string]int16{
	"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
	"R0": 0, "R1": 1, "R2": 2, "R3": 3, "R4": 4, "R5": 5, "R6": 6, "R7": 7,
	"R8": 8, "R9": 9, "R10": 10, "R11": 11, "R12": 12, "R13": 13, "R14": 14, "R15": 15,
	"SCREEN": 16384, "KBD": 24576,
}

// hackAssemble resolves a symbolic assembly listing into instructions.
func hackAssemble(t *testing.T, asm string) []hackInstr {
	t.Helper()

	var lines []string
	for _, line := range strings.Split(asm, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	symbols := make(map[string]int16)
	for name, addr := range hackPredefined {
		symbols[name] = addr
	}

	// first pass: label definitions
	n := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "(") {
			name := strings.TrimSuffix(strings.TrimPrefix(line, "("), ")")
			_, dup := symbols[name]
			require.False(t, dup, "duplicate label %q", name)
			symbols[name] = int16(n)
			continue
		}
		n++
	}

	// second pass: instructions, allocating variables from 16
	nextVar := int16(16)
	prog := make([]hackInstr, 0, n)
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "("):
		case strings.HasPrefix(line, "@"):
			sym := strings.TrimPrefix(line, "@")
			if v, err := strconv.Atoi(sym); err == nil {
				prog = append(prog, hackInstr{isA: true, addr: int16(v)})
				break
			}
			addr, defined := symbols[sym]
			if !defined {
				addr = nextVar
				symbols[sym] = addr
				nextVar++
			}
			prog = append(prog, hackInstr{isA: true, addr: addr})
		default:
			var in hackInstr
			rest := line
			if i := strings.Index(rest, "="); i >= 0 {
				in.dest, rest = rest[:i], rest[i+1:]
			}
			if i := strings.Index(rest, ";"); i >= 0 {
				rest, in.jump = rest[:i], rest[i+1:]
			}
			in.comp = rest
			prog = append(prog, in)
		}
	}
	return prog
}

type hackSim struct {
	ram  [32768]int16
	rom  []hackInstr
	a, d int16
	pc   int
}

func newHackSim(t *testing.T, asm string) *hackSim {
	return &hackSim{rom: hackAssemble(t, asm)}
}

// run steps the machine until execution falls off the end of the program,
// failing the test if it does not halt within limit steps.
func (sim *hackSim) run(t *testing.T, limit int) {
	t.Helper()
	for steps := 0; sim.pc != len(sim.rom); steps++ {
		require.True(t, steps < limit, "program did not halt within %v steps", limit)
		require.True(t, sim.pc >= 0 && sim.pc < len(sim.rom), "pc %v out of range", sim.pc)
		sim.step(t)
	}
}

func (sim *hackSim) step(t *testing.T) {
	in := sim.rom[sim.pc]
	if in.isA {
		sim.a = in.addr
		sim.pc++
		return
	}

	res := sim.compute(t, in.comp)
	if strings.Contains(in.dest, "M") {
		sim.ram[sim.a] = res
	}
	if strings.Contains(in.dest, "D") {
		sim.d = res
	}
	if strings.Contains(in.dest, "A") {
		sim.a = res
	}

	taken := false
	switch in.jump {
	case "":
	case "JGT":
		taken = res > 0
	case "JEQ":
		taken = res == 0
	case "JGE":
		taken = res >= 0
	case "JLT":
		taken = res < 0
	case "JNE":
		taken = res != 0
	case "JLE":
		taken = res <= 0
	case "JMP":
		taken = true
	default:
		t.Fatalf("invalid jump %q", in.jump)
	}
	if taken {
		sim.pc = int(sim.a)
	} else {
		sim.pc++
	}
}

func (sim *hackSim) compute(t *testing.T, comp string) int16 {
	a, d, m := sim.a, sim.d, sim.ram[sim.a]
	switch comp {
	case "0":
		return 0
	case "1":
		return 1
	case "-1":
		return -1
	case "D":
		return d
	case "A":
		return a
	case "M":
		return m
	case "!D":
		return ^d
	case "!A":
		return ^a
	case "!M":
		return ^m
	case "-D":
		return -d
	case "-A":
		return -a
	case "-M":
		return -m
	case "D+1":
		return d + 1
	case "A+1":
		return a + 1
	case "M+1":
		return m + 1
	case "D-1":
		return d - 1
	case "A-1":
		return a - 1
	case "M-1":
		return m - 1
	case "D+A":
		return d + a
	case "D+M":
		return d + m
	case "D-A":
		return d - a
	case "D-M":
		return d - m
	case "A-D":
		return a - d
	case "M-D":
		return m - d
	case "D&A":
		return d & a
	case "D&M":
		return d & m
	case "D|A":
		return d | a
	case "D|M":
		return d | m
	}
	t.Fatalf("invalid computation %q", comp)
	return 0
}

func (sim *hackSim) String() string {
	return fmt.Sprintf("pc=%v a=%v d=%v sp=%v", sim.pc, sim.a, sim.d, sim.ram[0])
}
