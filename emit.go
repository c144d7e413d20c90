package main

import "strconv"

/* Emitter primitives: one pure function per VM opcode family, each returning
a Hack assembly fragment as a list of instructions. The caller supplies any
freshly minted labels; nothing here touches the symbol manager.

Scratch register discipline, shared by every fragment that touches R13-R15:

	R13  holds the computed target address while popping into a segment,
	     because loading the popped value into D clobbers A
	R14  holds the saved frame pointer during return
	R15  holds the return address during return

No fragment leaves a live value in R13-R15 across a VM command boundary.
*/

// popToD decrements SP and loads the popped word into D.
func popToD() []string {
	return []string{
		"@SP",
		"M=M-1",
		"A=M",
		"D=M",
	}
}

// popToM decrements SP and addresses the popped word, exposing it as M.
func popToM() []string {
	return []string{
		"@SP",
		"M=M-1",
		"A=M",
	}
}

// pushFromD writes D to the word at SP and increments SP.
func pushFromD() []string {
	return []string{
		"@SP",
		"A=M",
		"M=D",
		"@SP",
		"M=M+1",
	}
}

func cat(frags ...[]string) []string {
	var out []string
	for _, frag := range frags {
		out = append(out, frag...)
	}
	return out
}

// emitBinary pops two operands and applies op, writing the result back onto
// the stack. The second operand popped is the left operand: sub computes
// M=M-D, not D-M. The commutative operators are written in the D+M, D&M and
// D|M forms of the Hack computation table.
func emitBinary(op string) []string {
	comp := "D" + op + "M"
	if op == "-" {
		comp = "M-D"
	}
	return cat(
		popToD(),
		popToM(),
		[]string{"M=" + comp},
		[]string{"@SP", "M=M+1"},
	)
}

// emitUnary applies op to the top of the stack in place.
func emitUnary(op string) []string {
	return cat(
		popToM(),
		[]string{"M=" + op + "M"},
		[]string{"@SP", "M=M+1"},
	)
}

// emitCompare subtracts the two topmost words and pushes -1 when the
// difference satisfies jump (JEQ, JGT or JLT), 0 otherwise. The branch
// targets derive from label, which must be unique per use; they stay
// symbolic so that the emitted code is position-independent and composes
// across files.
func emitCompare(jump, label string) []string {
	return cat(
		emitBinary("-"),
		popToD(),
		[]string{
			"@" + label + "-true",
			"D;" + jump,
			"@0",
			"D=A",
			"@" + label + "-false",
			"0;JMP",
			"(" + label + "-true)",
			"D=-1",
			"(" + label + "-false)",
		},
		pushFromD(),
	)
}

// emitPushConstant pushes the literal n.
func emitPushConstant(n int) []string {
	return cat(
		[]string{"@" + strconv.Itoa(n), "D=A"},
		pushFromD(),
	)
}

// emitPushSegment pushes segment[index] for a base-pointer segment: base is
// a register (LCL, ARG, THIS, THAT) holding the segment's base address.
func emitPushSegment(base string, index int) []string {
	return cat(
		[]string{
			"@" + base,
			"D=M",
			"@" + strconv.Itoa(index),
			"A=D+A",
			"D=M",
		},
		pushFromD(),
	)
}

// emitPushFixed pushes segment[index] for a fixed-range segment: base names
// a register whose own address, not contents, anchors the segment (R5 for
// temp, THIS i.e. R3 for pointer).
func emitPushFixed(base string, index int) []string {
	return cat(
		[]string{
			"@" + base,
			"D=A",
			"@" + strconv.Itoa(index),
			"A=D+A",
			"D=M",
		},
		pushFromD(),
	)
}

// emitPushStatic pushes the per-file global named by sym; the downstream
// assembler allocates it.
func emitPushStatic(sym string) []string {
	return cat(
		[]string{"@" + sym, "D=M"},
		pushFromD(),
	)
}

// emitPopSegment pops the top of the stack into segment[index] for a
// base-pointer segment. The target address is computed first and parked in
// R13, since popping into D clobbers A.
func emitPopSegment(base string, index int) []string {
	return cat(
		[]string{
			"@" + base,
			"D=M",
			"@" + strconv.Itoa(index),
			"D=D+A",
			"@R13",
			"M=D",
		},
		popToD(),
		[]string{"@R13", "A=M", "M=D"},
	)
}

// emitPopFixed is emitPopSegment for fixed-range segments.
func emitPopFixed(base string, index int) []string {
	return cat(
		[]string{
			"@" + base,
			"D=A",
			"@" + strconv.Itoa(index),
			"D=D+A",
			"@R13",
			"M=D",
		},
		popToD(),
		[]string{"@R13", "A=M", "M=D"},
	)
}

// emitPopStatic pops the top of the stack into the per-file global sym.
func emitPopStatic(sym string) []string {
	return cat(
		popToD(),
		[]string{"@" + sym, "M=D"},
	)
}

// emitLabel defines an assembly label.
func emitLabel(label string) []string {
	return []string{"(" + label + ")"}
}

// emitGoto jumps unconditionally to label.
func emitGoto(label string) []string {
	return []string{"@" + label, "0;JMP"}
}

// emitIfGoto pops the top of the stack and jumps to label when it is
// non-zero.
func emitIfGoto(label string) []string {
	return cat(
		popToD(),
		[]string{"@" + label, "D;JNE"},
	)
}

// emitFunction defines a function's entry label and zero-initializes locals
// slots by pushing that many zeros.
func emitFunction(label string, locals int) []string {
	out := []string{"(" + label + ")"}
	for i := 0; i < locals; i++ {
		out = append(out, "@0", "D=A")
		out = append(out, pushFromD()...)
	}
	return out
}

// emitCall realizes the calling-convention prologue: push the return
// address, save the caller's LCL, ARG, THIS and THAT, point ARG at the
// pushed arguments (SP - argc - 5), point LCL at SP, and jump. The return
// label is defined immediately after the jump.
func emitCall(funcLabel string, argc int, retLabel string) []string {
	out := cat(
		[]string{"@" + retLabel, "D=A"},
		pushFromD(),
	)
	for _, reg := range []string{"LCL", "ARG", "THIS", "THAT"} {
		out = append(out, "@"+reg, "D=M")
		out = append(out, pushFromD()...)
	}
	out = append(out,
		"@SP",
		"D=M",
		"@"+strconv.Itoa(argc),
		"D=D-A",
		"@5",
		"D=D-A",
		"@ARG",
		"M=D",

		"@SP",
		"D=M",
		"@LCL",
		"M=D",

		"@"+funcLabel,
		"0;JMP",
		"("+retLabel+")",
	)
	return out
}

// emitReturn realizes the epilogue. Ordering is load-bearing: the return
// address must be captured from M[frame-5] before LCL is restored (which
// invalidates the frame pointer in R14), and the return value must land in
// M[ARG] before ARG is restored.
func emitReturn() []string {
	out := []string{
		"@LCL",
		"D=M",
		"@R14",
		"M=D",

		"@R14",
		"D=M",
		"@5",
		"A=D-A",
		"D=M",
		"@R15",
		"M=D",
	}
	out = append(out, popToD()...)
	out = append(out,
		"@ARG",
		"A=M",
		"M=D",

		"@ARG",
		"D=M",
		"D=D+1",
		"@SP",
		"M=D",
	)
	for _, reg := range []string{"THAT", "THIS", "ARG", "LCL"} {
		out = append(out, "@R14", "M=M-1", "A=M", "D=M", "@"+reg, "M=D")
	}
	out = append(out, "@R15", "A=M", "0;JMP")
	return out
}

// emitBootstrap initializes SP to the base of the global stack. The driver
// follows it with the translation of `call Sys.init 0`.
func emitBootstrap() []string {
	return []string{
		"@256",
		"D=A",
		"@SP",
		"M=D",
	}
}
