package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/gohack/internal/srcline"
)

// commandType classifies a VM command. The nine arithmetic mnemonics all
// classify as cmdArithmetic; anything unrecognized is cmdNone.
type commandType int

const (
	cmdNone commandType = iota
	cmdArithmetic
	cmdPush
	cmdPop
	cmdLabel
	cmdGoto
	cmdIfGoto
	cmdFunction
	cmdReturn
	cmdCall
)

func (ct commandType) String() string {
	switch ct {
	case cmdArithmetic:
		return "arithmetic"
	case cmdPush:
		return "push"
	case cmdPop:
		return "pop"
	case cmdLabel:
		return "label"
	case cmdGoto:
		return "goto"
	case cmdIfGoto:
		return "if-goto"
	case cmdFunction:
		return "function"
	case cmdReturn:
		return "return"
	case cmdCall:
		return "call"
	}
	return "none"
}

var arithmeticMnemonics = map[string]bool{
	"add": true, "sub": true, "neg": true,
	"eq": true, "gt": true, "lt": true,
	"and": true, "or": true, "not": true,
}

// parser reads one .vm file as a stream of commands, stripping blank lines
// and //-to-end-of-line comments. It reads one command ahead so that
// hasMoreCommands can answer without consuming input.
type parser struct {
	lines   *srcline.Reader
	cur     []string
	curLoc  srcline.Location
	next    []string
	nextLoc srcline.Location
}

// newParser creates a parser over one .vm input stream; name labels source
// locations in diagnostics.
func newParser(name string, r io.Reader) *parser {
	p := &parser{lines: srcline.NewReader(name, r)}
	p.next, p.nextLoc = p.scan()
	return p
}

// scan returns the fields of the next non-blank comment-stripped line, or
// nil at end of input.
func (p *parser) scan() ([]string, srcline.Location) {
	for {
		line, ok := p.lines.Next()
		if !ok {
			return nil, p.lines.Loc()
		}
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields, p.lines.Loc()
		}
	}
}

// hasMoreCommands reports whether another command is available.
func (p *parser) hasMoreCommands() bool { return p.next != nil }

// advance consumes the next command, making it current; must be preceded by
// a true hasMoreCommands.
func (p *parser) advance() {
	p.cur, p.curLoc = p.next, p.nextLoc
	p.next, p.nextLoc = p.scan()
}

// commandType classifies the current command.
func (p *parser) commandType() commandType {
	if len(p.cur) == 0 {
		return cmdNone
	}
	switch word := p.cur[0]; {
	case arithmeticMnemonics[word]:
		return cmdArithmetic
	case word == "push":
		return cmdPush
	case word == "pop":
		return cmdPop
	case word == "label":
		return cmdLabel
	case word == "goto":
		return cmdGoto
	case word == "if-goto":
		return cmdIfGoto
	case word == "function":
		return cmdFunction
	case word == "return":
		return cmdReturn
	case word == "call":
		return cmdCall
	}
	return cmdNone
}

// arg1 returns the arithmetic mnemonic for arithmetic commands, and the
// first operand for every other command except return (whose arg1 is
// undefined).
func (p *parser) arg1() string {
	if p.commandType() == cmdArithmetic {
		return p.cur[0]
	}
	if len(p.cur) > 1 {
		return p.cur[1]
	}
	return ""
}

// arg2 returns the integer second operand of a push, pop, function or call
// command.
func (p *parser) arg2() (int, error) {
	if len(p.cur) < 3 {
		return 0, fmt.Errorf("command %q has no second operand", p.text())
	}
	n, err := strconv.Atoi(p.cur[2])
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q in %q", p.cur[2], p.text())
	}
	return n, nil
}

// text reconstructs the current command's source text with normalized
// spacing.
func (p *parser) text() string { return strings.Join(p.cur, " ") }

// loc returns the source location of the current command.
func (p *parser) loc() srcline.Location { return p.curLoc }

// err returns any underlying read error once input is exhausted.
func (p *parser) err() error { return p.lines.Err() }
