package main

import "fmt"

// symbolManager generates the label families needed by the translator:
// comparison labels, user goto labels scoped to their enclosing VM function,
// function entry labels, and per-call return-address labels.
//
// Counters are monotone for the life of a run and never reset between input
// files: the output is one concatenated translation unit, so a recycled
// label would collide.
//
// Every generated label starts with "symbol-". VM label syntax forbids the
// hyphen, so generated labels cannot collide with any user-written symbol.
type symbolManager struct {
	file     string // current input file stem, mangles static references
	function string // current enclosing VM function, scopes goto labels
	ifdCount int
	retCount int
}

// ifdLabel mints a fresh comparison label.
func (sm *symbolManager) ifdLabel() string {
	s := fmt.Sprintf("symbol-ifd-%d", sm.ifdCount)
	sm.ifdCount++
	return s
}

// gotoLabel mangles a user label with the enclosing function name, so that
// the same label text in two functions names two distinct targets.
func (sm *symbolManager) gotoLabel(raw string) string {
	return fmt.Sprintf("symbol-goto-%s-%s", sm.function, raw)
}

// functionLabel names a VM function's entry point.
func (sm *symbolManager) functionLabel(name string) string {
	return fmt.Sprintf("symbol-function-%s", name)
}

// returnLabel mints a fresh return-address label scoped by the calling
// function's name.
func (sm *symbolManager) returnLabel(caller string) string {
	s := fmt.Sprintf("symbol-return-address-%s-%d", caller, sm.retCount)
	sm.retCount++
	return s
}

// staticSymbol mangles a static reference with the current file stem so
// that identical indices in different files do not alias.
func (sm *symbolManager) staticSymbol(index int) string {
	return fmt.Sprintf("%s.%d", sm.file, index)
}

func (sm *symbolManager) setFunction(name string) { sm.function = name }
func (sm *symbolManager) setFile(stem string)     { sm.file = stem }
