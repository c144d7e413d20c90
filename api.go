package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jcorbin/gohack/internal/flushio"
	"github.com/jcorbin/gohack/internal/panicerr"
)

// New creates a Translator with the given options applied over defaults.
func New(opts ...Option) *Translator {
	var xl Translator
	defaultOptions.apply(&xl)
	Options(opts...).apply(&xl)
	return &xl
}

// Translator drives one batch translation run. It owns the output stream and
// the symbol state for its entire lifetime; input files are opened, read to
// exhaustion and released one at a time, in list order.
type Translator struct {
	logfn     func(mess string, args ...interface{})
	sources   []source
	out       flushio.WriteFlusher
	closers   []io.Closer
	bootstrap bool
}

// source is one pending .vm input: a name (used both in diagnostics and,
// stemmed, for static mangling) and a way to open its content.
type source struct {
	name string
	open func() (io.ReadCloser, error)
}

// Run performs the translation, recovering any internal panic as an error.
func (xl *Translator) Run(ctx context.Context) error {
	return panicerr.Recover("translator", func() error {
		return xl.run(ctx)
	})
}

func (xl *Translator) run(ctx context.Context) (rerr error) {
	defer func() {
		// flush whatever was emitted, even on a failed run
		if ferr := xl.out.Flush(); rerr == nil {
			rerr = ferr
		}
		for i := len(xl.closers) - 1; i >= 0; i-- {
			if cerr := xl.closers[i].Close(); rerr == nil {
				rerr = cerr
			}
		}
	}()

	cw := newCodeWriter(xl.out)
	if xl.bootstrap {
		if err := cw.writeInit(); err != nil {
			return err
		}
	}
	for _, src := range xl.sources {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := xl.translateSource(cw, src); err != nil {
			return err
		}
	}
	return nil
}

func (xl *Translator) translateSource(cw *codeWriter, src source) error {
	rc, err := src.open()
	if err != nil {
		return err
	}
	defer rc.Close()

	xl.logf("file %v", src.name)
	if err := cw.setFileName(fileStem(src.name)); err != nil {
		return err
	}

	p := newParser(src.name, rc)
	for p.hasMoreCommands() {
		p.advance()
		if err := xl.translateCommand(cw, p); err != nil {
			return fmt.Errorf("%v: %w", p.loc(), err)
		}
	}
	return p.err()
}

func (xl *Translator) translateCommand(cw *codeWriter, p *parser) error {
	xl.logf("%v %s", p.loc(), p.text())
	switch ct := p.commandType(); ct {
	case cmdArithmetic:
		return cw.writeArithmetic(p.arg1())
	case cmdPush, cmdPop:
		index, err := p.arg2()
		if err != nil {
			return err
		}
		return cw.writePushPop(ct.String(), p.arg1(), index)
	case cmdLabel:
		return cw.writeLabel(p.arg1())
	case cmdGoto:
		return cw.writeGoto(p.arg1())
	case cmdIfGoto:
		return cw.writeIfGoto(p.arg1())
	case cmdFunction:
		locals, err := p.arg2()
		if err != nil {
			return err
		}
		return cw.writeFunction(p.arg1(), locals)
	case cmdReturn:
		return cw.writeReturn()
	case cmdCall:
		argc, err := p.arg2()
		if err != nil {
			return err
		}
		return cw.writeCall(p.arg1(), argc)
	}
	return unknownCommandError{p.text()}
}

func (xl *Translator) logf(mess string, args ...interface{}) {
	if xl.logfn != nil {
		xl.logfn(mess, args...)
	}
}
