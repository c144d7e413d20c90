package main

import (
	"io"
	"os"

	"github.com/jcorbin/gohack/internal/flushio"
)

// Option configures a Translator under construction.
type Option interface{ apply(xl *Translator) }

var defaultOptions = Options(
	withOutput(io.Discard),
	withBootstrap(true),
)

// Options combines any number of options into one.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil, noption:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, opt)
		}
	}
	switch len(res) {
	case 0:
		return noption{}
	case 1:
		return res[0]
	default:
		return res
	}
}

type noption struct{}

func (noption) apply(xl *Translator) {}

type options []Option

func (opts options) apply(xl *Translator) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(xl)
		}
	}
}

// WithSourceFile queues the named .vm file for translation; it is opened
// only when the run reaches it.
func WithSourceFile(path string) Option { return sourceFileOption(path) }

// WithSource queues an in-memory .vm input under the given name.
func WithSource(name string, r io.Reader) Option { return sourceOption{name, r} }

// WithOutput directs emitted assembly to w.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee mirrors emitted assembly into w as well.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithBootstrap controls whether the run opens with the SP preamble and the
// implicit `call Sys.init 0`; on by default.
func WithBootstrap(enabled bool) Option { return withBootstrap(enabled) }

// WithLogf sets a printf-style trace sink.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

type sourceFileOption string

func (path sourceFileOption) apply(xl *Translator) {
	xl.sources = append(xl.sources, source{
		name: string(path),
		open: func() (io.ReadCloser, error) {
			f, err := os.Open(string(path))
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	})
}

type sourceOption struct {
	name string
	r    io.Reader
}

func (src sourceOption) apply(xl *Translator) {
	xl.sources = append(xl.sources, source{
		name: src.name,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(src.r), nil
		},
	})
}

type outputOption struct{ io.Writer }

func (o outputOption) apply(xl *Translator) {
	if xl.out != nil {
		xl.out.Flush()
	}
	xl.out = flushio.NewWriteFlusher(o.Writer)
	if cl, ok := o.Writer.(io.Closer); ok {
		xl.closers = append(xl.closers, cl)
	}
}

type teeOption struct{ io.Writer }

func (o teeOption) apply(xl *Translator) {
	xl.out = flushio.WriteFlushers(xl.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		xl.closers = append(xl.closers, cl)
	}
}

type withBootstrap bool

func (b withBootstrap) apply(xl *Translator) { xl.bootstrap = bool(b) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(xl *Translator) { xl.logfn = logfn }

func withOutput(w io.Writer) outputOption { return outputOption{w} }
