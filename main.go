package main

import (
	"context"
	"fmt"
	"os"

	"github.com/teris-io/cli"

	"github.com/jcorbin/gohack/internal/logio"
)

var app = cli.New("Translates nand2tetris VM bytecode into Hack symbolic assembly").
	WithArg(cli.NewArg("vm_path", "a .vm file, or a directory whose .vm files form one translation unit").
		WithType(cli.TypeString)).
	WithArg(cli.NewArg("asm_path", "path of the .asm file to write").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("trace", "log every translated command to stderr").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("no-bootstrap", "suppress the SP preamble and the implicit call to Sys.init").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("tee", "mirror emitted assembly to stderr").
		WithType(cli.TypeBool)).
	WithAction(runMain)

func main() { os.Exit(app.Run(os.Args, os.Stdout)) }

func runMain(args []string, options map[string]string) int {
	log := &logio.Logger{}
	log.SetOutput(os.Stderr)

	if len(args) < 2 {
		return fail(usageError("vm_path and asm_path are required"))
	}
	vmPath, asmPath := args[0], args[1]

	files, err := resolveSources(vmPath)
	if err != nil {
		return fail(err)
	}

	out, err := os.Create(asmPath)
	if err != nil {
		return fail(fmt.Errorf("can't create %q", asmPath))
	}

	opts := []Option{WithOutput(out)}
	for _, file := range files {
		opts = append(opts, WithSourceFile(file))
	}
	if _, set := options["no-bootstrap"]; set {
		opts = append(opts, WithBootstrap(false))
	}
	if _, set := options["tee"]; set {
		opts = append(opts, WithTee(os.Stderr))
	}
	if _, set := options["trace"]; set {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	if err := New(opts...).Run(context.Background()); err != nil {
		return fail(err)
	}
	return log.ExitCode()
}

// fail reports err on stdout followed by the usage banner, per the CLI
// contract; partial output already written stays on disk for debugging.
func fail(err error) int {
	fmt.Println("Error:", err)
	fmt.Println()
	printUsage()
	return 1
}

func printUsage() {
	fmt.Print(`Usage:
  gohack [--trace] [--no-bootstrap] [--tee] <vm_path> <asm_path>

Arguments:
  vm_path     a .vm file, or a directory whose .vm files form one translation unit
  asm_path    path of the .asm file to write
`)
}

type usageError string

func (e usageError) Error() string { return string(e) }
