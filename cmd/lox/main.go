// Command lox runs Lox programs. With no arguments, it reads and runs one
// line at a time from standard input. With one argument, it runs the named
// script.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/zephyrtronium/lox"
)

// Exit codes, following sysexits.h.
const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitNoInput = 66
	exitIOErr   = 74
	exitConfig  = 78
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options are the settings from flags and the config file.
type options struct {
	cfg  config
	ast  bool
	enc  encoding.Encoding
	errs io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lox [flags] [script]")
		fs.PrintDefaults()
	}
	var (
		cfgPath string
		trace   bool
		ast     bool
		encName string
		version bool
	)
	fs.StringVar(&cfgPath, "config", "", "path to YAML config file (default $LOX_CONFIG or ~/.config/lox/config.yaml)")
	fs.BoolVar(&trace, "trace", false, "log each statement to stderr before it runs")
	fs.BoolVar(&ast, "ast", false, "print parsed statements instead of running them")
	fs.StringVar(&encName, "encoding", "", "text encoding of scripts (default utf8 or from config)")
	fs.BoolVar(&version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if version {
		fmt.Fprintf(stdout, "lox %s (%s %s)\n", lox.Version, runtime.GOOS, platformVersion())
		return exitOK
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "lox:", err)
		return exitConfig
	}
	if trace {
		cfg.Trace = true
	}
	badEnc := exitConfig
	if encName != "" {
		cfg.Encoding = encName
		badEnc = exitUsage
	}
	enc, err := lox.Encoding(cfg.Encoding)
	if err != nil {
		fmt.Fprintln(stderr, "lox:", err)
		return badEnc
	}

	in := lox.NewInterpreter(stdout, stderr)
	if cfg.Trace {
		defer startTrace(in, stderr, cfg.TimeFormat)()
	}
	opts := options{cfg: cfg, ast: ast, enc: enc, errs: stderr}
	if fs.NArg() == 1 {
		return runFile(in, fs.Arg(0), stdout, opts)
	}
	return repl(in, stdin, stdout, opts)
}

// runFile runs a script once.
func runFile(in *lox.Interpreter, path string, stdout io.Writer, opts options) int {
	src, err := lox.ReadFile(path, opts.enc)
	if err != nil {
		fmt.Fprintln(opts.errs, "Could not open:", path)
		return exitNoInput
	}
	if opts.ast {
		if !printAST(in, src, stdout) {
			return exitDataErr
		}
		return exitOK
	}
	if err := in.DoString(src); err != nil || in.Errs.HadError() {
		return exitDataErr
	}
	return exitOK
}

// repl runs each line of stdin until an empty line or the end of input.
// Errors on one line do not stop later lines.
func repl(in *lox.Interpreter, stdin io.Reader, stdout io.Writer, opts options) int {
	interactive := false
	if f, ok := stdin.(*os.File); ok {
		interactive = isTerminal(f)
	}
	rd := bufio.NewReader(stdin)
	for {
		if interactive {
			fmt.Fprint(stdout, opts.cfg.Prompt)
		}
		line, err := rd.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintln(opts.errs, "lox:", err)
			return exitIOErr
		}
		eof := err != nil
		if eof && line == "" {
			return exitOK
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line == "" {
			fmt.Fprintln(stdout, opts.cfg.ExitMessage)
			return exitOK
		}
		in.Errs.Reset()
		switch {
		case strings.TrimSpace(line) == ":env":
			printEnv(in.Env(), stdout)
		case opts.ast:
			printAST(in, line, stdout)
		default:
			// Errors are already reported.
			in.DoString(line)
		}
		if eof {
			return exitOK
		}
	}
}

// printAST parses src and prints its statements one per line. It returns
// false if there were syntax errors.
func printAST(in *lox.Interpreter, src string, w io.Writer) bool {
	stmts, err := in.Compile(src)
	if err != nil {
		return false
	}
	for _, s := range stmts {
		fmt.Fprintln(w, s)
	}
	return true
}

// printEnv lists the visible variables, innermost first.
func printEnv(env *lox.Environment, w io.Writer) {
	for _, b := range env.Names() {
		fmt.Fprintf(w, "%s%s = %s\n", strings.Repeat("  ", b.Depth), b.Name, b.Value.Repr())
	}
}
