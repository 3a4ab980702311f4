package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	// Adjust this to your actual module path
	loxi "github.com/mrizaln/crafting-interpreters"
)

const (
	appName     = "loxi"
	historyFile = ".loxi_history"
	configFile  = ".loxi.toml"
	promptMain  = ">>> "
)

var (
	banner   = fmt.Sprintf("Loxi %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", loxi.Version)
	useColor = true
)

func paint(code, s string) string {
	if !useColor {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func red(s string) string    { return paint("31", s) }
func yellow(s string) string { return paint("33", s) }

// Exit statuses follow the sysexits convention: 65 for malformed input,
// 70 for runtime failures.
const (
	exitOK      = 0
	exitDataErr = 65
	exitSwErr   = 70
)

func main() {
	cfg := loadConfig()
	useColor = cfg.colorEnabled()

	if len(os.Args) < 2 {
		os.Exit(cmdRepl(cfg))
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(cfg))
	case "tokens":
		os.Exit(cmdTokens(os.Args[2:]))
	case "ast":
		os.Exit(cmdAst(os.Args[2:]))
	case "version":
		fmt.Println(loxi.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		// `loxi script.lox` is shorthand for `loxi run script.lox`.
		if !strings.HasPrefix(cmd, "-") {
			if _, err := os.Stat(cmd); err == nil {
				os.Exit(cmdRun(os.Args[1:]))
			}
		}
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Loxi %s (built %s)

Usage:
  %s                        Start the REPL.
  %s run <file.lox>         Run a script (or just: %s <file.lox>).
  %s tokens <file.lox>      Scan a script and dump its token stream.
  %s ast <file.lox>         Parse a script and print its syntax tree.
  %s version                Print the compiled version

`, loxi.Version, loxi.BuildDate, appName, appName, appName, appName, appName, appName)
}

// readScript loads a source file, rejecting empty input and guaranteeing a
// trailing newline so the last line scans like any other.
func readScript(file string) (string, bool) {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return "", false
	}
	if len(src) == 0 {
		fmt.Fprintf(os.Stderr, "%s: empty file: %s\n", appName, file)
		return "", false
	}
	text := string(src)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, true
}

// runSource drives one source text through the full pipeline, rendering every
// diagnostic with its caret snippet. Scanning reports all its errors at once;
// parsing and evaluation stop at the first.
func runSource(ip *loxi.Interpreter, src string) int {
	res := loxi.Scan(src)
	if len(res.Errors) > 0 {
		for _, le := range res.Errors {
			fmt.Fprintln(os.Stderr, red(loxi.WrapErrorWithSource(le, res.Lines).Error()))
		}
		return exitDataErr
	}

	prog, perr := loxi.Parse(res.Tokens, ip.Interner())
	if perr != nil {
		fmt.Fprintln(os.Stderr, red(loxi.WrapErrorWithSource(perr, res.Lines).Error()))
		return exitDataErr
	}

	if err := ip.Interpret(prog); err != nil {
		fmt.Fprintln(os.Stderr, red(loxi.WrapErrorWithSource(err, res.Lines).Error()))
		return exitSwErr
	}
	return exitOK
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.lox>\n", appName)
		return 2
	}

	src, ok := readScript(args[0])
	if !ok {
		return 1
	}
	return runSource(loxi.NewInterpreter(), src)
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(cfg Config) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := cfg.HistoryFile
	if histPath == "" {
		histPath = filepath.Join(home, historyFile)
	}
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = promptMain
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	// One interpreter for the whole session: definitions persist from line
	// to line, and a failed line leaves the globals it managed to define.
	ip := loxi.NewInterpreter()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			break
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return exitOK
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		ln.AppendHistory(line)
		runSource(ip, line+"\n")
	}

	return exitOK
}

// -----------------------------------------------------------------------------
// tokens
// -----------------------------------------------------------------------------

func cmdTokens(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s tokens <file.lox>\n", appName)
		return 2
	}

	src, ok := readScript(args[0])
	if !ok {
		return 1
	}

	res := loxi.Scan(src)
	for _, tok := range res.Tokens {
		fmt.Println(tok)
	}
	if len(res.Errors) > 0 {
		for _, le := range res.Errors {
			fmt.Fprintln(os.Stderr, red(loxi.WrapErrorWithSource(le, res.Lines).Error()))
		}
		return exitDataErr
	}
	return exitOK
}

// -----------------------------------------------------------------------------
// ast
// -----------------------------------------------------------------------------

func cmdAst(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s ast <file.lox>\n", appName)
		return 2
	}

	src, ok := readScript(args[0])
	if !ok {
		return 1
	}

	res := loxi.Scan(src)
	if len(res.Errors) > 0 {
		for _, le := range res.Errors {
			fmt.Fprintln(os.Stderr, red(loxi.WrapErrorWithSource(le, res.Lines).Error()))
		}
		return exitDataErr
	}

	prog, perr := loxi.Parse(res.Tokens, loxi.NewInterner())
	if perr != nil {
		fmt.Fprintln(os.Stderr, red(loxi.WrapErrorWithSource(perr, res.Lines).Error()))
		return exitDataErr
	}

	out := prog.String()
	if out != "" {
		fmt.Println(out)
	}
	return exitOK
}
