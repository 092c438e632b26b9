// Command mython runs a Mython source file, or drops into an
// interactive REPL with -i, the way mliezun-grotsky/cmd/grotsky/main.go
// runs a single source file, generalized with the flag-driven mode
// switch and colored diagnostics the rest of the example pack reaches
// for in its interpreter CLIs.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/bytes"
	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/Sergeytikhonov7/Mython/internal/modules"
	"github.com/Sergeytikhonov7/Mython/internal/parser"
	"github.com/Sergeytikhonov7/Mython/internal/runtime"
)

func main() {
	interactive := flag.Bool("i", false, "start an interactive REPL instead of running a file")
	verbose := flag.Bool("debug", false, "log each interpreter phase")
	outPath := flag.String("o", "", "write output to a file instead of stdout")
	flag.Parse()

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	out, closeOut, err := openOutput(*outPath)
	if err != nil {
		log.WithError(err).Fatal("opening -o output file")
	}
	defer closeOut()

	if *interactive {
		runREPL(log, out)
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: mython [-o output] /path/to/source.my")
		fmt.Println("       mython [-o output] -i")
		os.Exit(2)
	}

	absPath, err := filepath.Abs(args[0])
	if err != nil {
		log.WithError(err).Fatal("resolving source path")
	}

	if info, err := os.Stat(absPath); err == nil {
		log.WithFields(logrus.Fields{"path": absPath, "size": bytes.Format(info.Size())}).Debug("running file")
	}

	ctx := runtime.NewContext(out)
	if _, err := modules.New(log).Load(absPath, ctx); err != nil {
		ctx.Flush()
		fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		os.Exit(1)
	}
	ctx.Flush()
}

// openOutput resolves -o: "" keeps the default os.Stdout (closeOut is a
// no-op), otherwise the named file is created/truncated and closeOut
// closes it once the caller is done writing.
func openOutput(path string) (w io.Writer, closeOut func(), err error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// runREPL reads one chunk at a time (one or more lines, closed by a
// blank line) and executes it against a single running Env, so
// bindings persist across prompts.
func runREPL(log *logrus.Logger, w io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	env := runtime.NewEnv()

	// Complete the current line against the REPL's own module-scope
	// variable names (github.com/peterh/liner's Completer hook).
	line.SetCompleter(func(prefix string) []string {
		var matches []string
		for _, name := range env.Names() {
			if strings.HasPrefix(name, prefix) {
				matches = append(matches, name)
			}
		}
		return matches
	})

	out := bufio.NewWriter(w)
	ctx := &runtime.Context{Output: out}

	fmt.Println(color.Cyan("Mython REPL — blank line runs the buffered block, Ctrl-D exits."))
	for {
		chunk, err := readChunk(line)
		if err == liner.ErrPromptAborted || err != nil {
			fmt.Println()
			return
		}
		if chunk == "" {
			continue
		}
		line.AppendHistory(chunk)

		p, err := parser.FromString(chunk + "\n")
		if err != nil {
			fmt.Fprintln(os.Stderr, color.Red(err.Error()))
			log.WithError(err).Debug("repl lex/parse failed")
			continue
		}
		program, err := p.Parse()
		if err != nil {
			fmt.Fprintln(os.Stderr, color.Red(err.Error()))
			log.WithError(err).Debug("repl parse failed")
			continue
		}
		if _, _, err := program.Execute(env, ctx); err != nil {
			fmt.Fprintln(os.Stderr, color.Red(err.Error()))
			log.WithError(err).Debug("repl eval failed")
			continue
		}
		out.Flush()
	}
}

// readChunk accumulates lines under a ">>> "/"... " prompt pair until a
// blank line closes the block, matching how an indentation-sensitive
// language's REPL must buffer a multi-line if/class/def before lexing.
func readChunk(line *liner.State) (string, error) {
	first, err := line.Prompt(">>> ")
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", nil
	}
	chunk := first
	for {
		next, err := line.Prompt("... ")
		if err != nil || next == "" {
			break
		}
		chunk += "\n" + next
	}
	return chunk, nil
}
