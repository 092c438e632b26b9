// Package modules loads a Mython source file into its own module
// closure: a fresh Env executed top to bottom, the way
// mliezun-grotsky/internal/interp.go's importModule gives every
// imported file its own env and globals step rather than chaining into
// the importer's scope (spec.md §3: "the enclosing module scope is a
// separate closure, not automatically chained" applies here too — a
// loaded module's top-level bindings never leak into another module's
// env by reference).
package modules

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Sergeytikhonov7/Mython/internal/parser"
	"github.com/Sergeytikhonov7/Mython/internal/runtime"
)

// Loader reads, parses and runs Mython source files, logging each
// phase through log.
type Loader struct {
	log *logrus.Logger
}

// New returns a Loader that logs through log. A nil log disables
// logging (logrus.New() with output discarded is the caller's choice).
func New(log *logrus.Logger) *Loader {
	if log == nil {
		log = logrus.New()
		log.Out = io.Discard
	}
	return &Loader{log: log}
}

// Load reads path, parses it, and executes its top-level statements
// against a fresh Env and ctx. It returns the populated Env so the
// caller (the CLI, or a future "import" statement) can read module-level
// names out of it.
func (l *Loader) Load(path string, ctx *runtime.Context) (*runtime.Env, error) {
	fields := logrus.Fields{"path": path}

	src, err := os.ReadFile(path)
	if err != nil {
		l.log.WithFields(fields).WithField("phase", "read").WithError(err).Error("module load failed")
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	p, err := parser.FromString(string(src))
	if err != nil {
		l.log.WithFields(fields).WithField("phase", "lex").WithError(err).Error("module load failed")
		return nil, err
	}

	program, err := p.Parse()
	if err != nil {
		l.log.WithFields(fields).WithField("phase", "parse").WithError(err).Error("module load failed")
		return nil, err
	}

	env := runtime.NewEnv()
	if _, _, err := program.Execute(env, ctx); err != nil {
		l.log.WithFields(fields).WithField("phase", "eval").WithError(err).Error("module load failed")
		return nil, err
	}

	l.log.WithFields(fields).Debug("module loaded")
	return env, nil
}
