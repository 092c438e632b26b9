package parser

import (
	"bytes"
	"testing"

	"github.com/Sergeytikhonov7/Mython/internal/runtime"
)

func runSource(t *testing.T, src string) string {
	t.Helper()
	p, err := FromString(src)
	if err != nil {
		t.Fatalf("parse setup: %v", err)
	}
	program, err := p.Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var buf bytes.Buffer
	ctx := runtime.NewContext(&buf)
	if _, _, err := program.Execute(runtime.NewEnv(), ctx); err != nil {
		t.Fatalf("execute: %v", err)
	}
	ctx.Flush()
	return buf.String()
}

func TestParseIndentationScenario(t *testing.T) {
	out := runSource(t, "x = 1\nif x:\n  y = 2\n  print y\nprint x\n")
	if out != "2\n1\n" {
		t.Fatalf("got %q", out)
	}
}

func TestParseClassWithInitAndDunderAdd(t *testing.T) {
	src := "" +
		"class Vector:\n" +
		"  def __init__(self, x):\n" +
		"    self.x = x\n" +
		"  def __add__(self, other):\n" +
		"    return self.x + other.x\n" +
		"a = Vector(1)\n" +
		"b = Vector(2)\n" +
		"print a.__add__(b)\n"
	out := runSource(t, src)
	if out != "3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestParseNestedReturnThroughBlocks(t *testing.T) {
	src := "" +
		"class Picker:\n" +
		"  def pick(self, cond, other):\n" +
		"    if cond:\n" +
		"      if other:\n" +
		"        return 7\n" +
		"      return 8\n" +
		"    return 9\n" +
		"p = Picker()\n" +
		"print p.pick(True, False)\n" +
		"print p.pick(True, True)\n" +
		"print p.pick(False, False)\n"
	out := runSource(t, src)
	if out != "8\n7\n9\n" {
		t.Fatalf("got %q", out)
	}
}

func TestParseDivisionByZeroIsError(t *testing.T) {
	p, err := FromString("print 1 / 0\n")
	if err != nil {
		t.Fatal(err)
	}
	program, err := p.Parse()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	ctx := runtime.NewContext(&buf)
	_, _, err = program.Execute(runtime.NewEnv(), ctx)
	if err == nil || err.Error() != "Zero Division!" {
		t.Fatalf("got %v", err)
	}
}

func TestParseUnknownClassIsParseError(t *testing.T) {
	p, err := FromString("a = Missing()\n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse(); err == nil {
		t.Fatal("expected parse error for unknown class")
	}
}

func TestParseStringEscape(t *testing.T) {
	out := runSource(t, "print \"a\\tb\\n\"\n")
	if out != "a\tb\n\n" {
		t.Fatalf("got %q", out)
	}
}
