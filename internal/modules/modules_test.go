package modules

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Sergeytikhonov7/Mython/internal/runtime"
)

func TestLoadRunsFileAndPopulatesEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greet.my")
	if err := os.WriteFile(path, []byte("x = 1 + 1\nprint x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	ctx := runtime.NewContext(&out)
	env, err := New(nil).Load(path, ctx)
	if err != nil {
		t.Fatal(err)
	}
	ctx.Flush()
	if out.String() != "2\n" {
		t.Fatalf("got %q", out.String())
	}
	v, ok := env.Get("x")
	if !ok || v.Get().(runtime.Number) != 2 {
		t.Fatalf("expected x bound to 2, got %v", v)
	}
}

func TestLoadMissingFileIsError(t *testing.T) {
	var out bytes.Buffer
	ctx := runtime.NewContext(&out)
	if _, err := New(nil).Load("/nonexistent/path.my", ctx); err == nil {
		t.Fatal("expected error")
	}
}
