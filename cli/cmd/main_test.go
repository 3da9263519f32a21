package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dsys/ds"
)

func TestMain(m *testing.M) {
	ds.Init()
	os.Exit(m.Run())
}

// testContext returns a context bound to a kong application whose output
// is captured in the returned buffer.
func testContext(t *testing.T, vars kong.Vars) (context.Context, *bytes.Buffer) {
	t.Helper()

	var (
		out bytes.Buffer
		cli struct{}
	)

	parser, err := kong.New(&cli, kong.Writers(&out, &out), vars)
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), ktx), &out
}

// writeFile writes content to name in a fresh temporary directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}
