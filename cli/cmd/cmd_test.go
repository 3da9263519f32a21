package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardnew/dsys/ds"
)

func readAll(t *testing.T, sources ...string) string {
	t.Helper()

	src, err := openSources(sources)
	if err != nil {
		t.Fatal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src.reader())
	if err != nil {
		t.Fatal(err)
	}

	return string(data)
}

// pipeStdin replaces os.Stdin with a pipe holding content.
func pipeStdin(t *testing.T, content string) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}

	old := os.Stdin
	os.Stdin = r

	t.Cleanup(func() {
		os.Stdin = old
		r.Close()
	})

	go func() {
		defer w.Close()
		io.WriteString(w, content)
	}()
}

func TestOpenSources(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "first.ds")
	second := filepath.Join(dir, "second.ds")
	link := filepath.Join(dir, "link.ds")

	for path, content := range map[string]string{first: "first", second: "second"} {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	if err := os.Symlink(first, link); err != nil {
		t.Fatal(err)
	}

	t.Chdir(dir)

	tests := []struct {
		name    string
		sources []string
		want    string
	}{
		{"single", []string{first}, "first"},
		{"joined with newline", []string{first, second}, "first\nsecond"},
		{"order kept", []string{second, first}, "second\nfirst"},
		{"duplicates", []string{first, first, first}, "first"},
		{"relative and absolute", []string{"first.ds", first}, "first"},
		{"symlink", []string{first, link}, "first"},
		{"none", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readAll(t, tt.sources...); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOpenSources_StdinLast(t *testing.T) {
	path := writeFile(t, "file.ds", "file")
	pipeStdin(t, "stdin")

	if got := readAll(t, "-", path); got != "file\nstdin" {
		t.Errorf("got %q, want %q", got, "file\nstdin")
	}
}

func TestOpenSources_StdinOnce(t *testing.T) {
	pipeStdin(t, "stdin-once")

	if got := readAll(t, "-", "-", "-"); got != "stdin-once" {
		t.Errorf("got %q, want %q", got, "stdin-once")
	}
}

func TestOpenSources_Missing(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "real.ds", "exists")

	_, err := openSources([]string{path, "/nonexistent/file.ds"})
	if !errors.Is(err, ds.ErrOpen) {
		t.Errorf("err = %v, want ErrOpen", err)
	}
}

func TestReadDocument_LaterSourcesOverride(t *testing.T) {
	t.Parallel()

	base := writeFile(t, "base.ds", `$int x 1 $int y 2`)
	override := writeFile(t, "override.ds", `$int x 5`)

	root, err := readDocument(context.Background(), []string{base, override})
	if err != nil {
		t.Fatal(err)
	}

	if x, y := root.Int("x", 0), root.Int("y", 0); x != 5 || y != 2 {
		t.Errorf("x, y = %d, %d, want 5, 2", x, y)
	}

	if got := root.Keys(); len(got) != 2 || got[0] != "x" {
		t.Errorf("keys = %v", got)
	}
}

func TestReadDocument_Options(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "enum.ds", `$int n "N * 2" // note`)

	ctx := WithOptions(context.Background(),
		ds.WithEnums(map[string]string{"N": "7"}),
		ds.WithComments(true),
	)

	root, err := readDocument(ctx, []string{path})
	if err != nil {
		t.Fatal(err)
	}

	if got := root.Int("n", 0); got != 14 {
		t.Errorf("n = %d, want 14", got)
	}
}

func TestUseColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	tests := []struct {
		mode string
		want bool
	}{
		{"always", true},
		{"never", false},
		{"auto", false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			if got := useColor(tt.mode, &buf); got != tt.want {
				t.Errorf("useColor(%q) = %v", tt.mode, got)
			}
		})
	}
}

func TestStdout(t *testing.T) {
	t.Parallel()

	if stdout(context.Background()) != os.Stdout {
		t.Error("stdout without a kong context should be os.Stdout")
	}

	ctx, buf := testContext(t, nil)
	if stdout(ctx) != buf {
		t.Error("stdout should be the kong application's writer")
	}
}
