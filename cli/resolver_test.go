package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"
)

const configSource = `
	// flags
	config {
		$string log-level debug
		$bool   comments  yes
		$int    max_depth 12
		enum { $int WIDTH 640 $string NAME box }
	}
	other { $string log-level error }
`

func TestResolve_Loader(t *testing.T) {
	r, err := resolve(context.Background(), "config")(strings.NewReader(configSource))
	if err != nil {
		t.Fatal(err)
	}

	want := config{
		"log-level": "debug",
		"comments":  true,
		"max_depth": "12",
		"enum":      "WIDTH=640;NAME=box",
	}

	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unparsable", `config {`},
		{"missing block", `settings { $string log-level debug }`},
		{"value instead of block", `$string config debug`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolve(context.Background(), "config")(strings.NewReader(tt.source))
			if err != nil {
				t.Fatalf("err = %v", err)
			}

			if cfg, ok := r.(config); !ok || len(cfg) != 0 {
				t.Errorf("resolver = %#v, want empty config", r)
			}
		})
	}
}

func TestConfig_Resolve(t *testing.T) {
	cfg := config{"log-level": "debug", "max_depth": "12"}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"max-depth", "12"},
		{"comments", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := cfg.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: tt.flag}})
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.flag, got, tt.want)
			}
		})
	}
}

func TestResolve_Kong(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(configSource), 0o644); err != nil {
		t.Fatal(err)
	}

	var cli struct {
		Doc   docConfig `embed:""`
		Level string    `default:"info" name:"log-level"`
	}

	parser, err := kong.New(&cli,
		kong.Configuration(resolve(context.Background(), "config"), path),
		cli.Doc.vars(),
	)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := parser.Parse([]string{"--max-depth=30"}); err != nil {
		t.Fatal(err)
	}

	if cli.Level != "debug" || !cli.Doc.Comments {
		t.Errorf("level = %q, comments = %v", cli.Level, cli.Doc.Comments)
	}

	if cli.Doc.MaxDepth != 30 {
		t.Errorf("command line did not override the file: max depth = %d", cli.Doc.MaxDepth)
	}

	want := map[string]string{"WIDTH": "640", "NAME": "box"}
	if diff := cmp.Diff(want, cli.Doc.Enum); diff != "" {
		t.Errorf("enum mismatch (-want +got):\n%s", diff)
	}
}
