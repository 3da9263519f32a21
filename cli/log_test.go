package cli

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/dsys/log"
)

func TestLogConfig_Scan(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	base := logConfig{Level: "info", Format: "text", Color: "auto", Pretty: true}

	tests := []struct {
		name string
		args []string
		want func(*logConfig)
	}{
		{"no log flags", []string{"fmt", "--sorted", "doc.ds"}, func(*logConfig) {}},
		{
			"assigned",
			[]string{"--log-level=debug", "--log-format=json", "--log-color=never"},
			func(c *logConfig) { c.Level, c.Format, c.Color = "debug", "json", "never" },
		},
		{
			"separate value",
			[]string{"get", "--log-level", "warn", "doc.ds", "x"},
			func(c *logConfig) { c.Level = "warn" },
		},
		{
			"missing value",
			[]string{"--log-level", "--log-caller"},
			func(c *logConfig) { c.Level, c.Caller = "", true },
		},
		{"negated", []string{"--no-log-pretty"}, func(c *logConfig) { c.Pretty = false }},
		{"negated false", []string{"--no-log-pretty=false"}, func(*logConfig) {}},
		{"assigned bool", []string{"--log-caller=true"}, func(c *logConfig) { c.Caller = true }},
		{"bad bool", []string{"--log-caller=maybe"}, func(*logConfig) {}},
		{"negated value flag", []string{"--no-log-level", "debug"}, func(*logConfig) {}},
		{"after terminator", []string{"--", "--log-level=debug"}, func(*logConfig) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, want := base, base
			tt.want(&want)

			got.scan(tt.args)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLogColor_Option(t *testing.T) {
	for color, ok := range map[logColor]bool{"always": true, "never": true, "auto": false, "": false} {
		if _, got := color.option(); got != ok {
			t.Errorf("logColor(%q).option() ok = %v, want %v", color, got, ok)
		}
	}
}
