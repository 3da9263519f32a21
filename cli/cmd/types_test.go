package cmd

import (
	"strings"
	"testing"

	"github.com/ardnew/dsys/ds"
)

func TestTypes_Run(t *testing.T) {
	t.Parallel()

	ctx, out := testContext(t, nil)

	if err := (Types{}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	want := strings.Join(ds.Types(), "\n") + "\n"
	if got := out.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
