package cmd

import (
	"context"
	"fmt"

	"github.com/ardnew/dsys/ds"
)

// Types lists the registered value type names.
type Types struct{}

// Run executes the types command.
func (Types) Run(ctx context.Context) error {
	w := stdout(ctx)

	for _, name := range ds.Types() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}

	return nil
}
