package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/ardnew/dsys/ds"
)

// Tree draws the structure of a document.
type Tree struct {
	Root string `default:"." help:"Label of the root node."`

	Source []string `arg:"" help:"Source input files or '-' for stdin." name:"source" optional:""`
}

var (
	enumeratorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginRight(1)
	blockStyle      = lipgloss.NewStyle().Bold(true)
	typeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

// Run executes the tree command.
func (t *Tree) Run(ctx context.Context) error {
	root, err := readDocument(ctx, t.Source)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout(ctx), buildTree(root, t.Root))

	return err
}

func buildTree(b *ds.Block, label string) *tree.Tree {
	t := tree.Root(blockStyle.Render(label)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)

	for name, node := range b.All() {
		switch n := node.(type) {
		case ds.Value:
			t.Child(leafLabel(name, n))

		case *ds.Block:
			t.Child(buildTree(n, name))

		case *ds.Container:
			for i, blk := range n.Blocks() {
				t.Child(buildTree(blk, name+"["+strconv.Itoa(i)+"]"))
			}
		}
	}

	return t
}

func leafLabel(name string, v ds.Value) string {
	text := v.String()
	if text == "" || strings.ContainsAny(text, " \t") {
		text = strconv.Quote(text)
	}

	return typeStyle.Render("$"+v.TypeName()) + " " + name + " = " + text
}
