package cli

import (
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dsys/ds"
	"github.com/ardnew/dsys/log"
)

// docConfig holds the parser options shared by every command.
type docConfig struct {
	Enum     map[string]string `help:"Enum constants available to values and expressions." mapsep:";" placeholder:"NAME=VALUE;..." short:"e"`
	Comments bool              `default:"false" help:"Skip // and /* */ comments." negatable:""`
	MaxDepth int               `default:"${maxDepth}" help:"Maximum block nesting depth."`
}

func (docConfig) vars() kong.Vars {
	return kong.Vars{
		"maxDepth": strconv.Itoa(ds.DefaultMaxDepth),
	}
}

func (docConfig) group() kong.Group {
	var group kong.Group

	group.Key = "doc"
	group.Title = "Document options"

	return group
}

func (d docConfig) options() []ds.Option {
	return []ds.Option{
		ds.WithEnums(d.Enum),
		ds.WithComments(d.Comments),
		ds.WithMaxDepth(d.MaxDepth),
		ds.WithLogger(log.Default()),
	}
}
