package cmd

import "github.com/ardnew/dsys/ds"

var (
	ErrWriteConfig  = ds.NewError("write configuration file")
	ErrFileExists   = ds.NewError("file exists (use --force to overwrite)")
	ErrPathNotFound = ds.NewError("path not found")
	ErrUnknownType  = ds.NewError("unknown value type")
	ErrDiffer       = ds.NewError("documents differ")
)
