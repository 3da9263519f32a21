package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/dsys/cli"
	"github.com/ardnew/dsys/ds"
	"github.com/ardnew/dsys/log"
)

func main() {
	ds.Init()
	defer ds.Close()

	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error(
			"run failed",
			slog.Any("error", err),
		) // slog automatically uses LogValue()
		os.Exit(1)
	}
}
