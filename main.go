package main

import (
	"context"
	"os"
	"syscall"

	"model-portfolio/cmd"

	"github.com/charmbracelet/fang"
)

const version = "0.1.0"

// shutdownSignals cancel the command context; long runs stop between items.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	root := cmd.NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(shutdownSignals...),
	); err != nil {
		os.Exit(1)
	}
}
