package main

import (
	"airport-distance-service/internal/cli"
	"airport-distance-service/internal/config"
	"context"
	"io"
	"log"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	// Timing and config logs would interleave with command output.
	log.SetOutput(io.Discard)
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	deps := cli.Dependencies{
		Config:  cfg,
		Version: version,
	}

	exitCode := cli.Execute(ctx, os.Args[1:], deps, os.Stdout, os.Stderr)
	stop()
	os.Exit(exitCode)
}
