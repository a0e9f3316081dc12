package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/velocity/internal/cli"
	"github.com/alexanderramin/velocity/internal/config"
	"github.com/alexanderramin/velocity/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	var observer service.VelocityObserver = service.NoopVelocityObserver{}
	if cfg.LogEvents {
		observer = service.NewLogVelocityObserver(os.Stderr)
	}

	app := &cli.App{
		Velocity: service.NewVelocityService(observer),
	}

	// Only offer the form when stdin is a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
