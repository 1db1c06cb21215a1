package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/amirasaad/bankist/infra/initializer"
	"github.com/amirasaad/bankist/pkg/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := initializer.Initialize()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bankist:", err)
		os.Exit(1)
	}
	if err := cli.New(app, os.Stdin, os.Stdout).Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "bankist:", err)
		os.Exit(1)
	}
}
