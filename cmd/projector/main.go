// Command projector drags images around and composites their overlaps.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gogpu/projector/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
