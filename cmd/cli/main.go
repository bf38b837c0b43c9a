package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := Execute(ctx)
	stop()
	if err != nil {
		slog.Error("cli failed to run", "error", err)
		os.Exit(1)
	}
}
