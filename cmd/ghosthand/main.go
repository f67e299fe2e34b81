// File: cmd/ghosthand/main.go
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/xkilldash9x/ghosthand/cmd"
)

func main() {
	// Interrupts cancel the command context so in-flight traversals and
	// idle loops terminate between steps instead of being killed mid-drag.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd.ExecuteContext(ctx)
}
