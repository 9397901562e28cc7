// Command greeter is the terminal greeting consumer. "greeter ui" runs the
// interactive view and "greeter fetch" prints the greeting once.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "greeter:", err)
		stop()
		os.Exit(1)
	}
}
