// Command redfish-gen generates typed client source from Redfish and
// Swordfish JSON schemas.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/andrewkroh/go-redfish-gen/internal/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
