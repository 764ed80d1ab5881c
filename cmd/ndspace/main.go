// Command ndspace inspects, walks and publishes partition plans described
// by a YAML configuration file.
//
//	ndspace plan -f space.yaml
//	ndspace walk -f space.yaml --worker 2 --max 20
//	ndspace publish -f space.yaml --name heat-2d --nats nats://127.0.0.1:4222
//	ndspace fetch --name heat-2d --worker 2
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
