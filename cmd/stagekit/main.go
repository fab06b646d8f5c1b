// Command stagekit feeds numbers through a recipe-defined stage chain and
// prints one line per input.
//
//	stagekit [--config path] [--recipe path|name] [--instrument] values...
//
// Each line is "in -> out", or "in -> -" when the chain produced nothing.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
