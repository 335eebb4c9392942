package main

import (
	"context"
	"os/signal"
)

// notifyContext derives a context that is canceled when the process receives
// one of shutdownSignals. Batch workers check it before each file, so files
// not yet started report context.Canceled.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}
