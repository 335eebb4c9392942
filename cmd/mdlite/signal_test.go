package main

// Notes:
// - Real signal delivery is not exercised: a signal sent while no context is
//   listening would kill the test binary. The tests cover the signal list and
//   how the derived context reacts to stop() and to its parent.

import (
	"context"
	"os"
	"slices"
	"testing"
)

// ---------------------------------------------------------------------------
// shutdownSignals
// ---------------------------------------------------------------------------

func TestShutdownSignals_IncludeInterrupt(t *testing.T) {
	t.Parallel()

	if !slices.Contains(shutdownSignals, os.Interrupt) {
		t.Errorf("shutdownSignals = %v, want os.Interrupt included", shutdownSignals)
	}
}

// ---------------------------------------------------------------------------
// notifyContext
// ---------------------------------------------------------------------------

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		act        func(stop, cancelParent context.CancelFunc)
		wantCancel bool
	}{
		{
			name:       "live until stopped",
			act:        func(context.CancelFunc, context.CancelFunc) {},
			wantCancel: false,
		},
		{
			name:       "stop cancels",
			act:        func(stop, _ context.CancelFunc) { stop() },
			wantCancel: true,
		},
		{
			name:       "parent cancel propagates",
			act:        func(_, cancelParent context.CancelFunc) { cancelParent() },
			wantCancel: true,
		},
	}

	for _, tt := range tests {
		tt := tt // capture range variable (pre-Go 1.22 loop semantics)
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parent, cancelParent := context.WithCancel(context.Background())
			defer cancelParent()
			ctx, stop := notifyContext(parent)
			defer stop()

			tt.act(stop, cancelParent)

			if got := ctx.Err() != nil; got != tt.wantCancel {
				t.Errorf("canceled = %v, want %v (err = %v)", got, tt.wantCancel, ctx.Err())
			}
		})
	}
}
