package main

import (
	"errors"
	"fmt"
	"runtime"
)

// Worker bounds for batch conversion.
const (
	MaxAutoWorkers = 8
	MaxWorkers     = 32
)

// ErrInvalidWorkerCount indicates a --workers value out of range.
var ErrInvalidWorkerCount = errors.New("invalid worker count")

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers determines the number of conversion goroutines.
// Priority: explicit flag > environment > GOMAXPROCS-based calculation.
// The result never exceeds the number of files.
func resolveWorkers(flagWorkers, envWorkers, files int) int {
	n := flagWorkers
	if n == 0 {
		n = envWorkers
	}
	if n == 0 {
		// GOMAXPROCS is adjusted by automaxprocs for containers.
		n = min(max(runtime.GOMAXPROCS(0), 1), MaxAutoWorkers)
	}
	n = min(n, MaxWorkers)
	if files > 0 && n > files {
		n = files
	}
	return max(n, 1)
}
