//go:build windows

package main

import "os"

// Ctrl+C is the only signal a console process can catch here.
var shutdownSignals = []os.Signal{os.Interrupt}
