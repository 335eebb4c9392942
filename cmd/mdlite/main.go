package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-mdlite/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	configureMaxProcs(hasVerboseFlag(os.Args[1:]), os.Stderr)
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// configureMaxProcs sets GOMAXPROCS from the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// runMain dispatches the command and returns the process exit code.
// args[0] is the program name, as in os.Args.
func runMain(args []string, env *Environment) int {
	if err := run(args, env); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run resolves the command from args and executes it.
func run(args []string, env *Environment) error {
	var rest []string
	if len(args) > 1 {
		rest = args[1:]
	}

	// No command: convert the default source, or the file/flags given.
	if len(rest) == 0 || !isCommand(rest[0]) {
		if len(rest) > 0 && !looksLikeInput(rest[0]) {
			return fmt.Errorf("%w: unknown command %q (run 'mdlite help')", ErrUsage, rest[0])
		}
		return dispatchConvert(rest, env)
	}

	switch rest[0] {
	case "convert":
		return dispatchConvert(rest[1:], env)
	case "config":
		return runConfig(rest[1:], env)
	case "version":
		fmt.Fprintf(env.Stdout, "mdlite %s\n", Version)
		return nil
	default: // help
		return runHelp(rest[1:], env)
	}
}

// dispatchConvert parses convert flags and runs the conversion with
// signal-aware cancellation.
func dispatchConvert(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runConvert(ctx, positional, flags, env)
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	switch arg {
	case "convert", "config", "version", "help":
		return true
	}
	return false
}

// looksLikeInput reports whether arg can start an implicit convert: a flag,
// a source file name, a path, or an existing directory.
func looksLikeInput(arg string) bool {
	if strings.HasPrefix(arg, "-") || looksLikeSource(arg) || fileutil.IsFilePath(arg) {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

// looksLikeSource reports whether arg has a convertible source extension.
func looksLikeSource(arg string) bool {
	return fileutil.IsSourceFile(arg)
}
