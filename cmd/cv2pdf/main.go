package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS for containerized environments.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(realMain(os.Args[1:], DefaultEnv()))
}

// realMain dispatches commands and returns the process exit code.
// Split from main for testability.
func realMain(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "render":
		flags, positional, err := parseRenderFlags(args[1:])
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return ExitUsage
		}
		if err := runRender(context.Background(), positional, flags, env, defaultRendererFactory); err != nil {
			fmt.Fprintln(env.Stderr, "Error:", err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "version", "--version":
		fmt.Fprintf(env.Stdout, "cv2pdf %s\n", Version)
		return ExitSuccess

	case "help", "--help", "-h":
		runHelp(args[1:], env)
		return ExitSuccess

	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
