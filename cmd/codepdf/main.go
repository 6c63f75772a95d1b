package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/automaxprocs/maxprocs"

	codepdf "github.com/welbornprod/codepdf"
)

// appName is used in version output and the default document title.
const appName = "CodePDF"

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Parse once up front just for --debug so the maxprocs logger can be
	// wired before anything else runs; run re-parses with full handling.
	debug := false
	for _, arg := range os.Args[1:] {
		if arg == "-D" || arg == "--debug" {
			debug = true
		}
	}

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if debug {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	svc := codepdf.New()
	err := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr, svc)

	// Close explicitly: os.Exit would skip deferred cleanup.
	_ = svc.Close()
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
