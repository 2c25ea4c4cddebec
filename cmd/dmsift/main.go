package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/dmsift/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	filePath := flag.String("file", "", "read log lines from this file instead of dmesg (\"-\" for stdin)")
	rulesPath := flag.String("rules", "", "override rule file path (optional)")
	useKmsg := flag.Bool("kmsg", false, "read /dev/kmsg directly instead of running dmesg")
	tailLines := flag.Int("tail", 0, "keep at most N lines from the end (0 keeps all)")
	noUI := flag.Bool("no-ui", false, "print buckets to stdout instead of the interactive menu")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		FilePath:  *filePath,
		RulesPath: *rulesPath,
		UseKmsg:   *useKmsg,
		TailLines: *tailLines,
		NoUI:      *noUI,
		Verbose:   *verbose,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "dmsift: %v\n", err)
		return 1
	}
	return 0
}
