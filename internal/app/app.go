// Package app wires configuration, log collection, classification, and the
// menu UI into a single run.
package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/five82/dmsift/internal/classify"
	"github.com/five82/dmsift/internal/logging"
	"github.com/five82/dmsift/internal/logsource"
	"github.com/five82/dmsift/internal/prefs"
	"github.com/five82/dmsift/internal/rules"
	"github.com/five82/dmsift/internal/ui"
)

// Options configure the dmsift application.
type Options struct {
	FilePath  string // log file to read; "-" for stdin; empty runs dmesg
	RulesPath string // explicit rule file (optional)
	UseKmsg   bool   // read /dev/kmsg instead of running dmesg
	TailLines int    // keep at most this many lines from the end; zero keeps all
	NoUI      bool   // print buckets instead of opening the menu
	Verbose   bool
}

// Run classifies one batch of kernel log lines and presents the buckets.
func Run(ctx context.Context, opts Options) error {
	logger := logging.NewLogger(opts.Verbose)
	defer func() { _ = logger.Sync() }()

	userPrefs, _ := prefs.Load("")
	tailLines := opts.TailLines
	if tailLines <= 0 {
		tailLines = userPrefs.TailLines
	}

	ruleSet, source, err := rules.Resolve(opts.RulesPath, logger)
	if err != nil {
		return err
	}
	logger.Info("using rules", zap.String("source", source))

	lines, err := collect(ctx, opts, tailLines)
	if err != nil {
		return fmt.Errorf("collect log lines: %w", err)
	}

	buckets := classify.Bucket(lines, ruleSet)

	if opts.NoUI {
		fmt.Fprint(os.Stdout, ui.RenderBuckets(buckets, ruleSet))
		return nil
	}

	return ui.Run(ui.Options{
		Context: ctx,
		Buckets: buckets,
		Rules:   ruleSet,
		Pager:   userPrefs.Pager,
	})
}

func collect(ctx context.Context, opts Options, tailLines int) ([]string, error) {
	switch {
	case opts.UseKmsg:
		return logsource.ReadKmsg(ctx, tailLines)
	case opts.FilePath != "":
		return logsource.ReadFile(opts.FilePath, tailLines)
	default:
		return logsource.ReadDmesg(ctx, tailLines)
	}
}
