package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/google/subcommands"

	"fx-data/internal/app"
)

// historicalCmd fetches rates for every day in an inclusive date range.
type historicalCmd struct {
	start string
	end   string
	out   string
}

func (*historicalCmd) Name() string     { return "historical" }
func (*historicalCmd) Synopsis() string { return "fetch rates for an inclusive date range" }
func (*historicalCmd) Usage() string {
	return `historical -start YYYY-MM-DD -end YYYY-MM-DD [-out DIR]:
  Fetch one snapshot per day, all days concurrently, and write
  year=/month= partitions under the output directory.
`
}

func (c *historicalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.start, "start", "", "start date, YYYY-MM-DD (inclusive)")
	f.StringVar(&c.end, "end", "", "end date, YYYY-MM-DD (inclusive)")
	f.StringVar(&c.out, "out", "", "output directory (default: DATA_DIR)")
}

func (c *historicalCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.start == "" || c.end == "" {
		slog.Error("both -start and -end are required (use 'latest' for a snapshot)")
		return subcommands.ExitUsageError
	}
	start, err := app.ParseDay(c.start)
	if err != nil {
		slog.Error("bad -start", "error", err)
		return subcommands.ExitUsageError
	}
	end, err := app.ParseDay(c.end)
	if err != nil {
		slog.Error("bad -end", "error", err)
		return subcommands.ExitUsageError
	}
	if end.Before(start) {
		slog.Error("-end is before -start", "start", c.start, "end", c.end)
		return subcommands.ExitUsageError
	}

	a, ok := initApp()
	if !ok {
		return subcommands.ExitFailure
	}
	defer a.RP.Close()

	out := c.out
	if out == "" {
		out = a.Config.DataDir
	}
	if err := app.Run(ctx, a.RP, a.Saver, app.RunParams{Start: &start, End: &end, OutDir: out}); err != nil {
		slog.Error("run failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
