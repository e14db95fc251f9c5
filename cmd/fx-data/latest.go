package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/google/subcommands"

	"fx-data/internal/app"
)

// latestCmd fetches the most recent rates snapshot.
type latestCmd struct {
	out string
}

func (*latestCmd) Name() string     { return "latest" }
func (*latestCmd) Synopsis() string { return "fetch the latest rates snapshot" }
func (*latestCmd) Usage() string {
	return `latest [-out DIR]:
  Fetch the most recent snapshot (single request, no retry loop) and write
  its year=/month= partition under the output directory.
`
}

func (c *latestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "out", "", "output directory (default: DATA_DIR)")
}

func (c *latestCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, ok := initApp()
	if !ok {
		return subcommands.ExitFailure
	}
	defer a.RP.Close()

	out := c.out
	if out == "" {
		out = a.Config.DataDir
	}
	if err := app.Run(ctx, a.RP, a.Saver, app.RunParams{OutDir: out}); err != nil {
		slog.Error("run failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
