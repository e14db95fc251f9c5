package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"fx-data/internal/app"
	"fx-data/internal/provider"
	"fx-data/internal/saver"
	"fx-data/internal/slogx"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	RP     provider.RateProvider
	Saver  saver.RecordSaver
}

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	// .env is optional; real env always wins
	_ = godotenv.Load()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&historicalCmd{}, "rates")
	subcommands.Register(&latestCmd{}, "rates")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// initApp wires dependencies and applies the configured log level.
func initApp() (*App, bool) {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return nil, false
	}
	slog.SetDefault(slogx.NewDefault(a.Config.LogLevel))
	return a, true
}
