//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"fx-data/internal/app"
	"fx-data/internal/provider"
	"fx-data/internal/provider/openexchange"
)

// InitializeApp builds App (Config + RateProvider + RecordSaver) via Wire.
// Caller must call a.RP.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideRecordSaver,
		app.ProvideRateProvider,
		wire.Bind(new(provider.RateProvider), new(*openexchange.Provider)),
		wire.Struct(new(App), "Config", "RP", "Saver"),
	)
	return nil, nil
}
