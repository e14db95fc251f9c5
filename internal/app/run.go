package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"fx-data/internal/fetch"
	"fx-data/internal/model"
	"fx-data/internal/provider"
	"fx-data/internal/record"
	"fx-data/internal/saver"
)

// RunParams selects the fetch mode for one ETL cycle. Both dates set → one
// fetch per day in the inclusive range; otherwise a single latest fetch.
type RunParams struct {
	Start  *time.Time
	End    *time.Time
	OutDir string
}

// Run executes one ETL cycle: fetch → build records → write partitions →
// run report → summary table. An all-absent batch is a soft warning, not an
// error; write failures surface as hard failures.
func Run(ctx context.Context, rp provider.RateProvider, rs saver.RecordSaver, params RunParams) error {
	var results []fetch.Result
	historical := params.Start != nil && params.End != nil
	if historical {
		jobs := fetch.DateRangeJobs(*params.Start, *params.End)
		slog.Info("fetching historical rates",
			"from", params.Start.Format("2006-01-02"),
			"to", params.End.Format("2006-01-02"),
			"days", len(jobs),
			"provider", rp.GetName())
		results = fetch.RunHistorical(ctx, rp, jobs)
	} else {
		slog.Info("no date range provided, fetching latest rates", "provider", rp.GetName())
		results = fetch.RunLatest(ctx, rp)
	}

	now := time.Now().UTC()
	var records []model.ExchangeRateRecord
	for _, res := range results {
		records = append(records, record.BuildRecords(res.Payload, now)...)
	}

	if len(records) == 0 {
		slog.Warn("no data retrieved")
		return nil
	}

	w := &saver.PartitionWriter{BaseDir: params.OutDir, Saver: rs}
	paths, err := w.WriteAll(records)
	if err != nil {
		return err
	}
	slog.Info("save done", "dir", params.OutDir, "partitions", len(paths), "records", len(records))

	if historical {
		if err := fetch.WriteRunReport(params.OutDir, results); err != nil {
			slog.Warn("could not write run report", "error", err)
		}
	}

	PrintSummary(os.Stdout, records)
	return nil
}
