package fetch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"fx-data/internal/provider"
	"fx-data/internal/slogx"
)

// Job represents one fetch unit: a single calendar day.
type Job struct {
	Date time.Time
}

// Result pairs a job with its outcome. Payload == nil means absence-of-data;
// Err carries the reason (auth failure, exhausted retries, bad status).
type Result struct {
	Date    time.Time
	Payload *provider.RatesPayload
	Err     error
}

// Ok reports whether the slot holds a usable payload.
func (r Result) Ok() bool { return r.Payload != nil }

// DateRangeJobs returns one job per day in the inclusive [start, end] range,
// ascending. An end before start yields no jobs.
func DateRangeJobs(start, end time.Time) []Job {
	start = midnightUTC(start)
	end = midnightUTC(end)

	var jobs []Job
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		jobs = append(jobs, Job{Date: d})
	}
	return jobs
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RunHistorical fetches every job concurrently against one shared provider
// and gathers results into a slice indexed by job position, so output order
// follows ascending date regardless of completion order. A failed date yields
// an absent slot and never aborts its siblings; there is no cancellation of
// the batch once launched.
func RunHistorical(ctx context.Context, rp provider.RateProvider, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	logs := make(chan string, 1024)
	logger := slogx.NewChanLogger(logs)
	var logWg sync.WaitGroup
	logWg.Add(1)
	go func() {
		defer logWg.Done()
		runLogWriter(logs)
	}()

	if sink, ok := rp.(provider.LogSink); ok {
		sink.SetLogFunc(func(msg string) { logger.Info(msg) })
	}

	hbCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	var done atomic.Int64
	var hbWg sync.WaitGroup
	hbWg.Add(1)
	go func() {
		defer hbWg.Done()
		runHeartbeat(hbCtx, 30*time.Second, len(jobs), &done, logger)
	}()

	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for i, job := range jobs {
		go func(i int, job Job) {
			defer wg.Done()
			day := job.Date.Format("2006-01-02")
			payload, err := rp.FetchHistorical(ctx, job.Date)
			if err != nil {
				logger.Error("fetch fail", "date", day, "reason", err.Error())
			} else {
				logger.Info("fetch ok", "date", day, "rates", len(payload.Rates))
			}
			results[i] = Result{Date: job.Date, Payload: payload, Err: err}
			done.Add(1)
		}(i, job)
	}
	wg.Wait()
	cancel()
	hbWg.Wait()
	if sink, ok := rp.(provider.LogSink); ok {
		sink.SetLogFunc(nil)
	}
	close(logs)
	logWg.Wait()

	return results
}

// RunLatest performs the single latest-snapshot fetch. The slot's date is the
// processing day; the record builder replaces it with the payload timestamp.
func RunLatest(ctx context.Context, rp provider.RateProvider) []Result {
	payload, err := rp.FetchLatest(ctx)
	return []Result{{Date: time.Now().UTC(), Payload: payload, Err: err}}
}
