package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
)

func runLogWriter(lines <-chan string) {
	for s := range lines {
		fmt.Println(s)
	}
}

// runHeartbeat periodically reports batch progress while fetches are in flight.
func runHeartbeat(ctx context.Context, interval time.Duration, totalJobs int, done *atomic.Int64, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logger.Info("heartbeat", "done", done.Load(), "total", totalJobs)
		}
	}
}
