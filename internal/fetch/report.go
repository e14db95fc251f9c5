package fetch

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

type failedEntry struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// WriteRunReport records which dates succeeded and which degraded to
// absence-of-data, as .lastrun.success.json / .lastrun.failed.json under
// outDir. Callers invoke it only after partitions were written, so it never
// creates the output directory on an empty run.
func WriteRunReport(outDir string, results []Result) error {
	var successList []string
	var failedList []failedEntry
	for _, r := range results {
		day := r.Date.Format("2006-01-02")
		if r.Ok() {
			successList = append(successList, day)
		} else {
			reason := "no data"
			if r.Err != nil {
				reason = r.Err.Error()
			}
			failedList = append(failedList, failedEntry{Date: day, Reason: reason})
		}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	if len(successList) > 0 {
		p := filepath.Join(outDir, ".lastrun.success.json")
		if err := writeJSON(p, successList); err != nil {
			return err
		}
		slog.Info("report wrote success", "path", p, "dates", len(successList))
	}
	if len(failedList) > 0 {
		p := filepath.Join(outDir, ".lastrun.failed.json")
		if err := writeJSON(p, failedList); err != nil {
			return err
		}
		slog.Info("report wrote failed", "path", p, "count", len(failedList), "reasons", joinFailedReasons(failedList))
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func joinFailedReasons(failedList []failedEntry) string {
	if len(failedList) == 0 {
		return ""
	}
	var b strings.Builder
	for i, f := range failedList {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(f.Date)
		b.WriteString(": ")
		b.WriteString(f.Reason)
		if i >= 4 && len(failedList) > 6 {
			b.WriteString(fmt.Sprintf(" (+%d more)", len(failedList)-5))
			break
		}
	}
	return b.String()
}
