package saver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"fx-data/internal/model"
)

// partitionFileBase is the file name (without extension) inside every partition.
const partitionFileBase = "exchange_rates"

// PartitionWriter groups records by (year, month) and writes each group as one
// file under BaseDir/year=<Y>/month=<M>/. Directories are created as needed;
// an existing partition file is overwritten. There is no cross-partition
// transaction: a failed partition does not roll back ones already written.
type PartitionWriter struct {
	BaseDir string
	Saver   RecordSaver
}

// PartitionDir returns the directory for one partition key.
func (w *PartitionWriter) PartitionDir(key model.PartitionKey) string {
	return filepath.Join(w.BaseDir,
		fmt.Sprintf("year=%d", key.Year),
		fmt.Sprintf("month=%d", key.Month))
}

// WriteAll persists all records and returns the paths written, in partition
// order. An empty record set writes nothing and creates no directories.
func (w *PartitionWriter) WriteAll(records []model.ExchangeRateRecord) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}

	groups := make(map[model.PartitionKey][]model.ExchangeRateRecord)
	for _, r := range records {
		key := r.Partition()
		groups[key] = append(groups[key], r)
	}

	keys := make([]model.PartitionKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year < keys[j].Year
		}
		return keys[i].Month < keys[j].Month
	})

	var written []string
	for _, key := range keys {
		dir := w.PartitionDir(key)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return written, fmt.Errorf("create partition dir %s: %w", dir, err)
		}
		path := filepath.Join(dir, partitionFileBase+"."+w.Saver.Extension())
		if err := w.Saver.Save(groups[key], path); err != nil {
			return written, fmt.Errorf("write partition %s: %w", path, err)
		}
		slog.Info("partition saved", "path", path, "records", len(groups[key]))
		written = append(written, path)
	}
	return written, nil
}
