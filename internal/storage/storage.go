package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/beepboop/punchclock/internal/model"
)

// TimeLayout is the timestamp format used inside the punch file: local
// ISO-8601 with second precision and no zone suffix.
const TimeLayout = "2006-01-02T15:04:05"

var header = []string{"in_time", "out_time"}

// DefaultFilePath returns the punch file location under the XDG data
// directory, creating parent directories as needed.
func DefaultFilePath() (string, error) {
	path, err := xdg.DataFile(filepath.Join("punchclock", "punches.csv"))
	if err != nil {
		return "", fmt.Errorf("cannot determine data directory: %w", err)
	}
	return path, nil
}

// Load reads all punches from the CSV file at path, preserving file order.
// A missing file yields an empty log. Rows that cannot be parsed are
// skipped and counted in a single warning.
func Load(path string) ([]model.Punch, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return []model.Punch{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	punches := []model.Punch{}
	skipped := 0
	first := true
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if first {
			first = false
			if len(record) > 0 && record[0] == header[0] {
				continue
			}
		}
		p, ok := parseRecord(record)
		if !ok {
			skipped++
			continue
		}
		punches = append(punches, p)
	}

	if skipped > 0 {
		slog.Warn("skipped unparseable punch rows", "path", path, "rows", skipped)
	}
	return punches, nil
}

// Save atomically rewrites the whole punch file: encode to a temp file next
// to the target, then rename over it.
func Save(path string, punches []model.Punch) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	rows := make([][]string, 0, len(punches)+1)
	rows = append(rows, header)
	for _, p := range punches {
		rows = append(rows, record(p))
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("storage error encoding CSV: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// record renders one punch as a CSV row. Open punches leave out_time empty.
func record(p model.Punch) []string {
	out := ""
	if p.Out != nil {
		out = p.Out.Format(TimeLayout)
	}
	return []string{p.In.Format(TimeLayout), out}
}

// parseRecord parses one CSV row. A row with a single field or an empty
// second field is an open punch.
func parseRecord(record []string) (model.Punch, bool) {
	if len(record) == 0 || len(record) > 2 {
		return model.Punch{}, false
	}

	in, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(record[0]), time.Local)
	if err != nil {
		return model.Punch{}, false
	}
	p := model.Punch{In: in}

	if len(record) == 2 {
		if field := strings.TrimSpace(record[1]); field != "" {
			out, err := time.ParseInLocation(TimeLayout, field, time.Local)
			if err != nil {
				return model.Punch{}, false
			}
			p.Out = &out
		}
	}
	return p, true
}
