// Package history holds the append-only log of completed timers and its
// JSON export format.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// DefaultLayout renders completion times the way an en-US locale string does.
const DefaultLayout = "1/2/2006, 3:04:05 PM"

// DefaultFileName is the file name offered when exporting.
const DefaultFileName = "timer_history.json"

// ErrEmpty is returned when exporting a log with no records.
var ErrEmpty = errors.New("no history data to export")

// Record is one completed run.
type Record struct {
	Name        string `json:"name"`
	CompletedAt string `json:"completedAt"`
}

// Log is the persisted, append-only list of records. Clear wipes the whole
// log; individual records are never edited or removed.
type Log interface {
	Append(Record) error
	List() ([]Record, error)
	Clear() error
}

// NewRecord stamps name with at rendered in layout.
func NewRecord(name string, at time.Time, layout string) Record {
	if layout == "" {
		layout = DefaultLayout
	}
	return Record{Name: name, CompletedAt: at.Format(layout)}
}

// Export writes records as a JSON array.
func Export(w io.Writer, records []Record) error {
	if len(records) == 0 {
		return ErrEmpty
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// ExportFile writes records to path, creating its directory if needed.
func ExportFile(path string, records []Record) error {
	if len(records) == 0 {
		return ErrEmpty
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := Export(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Decode reads an exported JSON array back.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return records, nil
}
