package usability

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/wb-go/wbf/logger"
)

// InterfaceChatbot labels rows produced by the booking wizard.
const InterfaceChatbot = "CHATBOT"

const timestampLayout = "2006-01-02T15:04:05"

var header = []string{"timestamp", "participant", "interface", "duration_sec", "errors", "satisfaction"}

// Record is one completed usability session.
type Record struct {
	Timestamp    time.Time
	Participant  string
	Interface    string
	Duration     time.Duration
	Errors       int
	Satisfaction int
}

func (r Record) row() []string {
	return []string{
		r.Timestamp.Format(timestampLayout),
		r.Participant,
		r.Interface,
		strconv.FormatFloat(r.Duration.Seconds(), 'f', 2, 64),
		strconv.Itoa(r.Errors),
		strconv.Itoa(r.Satisfaction),
	}
}

// Recorder appends records to a CSV file, writing the header when the file is new.
type Recorder struct {
	path   string
	logger logger.Logger
}

func NewRecorder(path string, logger logger.Logger) *Recorder {
	return &Recorder{path: path, logger: logger}
}

func (r *Recorder) Path() string {
	return r.path
}

func (r *Recorder) Append(rec Record) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	writeHeader := false
	if _, err := os.Stat(r.path); errors.Is(err, os.ErrNotExist) {
		writeHeader = true
	} else if err != nil {
		return fmt.Errorf("stat results file: %w", err)
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err = w.Write(header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err = w.Write(rec.row()); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}

	r.logger.Info("usability result saved",
		logger.String("path", r.path),
		logger.String("participant", rec.Participant),
		logger.Duration("duration", rec.Duration),
		logger.Int("errors", rec.Errors),
		logger.Int("satisfaction", rec.Satisfaction),
	)

	return f.Close()
}
