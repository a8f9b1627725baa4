package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"snapmend/internal/config"
	"snapmend/internal/logging"
	"snapmend/internal/media/exiftool"
	"snapmend/internal/mediatype"
)

// Writer rewrites a media file's embedded capture-time tags.
type Writer struct {
	binary  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewWriter builds a Writer from application configuration.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	return &Writer{
		binary:  cfg.ExiftoolBinary(),
		timeout: time.Duration(cfg.ExifTool.TimeoutSeconds) * time.Second,
		logger:  logging.WithComponent(logger, "metadata-writer"),
	}
}

// Write applies ts to every capture-time tag for the file's category. Files
// without embedded-metadata support are a silent no-op. A returned error
// means the file should be quarantined by the caller.
func (w *Writer) Write(ctx context.Context, path string, ts time.Time) error {
	cat := mediatype.Detect(path)
	tags := WriteTags(cat)
	if len(tags) == 0 {
		w.logger.Debug("skipping unsupported file",
			logging.String(logging.FieldMediaPath, path))
		return nil
	}

	value := FormatTimestamp(ts)
	assignments := make(map[string]string, len(tags))
	for _, tag := range tags {
		assignments[tag] = value
	}

	writeCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	if err := exiftool.Write(writeCtx, w.binary, path, assignments); err != nil {
		return fmt.Errorf("apply capture time: %w", err)
	}

	w.logger.Info("capture time applied",
		logging.String(logging.FieldMediaPath, path),
		logging.String("capture_time", value),
		logging.String("category", string(cat)))
	return nil
}
