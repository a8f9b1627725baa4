package logging

import (
	"log/slog"
	"time"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldMediaPath is the standardized structured logging key for the media file being processed.
	FieldMediaPath = "media_path"
	// FieldCompanion is the standardized structured logging key for a resolved sidecar path.
	FieldCompanion = "companion"
	// FieldStrategy is the standardized structured logging key for the resolution strategy that matched.
	FieldStrategy = "strategy"
	// FieldOutcome is the standardized structured logging key for a per-file processing outcome.
	FieldOutcome = "outcome"
	// FieldBatchID is the standardized structured logging key for quarantine batch identifiers.
	FieldBatchID = "batch_id"
)

type Attr = slog.Attr

func Any(key string, value any) Attr { return slog.Any(key, value) }

func Bool(key string, value bool) Attr { return slog.Bool(key, value) }

func Duration(key string, value time.Duration) Attr { return slog.Duration(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func Int64(key string, value int64) Attr { return slog.Int64(key, value) }

func String(key string, value string) Attr { return slog.String(key, value) }

func Time(key string, value time.Time) Attr { return slog.Time(key, value) }

func Error(err error) Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}
