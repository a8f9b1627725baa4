package metadata

import (
	"context"
	"log/slog"
	"time"

	"snapmend/internal/config"
	"snapmend/internal/logging"
	"snapmend/internal/media/exiftool"
	"snapmend/internal/mediatype"
)

// Verifier compares a media file's embedded capture time against the
// timestamp recorded in its companion sidecar.
type Verifier struct {
	binary  string
	timeout time.Duration
	logger  *slog.Logger
}

// NewVerifier builds a Verifier from application configuration.
func NewVerifier(cfg *config.Config, logger *slog.Logger) *Verifier {
	return &Verifier{
		binary:  cfg.ExiftoolBinary(),
		timeout: time.Duration(cfg.ExifTool.TimeoutSeconds) * time.Second,
		logger:  logging.WithComponent(logger, "metadata-verifier"),
	}
}

// Matches reports whether the embedded capture time equals want. Comparison
// is by UTC instant, never by formatted string. Files without
// embedded-metadata support match unconditionally, and a failed or ambiguous
// read also reports a match so the caller never rewrites on uncertainty.
func (v *Verifier) Matches(ctx context.Context, path string, want time.Time) bool {
	cat := mediatype.Detect(path)
	tags := ReadTags(cat)
	if len(tags) == 0 {
		return true
	}

	readCtx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	result, err := exiftool.Read(readCtx, v.binary, path, tags...)
	if err != nil {
		v.logger.Warn("metadata read failed, treating as match",
			logging.String(logging.FieldMediaPath, path),
			logging.Error(err))
		return true
	}

	for _, tag := range tags {
		raw, ok := result.Tag(tag)
		if !ok || raw == "" {
			continue
		}
		got, ok := ParseTimestamp(raw)
		if !ok {
			// A present but unreadable value is ambiguity, not absence;
			// never rewrite over it.
			v.logger.Warn("unparseable capture time, treating as match",
				logging.String(logging.FieldMediaPath, path),
				logging.String("tag", tag),
				logging.String("value", raw))
			return true
		}
		return got.Equal(want.UTC())
	}

	// The file carries no capture time at all; report a mismatch so the
	// writer fills it in.
	return false
}
