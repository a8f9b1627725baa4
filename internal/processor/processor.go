// Package processor runs the per-file repair pipeline: resolve the companion
// sidecar, compare its recorded capture time against the embedded value, and
// rewrite or quarantine as needed. Every failure mode is a per-file outcome;
// nothing the processor returns can abort a caller's batch.
package processor

import (
	"context"
	"log/slog"
	"time"

	"snapmend/internal/companion"
	"snapmend/internal/logging"
	"snapmend/internal/quarantine"
	"snapmend/internal/takeout"
)

// TimestampWriter rewrites a media file's embedded capture-time tags.
type TimestampWriter interface {
	Write(ctx context.Context, path string, ts time.Time) error
}

// TimestampVerifier reports whether the embedded capture time already equals
// the companion-resolved timestamp.
type TimestampVerifier interface {
	Matches(ctx context.Context, path string, want time.Time) bool
}

// Quarantiner relocates a failed media file and its companion into the error
// directory.
type Quarantiner interface {
	Add(ctx context.Context, mediaPath, companionPath, reason string) ([]quarantine.Entry, error)
}

// Status classifies the result of processing one media file.
type Status string

const (
	// StatusNoCompanion means no sidecar was found; the file has no ground
	// truth to apply and is skipped.
	StatusNoCompanion Status = "no-companion"
	// StatusNoTimestamp means a sidecar was found but carried no usable
	// capture time.
	StatusNoTimestamp Status = "no-timestamp"
	// StatusUnchanged means the embedded capture time already matched.
	StatusUnchanged Status = "unchanged"
	// StatusUpdated means the capture time was rewritten.
	StatusUpdated Status = "updated"
	// StatusQuarantined means the rewrite failed and the file pair was
	// copied into the quarantine directory.
	StatusQuarantined Status = "quarantined"
)

// Outcome reports what happened to a single media file.
type Outcome struct {
	MediaPath string
	Companion string
	Strategy  string
	Status    Status
	Detail    string
}

// Processor applies companion-resolved capture times to media files.
type Processor struct {
	writer     TimestampWriter
	verifier   TimestampVerifier
	quarantine Quarantiner
	logger     *slog.Logger
}

// New assembles a Processor from its collaborators.
func New(writer TimestampWriter, verifier TimestampVerifier, q Quarantiner, logger *slog.Logger) *Processor {
	return &Processor{
		writer:     writer,
		verifier:   verifier,
		quarantine: q,
		logger:     logging.WithComponent(logger, "processor"),
	}
}

// Process repairs one media file. The media file itself need not exist yet at
// resolution time; collaborator failures surface in the outcome, never as a
// batch-level error.
func (p *Processor) Process(ctx context.Context, mediaPath string) Outcome {
	outcome := Outcome{MediaPath: mediaPath}

	match, ok := companion.Lookup(mediaPath)
	if !ok {
		p.logger.Debug("no companion found",
			logging.String(logging.FieldMediaPath, mediaPath))
		outcome.Status = StatusNoCompanion
		return outcome
	}
	outcome.Companion = match.Path
	outcome.Strategy = match.Strategy

	sidecar, err := takeout.Load(match.Path)
	if err != nil {
		p.logger.Warn("companion unreadable",
			logging.String(logging.FieldMediaPath, mediaPath),
			logging.String(logging.FieldCompanion, match.Path),
			logging.Error(err))
		outcome.Status = StatusNoTimestamp
		outcome.Detail = err.Error()
		return outcome
	}

	ts, ok := sidecar.TakenTime()
	if !ok {
		outcome.Status = StatusNoTimestamp
		return outcome
	}

	if p.verifier.Matches(ctx, mediaPath, ts) {
		outcome.Status = StatusUnchanged
		return outcome
	}

	if err := p.writer.Write(ctx, mediaPath, ts); err != nil {
		outcome.Status = StatusQuarantined
		outcome.Detail = err.Error()
		if _, qErr := p.quarantine.Add(ctx, mediaPath, match.Path, err.Error()); qErr != nil {
			p.logger.Error("quarantine failed",
				logging.String(logging.FieldMediaPath, mediaPath),
				logging.Error(qErr))
			outcome.Detail = outcome.Detail + "; quarantine: " + qErr.Error()
		}
		p.logger.Warn("capture time rewrite failed",
			logging.String(logging.FieldMediaPath, mediaPath),
			logging.String(logging.FieldCompanion, match.Path),
			logging.String(logging.FieldOutcome, string(outcome.Status)),
			logging.Error(err))
		return outcome
	}

	outcome.Status = StatusUpdated
	p.logger.Info("capture time updated",
		logging.String(logging.FieldMediaPath, mediaPath),
		logging.String(logging.FieldCompanion, match.Path),
		logging.String(logging.FieldStrategy, match.Strategy),
		logging.Time("capture_time", ts))
	return outcome
}
