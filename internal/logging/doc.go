// Package logging constructs the slog loggers used across snapmend and
// defines the standardized structured field keys components attach to their
// log records.
package logging
