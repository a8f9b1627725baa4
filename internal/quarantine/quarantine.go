package quarantine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"snapmend/internal/config"
	"snapmend/internal/fileutil"
	"snapmend/internal/logging"
)

// Entry records one quarantined file in the ledger.
type Entry struct {
	ID              int64
	BatchID         string
	SourcePath      string
	QuarantinedPath string
	Reason          string
	CreatedAt       time.Time
}

// Quarantine manages the error directory and its ledger.
type Quarantine struct {
	root   string
	db     *sql.DB
	lock   *flock.Flock
	logger *slog.Logger
}

// Open initializes the quarantine directory and connects to its ledger.
func Open(cfg *config.Config, logger *slog.Logger) (*Quarantine, error) {
	root := strings.TrimSpace(cfg.Paths.QuarantineDir)
	if root == "" {
		return nil, errors.New("quarantine: directory not configured")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create quarantine directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(root, "ledger.db"))
	if err != nil {
		return nil, fmt.Errorf("open quarantine ledger: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if err := applySchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Quarantine{
		root:   root,
		db:     db,
		lock:   flock.New(filepath.Join(root, ".snapmend.lock")),
		logger: logging.WithComponent(logger, "quarantine"),
	}, nil
}

// Root returns the quarantine directory path.
func (q *Quarantine) Root() string {
	return q.root
}

// Close closes the underlying ledger connection.
func (q *Quarantine) Close() error {
	if q == nil || q.db == nil {
		return nil
	}
	return q.db.Close()
}

// Add copies the failed media file and its companion (when one was resolved
// and still exists) into the quarantine directory, preserving original
// filenames, and records the batch in the ledger. A missing companion path
// is not an error.
func (q *Quarantine) Add(ctx context.Context, mediaPath, companionPath, reason string) ([]Entry, error) {
	if err := q.lock.Lock(); err != nil {
		return nil, fmt.Errorf("acquire quarantine lock: %w", err)
	}
	defer func() {
		_ = q.lock.Unlock()
	}()

	sources := []string{mediaPath}
	if companionPath != "" {
		if info, err := os.Stat(companionPath); err == nil && info.Mode().IsRegular() {
			sources = append(sources, companionPath)
		}
	}

	batch := uuid.NewString()
	now := time.Now().UTC()

	entries := make([]Entry, 0, len(sources))
	for _, src := range sources {
		dst, err := q.destinationFor(batch, filepath.Base(src))
		if err != nil {
			return entries, err
		}
		if err := fileutil.CopyFilePreserved(src, dst); err != nil {
			return entries, fmt.Errorf("quarantine copy %s: %w", src, err)
		}

		entry := Entry{
			BatchID:         batch,
			SourcePath:      src,
			QuarantinedPath: dst,
			Reason:          reason,
			CreatedAt:       now,
		}
		entry.ID, err = q.record(ctx, entry)
		if err != nil {
			return entries, err
		}
		entries = append(entries, entry)

		q.logger.Info("file quarantined",
			logging.String(logging.FieldMediaPath, src),
			logging.String("quarantined_path", dst),
			logging.String(logging.FieldBatchID, batch),
			logging.String("reason", reason))
	}

	return entries, nil
}

// destinationFor keeps the original filename in the quarantine root when it
// is free and falls back to a per-batch subdirectory on collision.
func (q *Quarantine) destinationFor(batch, name string) (string, error) {
	direct := filepath.Join(q.root, name)
	if _, err := os.Stat(direct); errors.Is(err, os.ErrNotExist) {
		return direct, nil
	}

	batchDir := filepath.Join(q.root, batch)
	if err := os.MkdirAll(batchDir, 0o755); err != nil {
		return "", fmt.Errorf("create batch directory: %w", err)
	}
	return filepath.Join(batchDir, name), nil
}

func (q *Quarantine) record(ctx context.Context, entry Entry) (int64, error) {
	res, err := q.db.ExecContext(
		ctx,
		`INSERT INTO quarantine_entries (
            batch_id, source_path, quarantined_path, reason, created_at
        ) VALUES (?, ?, ?, ?, ?)`,
		entry.BatchID,
		entry.SourcePath,
		entry.QuarantinedPath,
		entry.Reason,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("record quarantine entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("quarantine entry id: %w", err)
	}
	return id, nil
}

// List returns every ledger entry, oldest first.
func (q *Quarantine) List(ctx context.Context) ([]Entry, error) {
	rows, err := q.db.QueryContext(
		ctx,
		`SELECT id, batch_id, source_path, quarantined_path, reason, created_at
         FROM quarantine_entries ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list quarantine entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var createdAt string
		if err := rows.Scan(&entry.ID, &entry.BatchID, &entry.SourcePath, &entry.QuarantinedPath, &entry.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("scan quarantine entry: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			entry.CreatedAt = ts
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quarantine entries: %w", err)
	}
	return entries, nil
}
