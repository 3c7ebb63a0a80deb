package inputs

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"codeberg.org/mutker/puzzlebench/internal/errors"
	"codeberg.org/mutker/puzzlebench/internal/logger"
	_ "github.com/mattn/go-sqlite3"
)

type repository struct {
	db     *sql.DB
	logger logger.Logger
	cfg    Config
	mu     sync.Mutex
	closed bool
}

// NewRepository opens (creating if needed) the input database at
// cfg.DBPath and brings its schema up to date.
func NewRepository(cfg Config, log logger.Logger) (Repository, error) {
	errFactory := errors.New()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Path  string
			Error string
		}{
			Phase: "create_directory",
			Path:  cfg.DBPath,
			Error: err.Error(),
		})
	}

	dsn := cfg.DBPath + "?_journal=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errFactory.WithData(ErrStorageInit, struct {
			Phase string
			Error string
		}{
			Phase: "open_database",
			Error: err.Error(),
		})
	}

	if err := ValidateAndUpdateSchema(db, cfg, log); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	log.Debug().
		Str("path", cfg.DBPath).
		Int("schema_version", SchemaVersion).
		Msg("Input repository initialized")

	return &repository{
		db:     db,
		logger: log,
		cfg:    cfg,
	}, nil
}

func (r *repository) Put(ctx context.Context, in *Input) error {
	errFactory := errors.New()

	if in == nil || !ValidKey(in.Year, in.Day) {
		return errFactory.WithData(ErrInvalidKey, in)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errFactory.New(ErrStorageAccess)
	}

	updated := in.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}

	if _, err := r.db.ExecContext(ctx, upsertInputSQL, in.Year, in.Day, in.Data, updated.Unix()); err != nil {
		if ctx.Err() != nil {
			return errFactory.Wrap(ErrOperationTimeout, ctx.Err())
		}
		return errFactory.Wrap(ErrTransactionFailed, err)
	}

	r.logger.Debug().
		Int("year", in.Year).
		Int("day", in.Day).
		Int("bytes", len(in.Data)).
		Msg("Stored puzzle input")

	return nil
}

func (r *repository) Get(ctx context.Context, year, day int) (*Input, error) {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, errFactory.New(ErrStorageAccess)
	}

	var (
		data    string
		updated int64
	)
	err := r.db.QueryRowContext(ctx, selectInputSQL, year, day).Scan(&data, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errFactory.WithData(ErrNotFound, struct {
			Year int
			Day  int
		}{
			Year: year,
			Day:  day,
		})
	}
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}

	return &Input{
		Year:      year,
		Day:       day,
		Data:      data,
		UpdatedAt: time.Unix(updated, 0),
	}, nil
}

func (r *repository) List(ctx context.Context) ([]Entry, error) {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, errFactory.New(ErrStorageAccess)
	}

	rows, err := r.db.QueryContext(ctx, listInputsSQL)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e       Entry
			updated int64
		)
		if err := rows.Scan(&e.Year, &e.Day, &e.Bytes, &updated); err != nil {
			return nil, errFactory.Wrap(ErrStorageAccess, err)
		}
		e.UpdatedAt = time.Unix(updated, 0)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, errFactory.Wrap(ErrStorageAccess, err)
	}

	return entries, nil
}

func (r *repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	// Checkpoint WAL and cleanup on close
	if _, err := r.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		r.logger.Debug().Err(err).Msg("Failed to checkpoint WAL")
	}

	if err := r.db.Close(); err != nil {
		return errors.New().WithData(ErrStorageClose, struct {
			Phase string
			Error string
		}{
			Phase: "close_database",
			Error: err.Error(),
		})
	}

	r.logger.Debug().Msg("Input repository closed")

	return nil
}
