// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

const (
	defaultPage      uint64 = 1
	defaultPageSize  uint64 = 100
	defaultTxTimeout        = time.Second * 60

	// currentUserSetting is read by app_current_user_id() in the database
	currentUserSetting = "app.current_user_id"
)

type TxContextKey struct{}
type LazyTxContextKey struct{}

var txContextKey TxContextKey
var lazyTxContextKey LazyTxContextKey

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool

	// SessionRole is assumed inside every transaction, empty keeps the connection role
	SessionRole string
	// SessionUser resolves the acting user, its id is exposed to row level security
	SessionUser SessionUserFunc
}

// Offset calculates the offset for pagination based on the provided page parameter and page size.
func Offset(pageParam int64, pageSize uint64) uint64 {
	if pageParam <= 0 {
		return (defaultPage - 1) * pageSize
	}
	return uint64(pageParam-1) * pageSize
}

// PageSize calculates the page size for pagination based on the provided size parameter.
func PageSize(sizeParam int64) uint64 {
	if sizeParam <= 0 {
		return defaultPageSize
	}
	return uint64(sizeParam)
}

// lazyTx wraps transaction state for lazy initialization.
type lazyTx struct {
	db        *sql.DB
	tx        TxInterface
	readOnly  bool
	setup     func(TxInterface) error
	committed bool
	cancel    context.CancelFunc

	// err is sticky, once the transaction failed to open every later statement fails too
	err error
	// afterCommit runs once the transaction committed, dropped on rollback
	afterCommit []func()
}

// get returns the transaction, creating it lazily on first call.
func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	if lt.err != nil {
		return nil, lt.err
	}

	// detached from the request context so a cancelled request does not roll back
	// behind the middleware's back, bounded by a timeout instead
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: lt.readOnly})
	if err != nil {
		cancel()
		lt.err = fmt.Errorf("failed to begin transaction: %w", err)
		return nil, lt.err
	}

	if lt.setup != nil {
		if err := lt.setup(tx); err != nil {
			_ = tx.Rollback()
			cancel()
			lt.err = fmt.Errorf("failed to prepare transaction session: %w", err)
			return nil, lt.err
		}
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

// isStarted returns true if the transaction has been created.
func (lt *lazyTx) isStarted() bool {
	return lt.tx != nil
}

type DBClient struct {
	// pool is the native PGX pool we hold to allow closing
	pool *pgxpool.Pool
	// db original instance to handle transactions
	db *sql.DB
	// dbRunner is the runner instance of choice
	dbRunner sq.BaseRunner

	sessionRole string
	sessionUser SessionUserFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement provides a StatementBuilderType configured to use the DBClient's database connection.
// If a transaction exists in the context, it will be used (created lazily on first use).
// A transaction that cannot be opened never falls back to the pool, the statement fails instead.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if lazyTx := lazyTxFromContext(ctx); lazyTx != nil {
		tx, err := lazyTx.get()
		if err != nil {
			d.logger.Errorf("failed to create lazy transaction: %v", err)
			return sq.StatementBuilder.
				PlaceholderFormat(sq.Dollar).
				RunWith(failedRunner{err: err})
		}

		return sq.StatementBuilder.
			PlaceholderFormat(sq.Dollar).
			RunWith(tx)
	}

	if tx := TxFromContext(ctx); tx != nil {
		return sq.StatementBuilder.
			PlaceholderFormat(sq.Dollar).
			RunWith(tx)
	}

	return sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		RunWith(d.dbRunner)
}

// TxStatement provides a StatementBuilderType configured to use a transaction.
func (d *DBClient) TxStatement(ctx context.Context) (TxInterface, sq.StatementBuilderType, error) {
	tx, err := d.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: false})
	if err != nil {
		return nil, sq.StatementBuilderType{}, err
	}

	if err := d.prepareSession(ctx)(tx); err != nil {
		_ = tx.Rollback()
		return nil, sq.StatementBuilderType{}, err
	}

	return tx, sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(tx), nil
}

// BeginTx starts a new transaction and returns a context with the transaction attached.
func (d *DBClient) BeginTx(ctx context.Context) (context.Context, TxInterface, error) {
	tx, err := d.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted, ReadOnly: false})
	if err != nil {
		return ctx, nil, err
	}

	if err := d.prepareSession(ctx)(tx); err != nil {
		_ = tx.Rollback()
		return ctx, nil, err
	}

	return ContextWithTx(ctx, tx), tx, nil
}

// prepareSession returns the statements run at the start of each transaction, exposing
// the acting user and the session role to row level security
func (d *DBClient) prepareSession(ctx context.Context) func(TxInterface) error {
	var userID string
	if d.sessionUser != nil {
		userID, _ = d.sessionUser(ctx)
	}

	return func(tx TxInterface) error {
		if userID != "" {
			if _, err := tx.Exec("SELECT set_config($1, $2, true)", currentUserSetting, userID); err != nil {
				return fmt.Errorf("failed to set session user: %w", err)
			}
		}

		if d.sessionRole != "" {
			if _, err := tx.Exec("SET LOCAL ROLE " + pgx.Identifier{d.sessionRole}.Sanitize()); err != nil {
				return fmt.Errorf("failed to set session role: %w", err)
			}
		}

		return nil
	}
}

// ContextWithTx returns a new context with the transaction attached.
func ContextWithTx(ctx context.Context, tx TxInterface) context.Context {
	return context.WithValue(ctx, txContextKey, tx)
}

// TxFromContext extracts a transaction from the context, returning nil if none exists.
func TxFromContext(ctx context.Context) TxInterface {
	if tx, ok := ctx.Value(txContextKey).(TxInterface); ok {
		return tx
	}
	return nil
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxContextKey).(*lazyTx); ok {
		return lt
	}
	return nil
}

func contextWithLazyTx(ctx context.Context, lt *lazyTx) context.Context {
	return context.WithValue(ctx, lazyTxContextKey, lt)
}

// WithTx executes fn within a transaction, created lazily on first database access.
// The transaction is rolled back if fn returns an error and committed otherwise.
// When ctx already carries a transaction fn joins it and the outer owner decides the outcome.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	return d.withTx(ctx, false, fn)
}

// WithReadOnlyTx is WithTx for read only work, it still carries the session user so
// row level security filters the reads
func (d *DBClient) WithReadOnlyTx(ctx context.Context, fn func(context.Context) error) error {
	return d.withTx(ctx, true, fn)
}

func (d *DBClient) withTx(ctx context.Context, readOnly bool, fn func(context.Context) error) error {
	if lazyTxFromContext(ctx) != nil || TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	lt := &lazyTx{
		db:       d.db,
		readOnly: readOnly,
		setup:    d.prepareSession(ctx),
	}
	txCtx := contextWithLazyTx(ctx, lt)

	defer func() {
		if lt.isStarted() && !lt.committed {
			if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	// fn may have swallowed the statement error, the session was never prepared either way
	if lt.err != nil {
		return lt.err
	}

	if lt.isStarted() {
		if err := lt.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}
		lt.committed = true
	}

	for _, hook := range lt.afterCommit {
		hook()
	}

	return nil
}

// AfterCommit defers fn until the transaction carried by ctx commits, it is dropped if the
// transaction rolls back. Without a lazily managed transaction fn runs immediately.
// The returned value reports whether fn was deferred.
func AfterCommit(ctx context.Context, fn func()) bool {
	if lt := lazyTxFromContext(ctx); lt != nil {
		lt.afterCommit = append(lt.afterCommit, fn)
		return true
	}

	fn()
	return false
}

func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	err := d.db.PingContext(ctx)

	available := 1.0
	if err != nil {
		available = 0
	}
	_ = d.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, available)

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient creates a new DBClient instance with the provided DSN and configuration options.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Fatalf("DSN validation failed, shutting down, err: %v", err)
	}

	if cfg.TracingEnabled {
		// otelpgx.NewTracer will use default global TracerProvider, just like our tracer struct
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := NewDBClientWithConn(db, cfg, tracer, monitor, logger)
	d.pool = pool

	return d, nil
}

// NewDBClientWithConn builds a client around an already opened database handle
func NewDBClientWithConn(db *sql.DB, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	d := new(DBClient)
	d.db = db
	d.dbRunner = db

	d.sessionRole = cfg.SessionRole
	d.sessionUser = cfg.SessionUser

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
