// Package dbmetrics оборачивает *sql.DB и отдает в метрики длительность
// и исход каждого запроса, а также состояние пула соединений.
package dbmetrics

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	// DefaultPoolStatsInterval период снятия db.Stats() в WrapWithDefault
	DefaultPoolStatsInterval = 15 * time.Second
)

// Recorder приемник метрик запросов; реализуется pkg/metrics
type Recorder interface {
	ObserveDBQuery(operation, status string, seconds float64)
	SetDBPoolStats(open, inUse, idle int)
}

// DB инструментированная обертка над *sql.DB.
// Реализует тот же набор методов, что ждет postgres.Store.
type DB struct {
	db       *sql.DB
	recorder Recorder
}

// Wrap оборачивает соединение без фонового сбора статистики пула
func Wrap(db *sql.DB, recorder Recorder) *DB {
	return &DB{db: db, recorder: recorder}
}

// WrapWithDefault оборачивает соединение и запускает сбор статистики пула
// с периодом DefaultPoolStatsInterval до закрытия stopCh
func WrapWithDefault(db *sql.DB, recorder Recorder, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, recorder)
	go wrapped.CollectPoolStats(DefaultPoolStatsInterval, stopCh)
	return wrapped
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(query, start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(query, start, err)
	return rows, err
}

// QueryRowContext учитывает ошибку выполнения запроса; sql.ErrNoRows
// проявляется только при Scan и ошибкой не считается
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(query, start, row.Err())
	return row
}

// CollectPoolStats снимает статистику пула раз в interval до закрытия stopCh
func (d *DB) CollectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.recordPoolStats()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			d.recordPoolStats()
		}
	}
}

func (d *DB) recordPoolStats() {
	stats := d.db.Stats()
	d.recorder.SetDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle)
}

func (d *DB) observe(query string, start time.Time, err error) {
	status := StatusOK
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		status = StatusError
	}
	d.recorder.ObserveDBQuery(Operation(query), status, time.Since(start).Seconds())
}

// Operation метка запроса по первому ключевому слову
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "other"
	}

	switch op := strings.ToLower(fields[0]); op {
	case "select", "insert", "update", "delete", "create", "alter", "drop":
		return op
	default:
		return "other"
	}
}
