// FocusNest - Survey Analytics and Subscription Modeling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/focusnest

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/focusnest/internal/config"
	"github.com/tomtom215/focusnest/internal/dataset"
	"github.com/tomtom215/focusnest/internal/logging"
	"github.com/tomtom215/focusnest/internal/models"
)

// mirrorTable is the DuckDB table holding the current dataset rows.
const mirrorTable = "survey_responses"

// ErrMirrorEmpty is returned when aggregates are requested before any
// dataset has been mirrored.
var ErrMirrorEmpty = errors.New("analytical mirror holds no dataset")

// DB wraps the DuckDB connection holding the survey mirror. The in-memory
// pipeline never reads it; it exists for the SQL aggregate summaries that
// would be wasteful to hand-roll over the Table.
type DB struct {
	conn   *sql.DB
	cfg    *config.DatabaseConfig
	logger zerolog.Logger

	stmtCache   map[string]*sql.Stmt
	stmtCacheMu sync.RWMutex

	// Schema of the current mirror, replaced wholesale by Rebuild.
	schemaMu sync.RWMutex
	columns  []string
	numeric  []string
}

// New opens (or creates) the mirror database. Extension auto-loading is
// disabled so startup cannot hang on a restricted network.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	params := fmt.Sprintf("access_mode=read_write&threads=%d&autoinstall_known_extensions=false&autoload_known_extensions=false", threads)
	if cfg.MaxMemory != "" {
		params += "&max_memory=" + cfg.MaxMemory
	}

	conn, err := sql.Open("duckdb", cfg.Path+"?"+params)
	if err != nil {
		return nil, fmt.Errorf("open analytical mirror: %w", err)
	}
	conn.SetMaxOpenConns(runtime.NumCPU())
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)

	db := &DB{
		conn:      conn,
		cfg:       cfg,
		logger:    logging.WithComponent("database"),
		stmtCache: make(map[string]*sql.Stmt),
	}
	db.logger.Info().
		Str("path", cfg.Path).
		Int("threads", threads).
		Msg("analytical mirror opened")
	return db, nil
}

// Close releases prepared statements and the connection.
func (db *DB) Close() error {
	db.clearStatements()
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Ping reports whether the mirror connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Rebuild replaces survey_responses with the rows of table. The staging
// table is filled first and swapped in inside the same transaction, so
// concurrent readers see either the old mirror or the new one, never a
// partial load. Numeric and binary columns become DOUBLE, everything else
// VARCHAR.
func (db *DB) Rebuild(ctx context.Context, table *dataset.Table) error {
	profiles := table.Profiles()
	columns := make([]string, 0, len(profiles))
	numeric := make([]string, 0, len(profiles))
	defs := make([]string, 0, len(profiles))
	isNumeric := make([]bool, len(profiles))

	for i, p := range profiles {
		columns = append(columns, p.Name)
		sqlType := "VARCHAR"
		if p.IsNumeric() {
			sqlType = "DOUBLE"
			numeric = append(numeric, p.Name)
			isNumeric[i] = true
		}
		defs = append(defs, quoteIdent(p.Name)+" "+sqlType)
	}

	staging := mirrorTable + "_staging"
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(staging)); err != nil {
		return fmt.Errorf("drop staging table: %w", err)
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(staging), strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("create staging table: %w", err)
	}

	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(staging), strings.Join(placeholders, ", "))
	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	records := table.Records()
	for rowIdx, row := range records[1:] {
		args := make([]any, len(columns))
		for i := range columns {
			args[i] = cellValue(row[i], isNumeric[i])
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", rowIdx, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(mirrorTable)); err != nil {
		return fmt.Errorf("drop mirror table: %w", err)
	}
	renameSQL := fmt.Sprintf("ALTER TABLE %s RENAME TO %s", quoteIdent(staging), quoteIdent(mirrorTable))
	if _, err := tx.ExecContext(ctx, renameSQL); err != nil {
		return fmt.Errorf("swap mirror table: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}

	// Cached statements referenced the dropped table.
	db.clearStatements()

	db.schemaMu.Lock()
	db.columns = columns
	db.numeric = numeric
	db.schemaMu.Unlock()

	db.logger.Info().
		Int("rows", table.Rows()).
		Int("columns", len(columns)).
		Int("numeric_columns", len(numeric)).
		Msg("mirror rebuilt")
	return nil
}

// Summary computes per-class SQL aggregates for every numeric column,
// grouped by the target column. Classes sort lexically; each class carries
// the numeric columns in mirrored order. A numeric target is not aggregated
// against itself.
func (db *DB) Summary(ctx context.Context, target string) (*models.DatasetSummary, error) {
	db.schemaMu.RLock()
	columns := append([]string(nil), db.columns...)
	numeric := append([]string(nil), db.numeric...)
	db.schemaMu.RUnlock()

	if len(columns) == 0 {
		return nil, ErrMirrorEmpty
	}
	if !containsColumn(columns, target) {
		return nil, fmt.Errorf("target column %q not in mirror", target)
	}

	countQuery := fmt.Sprintf(
		"SELECT CAST(%s AS VARCHAR) AS class, COUNT(*) FROM %s GROUP BY class ORDER BY class",
		quoteIdent(target), quoteIdent(mirrorTable))
	stmt, err := db.getStmt(ctx, countQuery)
	if err != nil {
		return nil, err
	}
	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("count classes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summary := &models.DatasetSummary{Target: target, Classes: []models.ClassSummary{}}
	index := make(map[string]int)
	for rows.Next() {
		var class sql.NullString
		var count int
		if err := rows.Scan(&class, &count); err != nil {
			return nil, fmt.Errorf("scan class count: %w", err)
		}
		index[class.String] = len(summary.Classes)
		summary.Classes = append(summary.Classes, models.ClassSummary{
			Class:   class.String,
			Rows:    count,
			Numeric: []models.NumericAggregate{},
		})
		summary.Rows += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate class counts: %w", err)
	}

	for _, col := range numeric {
		if col == target {
			continue
		}
		if err := db.aggregateColumn(ctx, target, col, index, summary); err != nil {
			return nil, err
		}
	}
	return summary, nil
}

// aggregateColumn folds one numeric column's per-class aggregates into the
// summary.
func (db *DB) aggregateColumn(ctx context.Context, target, col string, index map[string]int, summary *models.DatasetSummary) error {
	ident := quoteIdent(col)
	query := fmt.Sprintf(
		"SELECT CAST(%s AS VARCHAR) AS class, AVG(%s), MEDIAN(%s), MIN(%s), MAX(%s) FROM %s GROUP BY class ORDER BY class",
		quoteIdent(target), ident, ident, ident, ident, quoteIdent(mirrorTable))
	stmt, err := db.getStmt(ctx, query)
	if err != nil {
		return err
	}
	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", col, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var class sql.NullString
		var mean, median, minV, maxV sql.NullFloat64
		if err := rows.Scan(&class, &mean, &median, &minV, &maxV); err != nil {
			return fmt.Errorf("scan aggregates for %s: %w", col, err)
		}
		i, ok := index[class.String]
		if !ok {
			continue
		}
		summary.Classes[i].Numeric = append(summary.Classes[i].Numeric, models.NumericAggregate{
			Column: col,
			Mean:   mean.Float64,
			Median: median.Float64,
			Min:    minV.Float64,
			Max:    maxV.Float64,
		})
	}
	return rows.Err()
}

// getStmt returns a cached prepared statement for query, preparing it on
// first use. Rebuild clears the cache because cached statements bind to the
// dropped table.
func (db *DB) getStmt(ctx context.Context, query string) (*sql.Stmt, error) {
	db.stmtCacheMu.RLock()
	stmt, ok := db.stmtCache[query]
	db.stmtCacheMu.RUnlock()
	if ok {
		return stmt, nil
	}

	db.stmtCacheMu.Lock()
	defer db.stmtCacheMu.Unlock()
	if stmt, ok := db.stmtCache[query]; ok {
		return stmt, nil
	}
	stmt, err := db.conn.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("prepare statement: %w", err)
	}
	db.stmtCache[query] = stmt
	return stmt, nil
}

func (db *DB) clearStatements() {
	db.stmtCacheMu.Lock()
	for _, stmt := range db.stmtCache {
		if stmt != nil {
			_ = stmt.Close()
		}
	}
	db.stmtCache = make(map[string]*sql.Stmt)
	db.stmtCacheMu.Unlock()
}

// cellValue converts one CSV cell for insertion. Numeric columns insert
// parsed doubles, with NULL for anything unparseable; the rest insert raw
// text.
func cellValue(cell string, numeric bool) any {
	if !numeric {
		return cell
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return nil
	}
	return v
}

// quoteIdent wraps a column name for interpolation into DDL and aggregate
// queries; survey headers are data, never trusted identifiers.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func containsColumn(columns []string, name string) bool {
	for _, c := range columns {
		if c == name {
			return true
		}
	}
	return false
}
