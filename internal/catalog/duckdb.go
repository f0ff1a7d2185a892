// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strconv"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/juan-28/entertainment-analysis/internal/logging"
	"github.com/juan-28/entertainment-analysis/internal/metrics"
	"github.com/juan-28/entertainment-analysis/internal/models"
)

// DuckDBConfig configures the DuckDB engine.
type DuckDBConfig struct {
	// Path is the database file; empty runs in memory.
	Path string

	// MaxMemory caps DuckDB memory, e.g. "1GB". Empty keeps the default.
	MaxMemory string

	// Threads caps DuckDB worker threads. 0 keeps the default.
	Threads int
}

// DuckDBEngine loads each operation's inputs into temporary tables on a
// dedicated connection and computes the result in SQL.
type DuckDBEngine struct {
	db *sql.DB
}

// OpenDuckDB opens a DuckDB database for merging.
func OpenDuckDB(cfg DuckDBConfig) (*DuckDBEngine, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}
	params := url.Values{}
	params.Set("autoinstall_known_extensions", "false")
	params.Set("autoload_known_extensions", "false")
	if cfg.MaxMemory != "" {
		params.Set("max_memory", cfg.MaxMemory)
	}
	if cfg.Threads > 0 {
		params.Set("threads", strconv.Itoa(cfg.Threads))
	}

	db, err := sql.Open("duckdb", path+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to duckdb: %w", err)
	}
	return &DuckDBEngine{db: db}, nil
}

// Close releases the database.
func (e *DuckDBEngine) Close() error {
	return e.db.Close()
}

func (e *DuckDBEngine) Name() string { return "duckdb" }

const (
	createRatings = `CREATE OR REPLACE TEMP TABLE ratings (
		id VARCHAR, num_votes BIGINT, average_rating DOUBLE)`
	createBasics = `CREATE OR REPLACE TEMP TABLE basics (
		id VARCHAR, title_type VARCHAR, primary_title VARCHAR, start_year INTEGER, genres VARCHAR)`
	createEntries = `CREATE OR REPLACE TEMP TABLE entries (
		id VARCHAR, title_type VARCHAR, primary_title VARCHAR, join_key VARCHAR,
		num_votes BIGINT, average_rating DOUBLE, genres VARCHAR, start_year INTEGER)`
	createActivity = `CREATE OR REPLACE TEMP TABLE activity (idx BIGINT, join_key VARCHAR)`

	entryColumns = `id, title_type, primary_title, num_votes, average_rating, genres, start_year`

	insertRating   = `INSERT INTO ratings VALUES (?, ?, ?)`
	insertBasic    = `INSERT INTO basics VALUES (?, ?, ?, ?, ?)`
	insertEntry    = `INSERT INTO entries VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	insertActivity = `INSERT INTO activity VALUES (?, ?)`

	selectJoinCatalog = `SELECT b.id, b.title_type, b.primary_title, r.num_votes, r.average_rating, b.genres, b.start_year
		FROM basics b JOIN ratings r ON b.id = r.id
		ORDER BY b.id`

	selectArgmax = `SELECT ` + entryColumns + ` FROM (
			SELECT *, row_number() OVER (PARTITION BY join_key ORDER BY num_votes DESC, id ASC) AS rn
			FROM entries
		) WHERE rn = 1
		ORDER BY join_key`

	selectJoinActivity = `SELECT a.idx, e.id, e.title_type, e.primary_title, e.num_votes, e.average_rating, e.genres, e.start_year
		FROM activity a JOIN entries e ON a.join_key = e.join_key
		ORDER BY a.join_key, a.idx`
)

func (e *DuckDBEngine) JoinCatalog(ctx context.Context, ratings []models.Rating, basics []models.Basic) ([]models.CatalogEntry, error) {
	var out []models.CatalogEntry
	err := e.withConn(ctx, func(conn *sql.Conn) error {
		if err := loadTable(ctx, conn, "ratings", createRatings, insertRating, len(ratings), func(i int) []any {
			r := &ratings[i]
			return []any{r.ID, r.NumVotes, r.AverageRating}
		}); err != nil {
			return err
		}
		if err := loadTable(ctx, conn, "basics", createBasics, insertBasic, len(basics), func(i int) []any {
			b := &basics[i]
			return []any{b.ID, b.TitleType, b.PrimaryTitle, nullableYear(b.StartYear), joinGenres(b.Genres)}
		}); err != nil {
			return err
		}
		var err error
		out, err = queryEntries(ctx, conn, "join_catalog", selectJoinCatalog)
		return err
	})
	return out, err
}

func (e *DuckDBEngine) ArgmaxByKey(ctx context.Context, entries []models.CatalogEntry) ([]models.CatalogEntry, error) {
	var out []models.CatalogEntry
	err := e.withConn(ctx, func(conn *sql.Conn) error {
		if err := loadEntries(ctx, conn, entries); err != nil {
			return err
		}
		var err error
		out, err = queryEntries(ctx, conn, "argmax", selectArgmax)
		return err
	})
	return out, err
}

func (e *DuckDBEngine) JoinActivity(ctx context.Context, catalog []models.CatalogEntry, activity []models.ActivityRecord) ([]models.JoinedRecord, error) {
	var out []models.JoinedRecord
	err := e.withConn(ctx, func(conn *sql.Conn) error {
		if err := loadEntries(ctx, conn, catalog); err != nil {
			return err
		}
		if err := loadTable(ctx, conn, "activity", createActivity, insertActivity, len(activity), func(i int) []any {
			return []any{int64(i), activity[i].Key()}
		}); err != nil {
			return err
		}

		start := time.Now()
		rows, err := conn.QueryContext(ctx, selectJoinActivity)
		metrics.RecordDBQuery("SELECT", "join_activity", time.Since(start), err)
		if err != nil {
			return fmt.Errorf("failed to join activity: %w", err)
		}
		defer closeRows(rows)

		for rows.Next() {
			var idx int64
			var entry models.CatalogEntry
			if err := scanEntry(rows, &entry, &idx); err != nil {
				return err
			}
			if idx < 0 || int(idx) >= len(activity) {
				return fmt.Errorf("activity index %d out of range", idx)
			}
			out = append(out, models.NewJoinedRecord(&entry, &activity[idx]))
		}
		return rows.Err()
	})
	return out, err
}

// withConn pins one connection so the temporary tables of a call stay
// visible to each of its statements.
func (e *DuckDBEngine) withConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := e.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire duckdb connection: %w", err)
	}
	defer func() {
		for _, table := range []string{"ratings", "basics", "entries", "activity"} {
			if _, err := conn.ExecContext(context.Background(), "DROP TABLE IF EXISTS "+table); err != nil {
				logging.Warn().Err(err).Str("table", table).Msg("Failed to drop temporary table")
			}
		}
		if err := conn.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to release duckdb connection")
		}
	}()
	return fn(conn)
}

func loadEntries(ctx context.Context, conn *sql.Conn, entries []models.CatalogEntry) error {
	return loadTable(ctx, conn, "entries", createEntries, insertEntry, len(entries), func(i int) []any {
		c := &entries[i]
		return []any{
			c.ID, c.TitleType, c.PrimaryTitle, c.Key(),
			c.NumVotes, c.AverageRating, joinGenres(c.Genres), nullableYear(c.StartYear),
		}
	})
}

// loadTable creates a table and fills it inside one transaction with a
// prepared insert.
func loadTable(ctx context.Context, conn *sql.Conn, table, create, insert string, n int, row func(int) []any) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("INSERT", table, time.Since(start), err) }()

	if _, err = conn.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("failed to create %s: %w", table, err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().Err(rbErr).AnErr("original_error", err).Msg("Transaction rollback failed")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare insert into %s: %w", table, err)
	}
	defer func() {
		if closeErr := stmt.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Failed to close prepared statement")
		}
	}()

	for i := 0; i < n; i++ {
		if _, err = stmt.ExecContext(ctx, row(i)...); err != nil {
			return fmt.Errorf("failed to insert into %s row %d: %w", table, i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}

func queryEntries(ctx context.Context, conn *sql.Conn, name, query string) ([]models.CatalogEntry, error) {
	start := time.Now()
	rows, err := conn.QueryContext(ctx, query)
	metrics.RecordDBQuery("SELECT", name, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", name, err)
	}
	defer closeRows(rows)

	var out []models.CatalogEntry
	for rows.Next() {
		var entry models.CatalogEntry
		if err := scanEntry(rows, &entry, nil); err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return out, nil
}

// scanEntry scans the entry columns, preceded by an index column when idx
// is not nil.
func scanEntry(rows *sql.Rows, entry *models.CatalogEntry, idx *int64) error {
	var genres string
	var year sql.NullInt64
	dest := []any{&entry.ID, &entry.TitleType, &entry.PrimaryTitle, &entry.NumVotes, &entry.AverageRating, &genres, &year}
	if idx != nil {
		dest = append([]any{idx}, dest...)
	}
	if err := rows.Scan(dest...); err != nil {
		return fmt.Errorf("failed to scan catalog row: %w", err)
	}
	entry.Genres = splitGenres(genres)
	if year.Valid {
		y := int(year.Int64)
		entry.StartYear = &y
	}
	return nil
}

func nullableYear(y *int) any {
	if y == nil {
		return nil
	}
	return int64(*y)
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close rows")
	}
}
