package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"cuisine-scene/models"
)

// PostgresWriter keeps a history of tally runs in PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS tally_runs (
			id         UUID         PRIMARY KEY,
			region     TEXT         NOT NULL,
			city       TEXT         NOT NULL,
			total      INTEGER      NOT NULL,
			created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS tally_rows (
			run_id     UUID          NOT NULL REFERENCES tally_runs(id) ON DELETE CASCADE,
			position   INTEGER       NOT NULL,
			cuisine    VARCHAR(50)   NOT NULL,
			count      INTEGER,
			percentage NUMERIC(5,2),
			PRIMARY KEY (run_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_tally_runs_region ON tally_runs(region);
	`)
	return err
}

// Write stores the run and its rows in one transaction. Excluded categories
// are stored with NULL count and percentage after the known rows.
func (pw *PostgresWriter) Write(report *models.Report) error {
	if report == nil || report.Aggregate == nil {
		return nil
	}
	id, err := uuid.Parse(report.RunID)
	if err != nil {
		return fmt.Errorf("postgres: run id: %w", err)
	}

	tx, err := pw.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO tally_runs (id, region, city, total, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, report.Locality.Region, report.Locality.City, report.Aggregate.Total, report.CreatedAt,
	); err != nil {
		return fmt.Errorf("postgres: insert run: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO tally_rows (run_id, position, cuisine, count, percentage) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return fmt.Errorf("postgres: prepare rows: %w", err)
	}
	defer stmt.Close()

	pos := 0
	for _, row := range report.Aggregate.Rows {
		if _, err := stmt.Exec(id, pos, row.Category, row.Count, row.Percentage); err != nil {
			return fmt.Errorf("postgres: insert row %q: %w", row.Category, err)
		}
		pos++
	}
	for _, category := range report.Aggregate.Excluded {
		if _, err := stmt.Exec(id, pos, category, nil, nil); err != nil {
			return fmt.Errorf("postgres: insert row %q: %w", category, err)
		}
		pos++
	}

	return tx.Commit()
}

// FetchRun reads a stored run back into a Report (without recommendations).
func (pw *PostgresWriter) FetchRun(runID string) (*models.Report, error) {
	id, err := uuid.Parse(runID)
	if err != nil {
		return nil, fmt.Errorf("postgres: run id: %w", err)
	}

	report := &models.Report{RunID: id.String(), Aggregate: &models.Aggregate{}}
	err = pw.db.QueryRow(
		`SELECT region, city, total, created_at FROM tally_runs WHERE id = $1`, id,
	).Scan(&report.Locality.Region, &report.Locality.City, &report.Aggregate.Total, &report.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch run: %w", err)
	}

	rows, err := pw.db.Query(`
		SELECT cuisine, count, percentage
		FROM tally_rows
		WHERE run_id = $1
		ORDER BY position
	`, id)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch rows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cuisine string
			count   sql.NullInt64
			pct     sql.NullFloat64
		)
		if err := rows.Scan(&cuisine, &count, &pct); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		if !count.Valid {
			report.Aggregate.Excluded = append(report.Aggregate.Excluded, cuisine)
			continue
		}
		report.Aggregate.Rows = append(report.Aggregate.Rows, models.AggregateRow{
			Category:   cuisine,
			Count:      int(count.Int64),
			Percentage: pct.Float64,
		})
	}
	return report, rows.Err()
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
