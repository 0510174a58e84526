package main

import (
	"context"
	"database/sql"
	"fmt"

	"worldcup-dash/worldcup"

	_ "github.com/glebarez/go-sqlite"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS winners (
        country TEXT PRIMARY KEY,
        wins    INTEGER NOT NULL CHECK (wins >= 0)
    );`,
	`CREATE TABLE IF NOT EXISTS runner_ups (
        country    TEXT PRIMARY KEY,
        runner_ups INTEGER NOT NULL CHECK (runner_ups >= 0)
    );`,
	`CREATE TABLE IF NOT EXISTS year_results (
        year      INTEGER PRIMARY KEY,
        winner    TEXT NOT NULL,
        runner_up TEXT NOT NULL
    );`,
}

// exportDataset writes the normalized tables to the SQLite file at path.
// Re-exporting to the same file replaces the previous rows.
func exportDataset(ctx context.Context, path string, d *worldcup.Dataset) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for _, q := range schema {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export tx: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"winners", "runner_ups", "year_results"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, w := range d.Winners() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO winners (country, wins) VALUES (?, ?)`,
			w.Country, w.Wins); err != nil {
			return fmt.Errorf("inserting winner %s: %w", w.Country, err)
		}
	}
	for _, r := range d.RunnerUps() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO runner_ups (country, runner_ups) VALUES (?, ?)`,
			r.Country, r.RunnerUps); err != nil {
			return fmt.Errorf("inserting runner-up %s: %w", r.Country, err)
		}
	}
	for _, r := range d.Results() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO year_results (year, winner, runner_up) VALUES (?, ?, ?)`,
			r.Year, r.Winner, r.RunnerUp); err != nil {
			return fmt.Errorf("inserting result %d: %w", r.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export tx: %w", err)
	}
	return nil
}
