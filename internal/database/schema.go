package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Ingestion is drop-and-recreate: every run starts from empty tables and
// identifier sequences start over. There is no incremental upsert path,
// so the schema is applied in one shot instead of versioned migrations.

var dropStatements = []string{
	`DROP TABLE IF EXISTS track_points`,
	`DROP TABLE IF EXISTS activities`,
	`DROP TABLE IF EXISTS users`,
}

var createStatements = []string{
	`CREATE TABLE users (
		id TEXT NOT NULL PRIMARY KEY,
		has_labels INTEGER NOT NULL
	)`,
	`CREATE TABLE activities (
		id INTEGER NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL,
		transportation_mode TEXT,
		start_date_time TEXT,
		end_date_time TEXT,
		FOREIGN KEY (user_id) REFERENCES users(id)
	)`,
	`CREATE TABLE track_points (
		id INTEGER NOT NULL PRIMARY KEY,
		activity_id INTEGER NOT NULL,
		lat REAL NOT NULL,
		lon REAL NOT NULL,
		altitude INTEGER,
		date_days REAL,
		date_time TEXT NOT NULL,
		FOREIGN KEY (activity_id) REFERENCES activities(id)
	)`,
	`CREATE INDEX idx_activities_user ON activities(user_id)`,
	`CREATE INDEX idx_activities_mode ON activities(transportation_mode)`,
	`CREATE INDEX idx_track_points_activity_time ON track_points(activity_id, date_time)`,
}

// ResetSchema drops and recreates the core tables for a fresh ingestion run
func ResetSchema(db *sql.DB) error {
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to drop table: %w", err)
		}
	}
	for _, stmt := range createStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	log.Println("Schema reset: users, activities, track_points recreated")
	return nil
}

// EnsureSchema creates the core tables if they do not exist yet, so the
// read-only server can start against an empty database.
func EnsureSchema(db *sql.DB) error {
	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='users'`).Scan(&name)
	if err == sql.ErrNoRows {
		return ResetSchema(db)
	}
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	return nil
}
