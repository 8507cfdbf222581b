package repository

import (
	"database/sql"
	"fmt"

	"github.com/jengzang/geolife-backend-go/internal/models"
)

// ReportRepository runs the SQL-side reports that need no point folding
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// RowCounts counts the rows of the three core tables
func (r *ReportRepository) RowCounts() (*models.RowCounts, error) {
	var counts models.RowCounts
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&counts.Users); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM activities`).Scan(&counts.Activities); err != nil {
		return nil, fmt.Errorf("failed to count activities: %w", err)
	}
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM track_points`).Scan(&counts.TrackPoints); err != nil {
		return nil, fmt.Errorf("failed to count track points: %w", err)
	}
	return &counts, nil
}

// ActivityCountsPerUser returns every user's activity count, most active
// first. Users without activities do not appear.
func (r *ReportRepository) ActivityCountsPerUser() ([]models.UserActivityCount, error) {
	rows, err := r.db.Query(`
		SELECT user_id, COUNT(*) AS activity_count
		FROM activities
		GROUP BY user_id
		ORDER BY activity_count DESC, user_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity counts: %w", err)
	}
	defer rows.Close()

	var counts []models.UserActivityCount
	for rows.Next() {
		var c models.UserActivityCount
		if err := rows.Scan(&c.UserID, &c.ActivityCount); err != nil {
			return nil, fmt.Errorf("failed to scan activity count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// UsersByMode returns the distinct users with at least one activity
// labeled with the given transportation mode
func (r *ReportRepository) UsersByMode(mode string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT user_id
		FROM activities
		WHERE transportation_mode = ?
		ORDER BY user_id
	`, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to query users by mode: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}
		users = append(users, userID)
	}
	return users, rows.Err()
}

// ActivityCountPerMode counts labeled activities per transportation mode
func (r *ReportRepository) ActivityCountPerMode() ([]models.ModeCount, error) {
	rows, err := r.db.Query(`
		SELECT transportation_mode, COUNT(*) AS activity_count
		FROM activities
		WHERE transportation_mode IS NOT NULL
		GROUP BY transportation_mode
		ORDER BY activity_count DESC, transportation_mode
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mode counts: %w", err)
	}
	defer rows.Close()

	var counts []models.ModeCount
	for rows.Next() {
		var c models.ModeCount
		if err := rows.Scan(&c.TransportationMode, &c.ActivityCount); err != nil {
			return nil, fmt.Errorf("failed to scan mode count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// BusiestYear finds the year with the most activities and the year with
// the most recorded hours, and whether they coincide
func (r *ReportRepository) BusiestYear() (*models.BusiestYearReport, error) {
	var report models.BusiestYearReport

	err := r.db.QueryRow(`
		SELECT CAST(strftime('%Y', start_date_time) AS INTEGER) AS year, COUNT(*) AS activity_count
		FROM activities
		WHERE start_date_time IS NOT NULL
		GROUP BY year
		ORDER BY activity_count DESC
		LIMIT 1
	`).Scan(&report.MostActivities.Year, &report.MostActivities.ActivityCount)
	if err == sql.ErrNoRows {
		return &report, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query busiest year by activities: %w", err)
	}

	err = r.db.QueryRow(`
		SELECT CAST(strftime('%Y', start_date_time) AS INTEGER) AS year,
		       SUM((julianday(end_date_time) - julianday(start_date_time)) * 24) AS hours
		FROM activities
		WHERE start_date_time IS NOT NULL AND end_date_time IS NOT NULL
		GROUP BY year
		ORDER BY hours DESC
		LIMIT 1
	`).Scan(&report.MostHours.Year, &report.MostHours.Hours)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to query busiest year by hours: %w", err)
	}

	report.SameYear = report.MostActivities.Year == report.MostHours.Year
	return &report, nil
}
