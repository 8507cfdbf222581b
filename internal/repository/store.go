package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/geolife-backend-go/internal/models"
)

// SQLStore is the sqlite implementation of the storage boundary consumed
// by ingestion and analytics
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore creates a store over an open database
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// PutUser persists one user record
func (s *SQLStore) PutUser(user models.User) error {
	_, err := s.db.Exec(
		`INSERT INTO users (id, has_labels) VALUES (?, ?)`,
		user.ID, user.HasLabels,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user %s: %w", user.ID, err)
	}
	return nil
}

// PutActivities persists a batch of sealed activities in one transaction
func (s *SQLStore) PutActivities(activities []models.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin activity batch: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO activities (id, user_id, transportation_mode, start_date_time, end_date_time)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare activity insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range activities {
		if _, err := stmt.Exec(a.ID, a.UserID, a.TransportationMode, a.StartDateTime, a.EndDateTime); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert activity %d: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activity batch: %w", err)
	}
	return nil
}

// PutTrackPoints persists a batch of track points in one transaction
func (s *SQLStore) PutTrackPoints(points []models.TrackPoint) error {
	if len(points) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin track point batch: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO track_points (id, activity_id, lat, lon, altitude, date_days, date_time)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare track point insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.Exec(p.ID, p.ActivityID, p.Latitude, p.Longitude, p.Altitude, p.DateDays, p.DateTime); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert track point %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit track point batch: %w", err)
	}
	return nil
}

// IterActivities returns activities matching the filter, ordered by id
func (s *SQLStore) IterActivities(filter models.ActivityFilter) ([]models.Activity, error) {
	query := `SELECT id, user_id, transportation_mode, start_date_time, end_date_time FROM activities`

	var conditions []string
	var args []interface{}

	if filter.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, filter.UserID)
	}
	if filter.TransportationMode != "" {
		conditions = append(conditions, "transportation_mode = ?")
		args = append(args, filter.TransportationMode)
	}
	if filter.LabeledOnly {
		conditions = append(conditions, "transportation_mode IS NOT NULL")
	}
	if filter.StartAfter != "" {
		conditions = append(conditions, "start_date_time >= ?")
		args = append(args, filter.StartAfter)
	}
	if filter.StartBefore != "" {
		conditions = append(conditions, "start_date_time < ?")
		args = append(args, filter.StartBefore)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.PageSize, (page-1)*filter.PageSize)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.TransportationMode, &a.StartDateTime, &a.EndDateTime); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// IterTrackPoints returns the points of the given activities, ordered
// chronologically within the result when orderByTime is set
func (s *SQLStore) IterTrackPoints(activityIDs []int64, orderByTime bool) ([]models.TrackPoint, error) {
	if len(activityIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(activityIDs))
	args := make([]interface{}, len(activityIDs))
	for i, id := range activityIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, activity_id, lat, lon, altitude, date_days, date_time
		FROM track_points
		WHERE activity_id IN (%s)
	`, strings.Join(placeholders, ","))

	if orderByTime {
		query += " ORDER BY date_time, id"
	} else {
		query += " ORDER BY id"
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query track points: %w", err)
	}
	defer rows.Close()

	var points []models.TrackPoint
	for rows.Next() {
		var p models.TrackPoint
		if err := rows.Scan(&p.ID, &p.ActivityID, &p.Latitude, &p.Longitude, &p.Altitude, &p.DateDays, &p.DateTime); err != nil {
			return nil, fmt.Errorf("failed to scan track point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// GetUsers returns users matching the filter, ordered by id
func (s *SQLStore) GetUsers(filter models.UserFilter) ([]models.User, int64, error) {
	query := `SELECT id, has_labels FROM users`
	countQuery := `SELECT COUNT(*) FROM users`

	var conditions []string
	var args []interface{}
	if filter.HasLabels != nil {
		conditions = append(conditions, "has_labels = ?")
		args = append(args, *filter.HasLabels)
	}
	if len(conditions) > 0 {
		clause := " WHERE " + strings.Join(conditions, " AND ")
		query += clause
		countQuery += clause
	}

	var total int64
	if err := s.db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query += " ORDER BY id"
	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.PageSize, (page-1)*filter.PageSize)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.HasLabels); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := s.attachActivityIDs(users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// attachActivityIDs fills each user's owned activity id list from the
// activities table, in creation order
func (s *SQLStore) attachActivityIDs(users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	index := make(map[string]int, len(users))
	placeholders := make([]string, len(users))
	args := make([]interface{}, len(users))
	for i, u := range users {
		index[u.ID] = i
		placeholders[i] = "?"
		args[i] = u.ID
	}

	query := fmt.Sprintf(`
		SELECT id, user_id FROM activities
		WHERE user_id IN (%s)
		ORDER BY id
	`, strings.Join(placeholders, ","))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("failed to query activity ownership: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var userID string
		if err := rows.Scan(&id, &userID); err != nil {
			return fmt.Errorf("failed to scan activity ownership: %w", err)
		}
		if i, ok := index[userID]; ok {
			users[i].ActivityIDs = append(users[i].ActivityIDs, id)
		}
	}
	return rows.Err()
}
