package models

// TrackPoint represents one GPS reading inside an activity
type TrackPoint struct {
	ID         int64   `json:"id" db:"id"`
	ActivityID int64   `json:"activityId" db:"activity_id"`
	Latitude   float64 `json:"latitude" db:"lat"`
	Longitude  float64 `json:"longitude" db:"lon"`

	// Altitude is in feet. nil means the source carried the no-reading
	// sentinel (any raw value <= -777); the sentinel is never stored.
	Altitude *int `json:"altitude,omitempty" db:"altitude"`

	// DateDays is the legacy serial day count (days since 1899-12-30),
	// kept for source compatibility and unused by analytics.
	DateDays float64 `json:"dateDays" db:"date_days"`

	// DateTime uses the normalized "2006-01-02 15:04:05" form.
	DateTime string `json:"dateTime" db:"date_time"`
}

// TrackPointsResponse represents a paginated response of track points
type TrackPointsResponse struct {
	Data       []TrackPoint `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	PageSize   int          `json:"pageSize"`
	TotalPages int          `json:"totalPages"`
}
