package models

// RowCounts reports how many rows each core table holds
type RowCounts struct {
	Users       int64 `json:"users"`
	Activities  int64 `json:"activities"`
	TrackPoints int64 `json:"trackPoints"`
}

// UserActivityCount pairs a user with a number of activities
type UserActivityCount struct {
	UserID        string `json:"userId" db:"user_id"`
	ActivityCount int64  `json:"activityCount" db:"activity_count"`
}

// ModeCount pairs a transportation mode with a number of labeled activities
type ModeCount struct {
	TransportationMode string `json:"transportationMode" db:"transportation_mode"`
	ActivityCount      int64  `json:"activityCount" db:"activity_count"`
}

// YearCount pairs a calendar year with an activity count
type YearCount struct {
	Year          int   `json:"year" db:"year"`
	ActivityCount int64 `json:"activityCount" db:"activity_count"`
}

// YearHours pairs a calendar year with total recorded hours
type YearHours struct {
	Year  int     `json:"year" db:"year"`
	Hours float64 `json:"hours" db:"hours"`
}

// BusiestYearReport answers which year had the most activities and
// whether the same year also had the most recorded hours
type BusiestYearReport struct {
	MostActivities YearCount `json:"mostActivities"`
	MostHours      YearHours `json:"mostHours"`
	SameYear       bool      `json:"sameYear"`
}

// UserDistance reports accumulated haversine distance for one user
type UserDistance struct {
	UserID             string  `json:"userId"`
	TransportationMode string  `json:"transportationMode"`
	Year               int     `json:"year"`
	DistanceKm         float64 `json:"distanceKm"`
}

// UserAltitudeGain pairs a user with total altitude gained in meters
type UserAltitudeGain struct {
	UserID     string  `json:"userId"`
	GainMeters float64 `json:"gainMeters"`
}

// UserInvalidActivities pairs a user with a count of invalid activities
type UserInvalidActivities struct {
	UserID       string `json:"userId"`
	InvalidCount int    `json:"invalidCount"`
}

// UserMode pairs a user with their most used transportation mode
type UserMode struct {
	UserID string `json:"userId"`
	Mode   string `json:"mode"`
	Count  int    `json:"count"`
}
