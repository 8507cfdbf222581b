package models

// TimeLayout is the normalized timestamp form used across the model
const TimeLayout = "2006-01-02 15:04:05"

// Activity represents a contiguous run of track points belonging to one user,
// optionally tagged with a transportation mode and a time span.
//
// An activity is sealed exactly once by the segmenter: either on a label
// match (mode and span attached) or at end of file (mode left nil). It is
// never mutated afterwards.
type Activity struct {
	ID     int64  `json:"id" db:"id"`
	UserID string `json:"userId" db:"user_id"`

	// TransportationMode is nil until resolved by a label match,
	// and stays nil for activities sealed at end of file.
	TransportationMode *string `json:"transportationMode,omitempty" db:"transportation_mode"`

	// StartDateTime/EndDateTime use the normalized "2006-01-02 15:04:05" form.
	StartDateTime *string `json:"startDateTime,omitempty" db:"start_date_time"`
	EndDateTime   *string `json:"endDateTime,omitempty" db:"end_date_time"`

	// TrackPointIDs lists owned points in chronological (= insertion)
	// order. Assigned when the segmenter seals the activity; the edge is
	// stored on track_points.activity_id.
	TrackPointIDs []int64 `json:"trackPointIds,omitempty" db:"-"`
}

// ActivitiesResponse represents a paginated response of activities
type ActivitiesResponse struct {
	Data       []Activity `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}
