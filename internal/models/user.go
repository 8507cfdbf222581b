package models

// User represents one Geolife user folder ingested into the database
type User struct {
	ID        string `json:"id" db:"id"`
	HasLabels bool   `json:"hasLabels" db:"has_labels"` // true iff labels.txt produced a non-empty index

	// ActivityIDs lists the user's activities in creation order. The
	// ownership edge is stored on activities.user_id; reads rebuild the
	// list from that table rather than persisting it here.
	ActivityIDs []int64 `json:"activityIds,omitempty" db:"-"`
}

// UsersResponse represents a paginated response of users
type UsersResponse struct {
	Data       []User `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}
