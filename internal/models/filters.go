package models

// ActivityFilter represents filter parameters for querying activities
type ActivityFilter struct {
	UserID             string `form:"userId"`
	TransportationMode string `form:"mode"`
	StartAfter         string `form:"startAfter"`  // inclusive lower bound on start_date_time
	StartBefore        string `form:"startBefore"` // exclusive upper bound on start_date_time
	LabeledOnly        bool   `form:"labeledOnly"`
	Page               int    `form:"page"`
	PageSize           int    `form:"pageSize"`
}

// UserFilter represents filter parameters for querying users
type UserFilter struct {
	HasLabels *bool `form:"hasLabels"`
	Page      int   `form:"page"`
	PageSize  int   `form:"pageSize"`
}
