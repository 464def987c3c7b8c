package storage

import "time"

const (
	TrackCompleted = "completed"
	TrackCurrent   = "current"
	TrackWarning   = "warning"
	TrackOverdue   = "overdue"
	TrackUpcoming  = "upcoming"
)

type TimelineStep struct {
	Step     string     `json:"step"`
	Days     int        `json:"days"`
	Deadline time.Time  `json:"deadline"`
	Actual   *time.Time `json:"actual"`
	Track    string     `json:"track"`
}
