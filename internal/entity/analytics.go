package entity

import "time"

// Event is one append-only usage event (e.g. a successful generation).
type Event struct {
	ID        string
	UserID    string
	Type      string
	Data      map[string]any
	CreatedAt time.Time
}

// Feedback is one append-only feedback entry (thumbs up/down plus comment).
type Feedback struct {
	ID        string
	UserID    string
	Rating    string
	Comment   string
	CreatedAt time.Time
}

// RecordEventRequest is the body of POST /events.
type RecordEventRequest struct {
	UserID string         `json:"userId"`
	Type   string         `json:"type"`
	Data   map[string]any `json:"data"`
}

// RecordFeedbackRequest is the body of POST /feedback.
type RecordFeedbackRequest struct {
	UserID  string `json:"userId"`
	Rating  string `json:"rating"`
	Comment string `json:"comment"`
}
