package models

import "time"

// MeetingStatus enumerates meeting lifecycle states. Cancelled meetings
// stay in the data set but are excluded from capacity and layout.
type MeetingStatus string

const (
	MeetingStatusApproved  MeetingStatus = "approved"
	MeetingStatusPending   MeetingStatus = "pending"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// Meeting is a scheduled consultation with a customer.
type Meeting struct {
	ID        string        `db:"id" json:"id"`
	UserID    string        `db:"user_id" json:"user_id"`
	Title     string        `db:"title" json:"title"`
	StartsAt  time.Time     `db:"starts_at" json:"starts_at"`
	EndsAt    time.Time     `db:"ends_at" json:"ends_at"`
	Status    MeetingStatus `db:"status" json:"status"`
	Notes     string        `db:"notes" json:"notes"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// MeetingFilter narrows down meeting listings.
type MeetingFilter struct {
	From     *time.Time
	To       *time.Time
	UserID   string
	Page     int
	PageSize int
}
