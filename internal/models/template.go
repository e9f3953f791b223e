package models

import "time"

// Template triggers recognized by the notification side-channel.
const (
	TemplateTriggerMeetingScheduled = "meeting_scheduled"
)

// MessageTemplate is an admin-managed message body with placeholder
// substitution, fired on business events such as a scheduled meeting.
type MessageTemplate struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Trigger   string    `db:"trigger" json:"trigger"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
