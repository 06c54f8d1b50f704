// models/reminder.go
package models

import "time"

// ReminderRequest is the payload for POST /api/deals/:id/reminders.
type ReminderRequest struct {
	Title  string    `json:"title" binding:"required"`
	Body   string    `json:"body" binding:"required"`
	FireAt time.Time `json:"fireAt" binding:"required"`
}

// ReminderPayload is the queued task body consumed by the reminder worker.
type ReminderPayload struct {
	UserID string `json:"userId"`
	DealID string `json:"dealId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	FireAt string `json:"fireAt"`
}
