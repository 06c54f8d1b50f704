// models/activity.go
package models

import "time"

// Activity is one audit-log entry on a deal. Entries are append-only and
// served by GET /api/deals/:id/logs.
type Activity struct {
	ID     string    `bson:"id" json:"id"`
	DealID string    `bson:"dealId" json:"dealId"`
	Actor  string    `bson:"actor" json:"actor"`
	Role   string    `bson:"role" json:"role"`
	Action string    `bson:"action" json:"action"`
	Detail string    `bson:"detail,omitempty" json:"detail,omitempty"`
	At     time.Time `bson:"at" json:"at"`
}
