// models/deal.go
package models

import "time"

// Deal lifecycle stages.
const (
	DealStagePreMarketing = "pre-marketing"
	DealStageLive         = "live"
	DealStageAllocation   = "allocation"
	DealStageClosing      = "closing"
	DealStageClosed       = "closed"
)

// Deal is a syndicated loan transaction. LaunchDate and HardCloseDate are
// optional; CloseDate (the soft close) is always set.
type Deal struct {
	ID            string     `bson:"id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	Sponsor       string     `bson:"sponsor" json:"sponsor"`
	Industry      string     `bson:"industry" json:"industry"`
	Instrument    string     `bson:"instrument" json:"instrument"`
	Size          float64    `bson:"size" json:"size"`
	Currency      string     `bson:"currency" json:"currency"`
	Stage         string     `bson:"stage" json:"stage"`
	LaunchDate    *time.Time `bson:"launchDate,omitempty" json:"launchDate,omitempty"`
	CloseDate     time.Time  `bson:"closeDate" json:"closeDate"`
	HardCloseDate *time.Time `bson:"hardCloseDate,omitempty" json:"hardCloseDate,omitempty"`
	CreatedBy     string     `bson:"createdBy" json:"createdBy"`
	CreatedAt     time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// DealCreateRequest is the payload for POST /api/deals.
type DealCreateRequest struct {
	Name          string     `json:"name" binding:"required"`
	Sponsor       string     `json:"sponsor" binding:"required"`
	Industry      string     `json:"industry"`
	Instrument    string     `json:"instrument" binding:"required"`
	Size          float64    `json:"size" binding:"required,gt=0"`
	Currency      string     `json:"currency"`
	LaunchDate    *time.Time `json:"launchDate"`
	CloseDate     time.Time  `json:"closeDate" binding:"required"`
	HardCloseDate *time.Time `json:"hardCloseDate"`
}

// DealUpdateRequest carries the mutable term fields; nil means unchanged.
type DealUpdateRequest struct {
	Name          *string    `json:"name"`
	Sponsor       *string    `json:"sponsor"`
	Industry      *string    `json:"industry"`
	Instrument    *string    `json:"instrument"`
	Size          *float64   `json:"size"`
	Currency      *string    `json:"currency"`
	LaunchDate    *time.Time `json:"launchDate"`
	CloseDate     *time.Time `json:"closeDate"`
	HardCloseDate *time.Time `json:"hardCloseDate"`
}
