// models/document.go
package models

import "time"

// Document is a data-room entry. Tier is the minimum access tier an invited
// lender needs to see it; issuers and bookrunners see everything.
type Document struct {
	ID         string    `bson:"id" json:"id"`
	DealID     string    `bson:"dealId" json:"dealId"`
	Name       string    `bson:"name" json:"name"`
	Category   string    `bson:"category" json:"category"` // e.g. marketing, financials, legal
	Tier       string    `bson:"tier" json:"tier"`
	UploadedBy string    `bson:"uploadedBy" json:"uploadedBy"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// DocumentCreateRequest is the payload for POST /api/deals/:id/documents.
type DocumentCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	Tier     string `json:"tier"`
}
