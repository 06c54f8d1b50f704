// models/deadline.go
package models

import "time"

// Deadline is a derived milestone date on a deal. It is never stored:
// the deal service recomputes deadlines from the deal and the invitation
// on every read. Satisfied marks a date already in the past (kept for
// historical views rather than omitted); NDAGated marks a milestone whose
// materials stay closed until the lender's NDA is signed.
type Deadline struct {
	Label     string    `json:"label"`
	Date      time.Time `json:"date"`
	Satisfied bool      `json:"satisfied"`
	NDAGated  bool      `json:"ndaGated"`
}
