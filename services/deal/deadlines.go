package deal

import (
	"sort"
	"time"

	"dealroom/models"
)

// Deadline labels, one per lifecycle milestone.
const (
	DeadlineLaunch    = "launch"
	DeadlineSoftClose = "soft close"
	DeadlineHardClose = "hard close"
)

// DeriveDeadlinesAt computes the deal's deadline sequence as of the given
// instant. One deadline is produced per milestone present on the deal
// (launch, soft close, hard close), ascending by date. A date already in
// the past is kept and marked satisfied rather than omitted: dropping it
// would break historical audit views. The launch milestone is NDA-gated
// while the lender's NDA remains unsigned.
func DeriveDeadlinesAt(d *models.Deal, ndaSignedAt *time.Time, now time.Time) []models.Deadline {
	var deadlines []models.Deadline

	if d.LaunchDate != nil {
		deadlines = append(deadlines, models.Deadline{
			Label:     DeadlineLaunch,
			Date:      *d.LaunchDate,
			Satisfied: !d.LaunchDate.After(now),
			NDAGated:  ndaSignedAt == nil,
		})
	}
	if !d.CloseDate.IsZero() {
		deadlines = append(deadlines, models.Deadline{
			Label:     DeadlineSoftClose,
			Date:      d.CloseDate,
			Satisfied: !d.CloseDate.After(now),
		})
	}
	if d.HardCloseDate != nil {
		deadlines = append(deadlines, models.Deadline{
			Label:     DeadlineHardClose,
			Date:      *d.HardCloseDate,
			Satisfied: !d.HardCloseDate.After(now),
		})
	}

	sort.SliceStable(deadlines, func(i, j int) bool {
		return deadlines[i].Date.Before(deadlines[j].Date)
	})
	return deadlines
}

// DeriveDeadlines is DeriveDeadlinesAt evaluated at the current time.
func DeriveDeadlines(d *models.Deal, ndaSignedAt *time.Time) []models.Deadline {
	return DeriveDeadlinesAt(d, ndaSignedAt, time.Now())
}

// NextDeadlineAt returns the earliest deadline strictly in the future
// relative to the given instant, or nil when none remain.
func NextDeadlineAt(d *models.Deal, ndaSignedAt *time.Time, now time.Time) *models.Deadline {
	for _, dl := range DeriveDeadlinesAt(d, ndaSignedAt, now) {
		if dl.Date.After(now) {
			next := dl
			return &next
		}
	}
	return nil
}

// NextDeadline is NextDeadlineAt evaluated at the current time.
func NextDeadline(d *models.Deal, ndaSignedAt *time.Time) *models.Deadline {
	return NextDeadlineAt(d, ndaSignedAt, time.Now())
}
