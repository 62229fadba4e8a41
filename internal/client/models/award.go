package models

import "time"

// AwardMarker is the idempotency record written the first time an EXP award
// is attempted for a (quest, user) pair. Once a marker exists — errored or
// not — the pair is settled and no further award may be attempted.
type AwardMarker struct {
	Awarded   bool
	Timestamp time.Time
	ExpAmount int64
	Errored   bool
}
