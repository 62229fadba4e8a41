// Package awards persists EXP-award idempotency markers, keyed by
// (quest, user). A dedicated table keeps these records out of the session
// store, so clearing the session on logout never forgets a settled award.
package awards

import (
	"context"

	"github.com/fitquest/fitquest/internal/client/models"
)

// Repository stores one marker per (quest, user) pair ever attempted.
// Get returns (nil, nil) when no marker exists. Markers are never deleted
// by normal operation.
type Repository interface {
	Get(ctx context.Context, questID, userID int64) (*models.AwardMarker, error)
	Put(ctx context.Context, questID, userID int64, m models.AwardMarker) error
}
