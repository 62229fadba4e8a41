package services

import (
	"context"
	"sync"

	"github.com/fitquest/fitquest/internal/client/models"
	"github.com/fitquest/fitquest/internal/client/repositories/awards"
	"github.com/fitquest/fitquest/internal/logging"
)

// AwardService grants a quest's EXP reward at most once per (quest, user)
// pair.
type AwardService interface {
	// AwardQuestExp awards the quest's EXP if the quest is complete and no
	// award was attempted before. Returns whether a level-up occurred.
	AwardQuestExp(ctx context.Context, quest models.Quest, userID int64) (bool, error)
}

type awardService struct {
	users   UserService
	markers awards.Repository
	log     logging.Logger

	// mu serializes the marker check-then-write so two concurrent award
	// attempts for the same pair cannot both pass the idempotency check.
	mu sync.Mutex
}

func NewAwardService(users UserService, markers awards.Repository, log logging.Logger) AwardService {
	return &awardService{users: users, markers: markers, log: log}
}

// AwardQuestExp settles the EXP reward for a completed quest.
//
// The marker is written whether the EXP grant succeeded or failed, and a
// failed grant is never retried. This is fail-closed on purpose: silently
// losing an award is acceptable, granting it twice is not. Only marker
// storage failures propagate, because without the marker the at-most-once
// guarantee is gone.
func (s *awardService) AwardQuestExp(ctx context.Context, quest models.Quest, userID int64) (bool, error) {
	if !quest.HasCompleted(userID) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	marker, err := s.markers.Get(ctx, quest.ID, userID)
	if err != nil {
		return false, err
	}
	if marker != nil {
		s.log.Debug(ctx, "exp already settled for quest", "quest_id", quest.ID, "user_id", userID)
		return false, nil
	}

	resp, awardErr := s.users.AddExp(ctx, userID, quest.Exp)

	m := models.AwardMarker{
		Awarded:   true,
		Timestamp: timeNow(),
		ExpAmount: quest.Exp,
		Errored:   awardErr != nil,
	}
	if err := s.markers.Put(ctx, quest.ID, userID, m); err != nil {
		return false, err
	}

	if awardErr != nil {
		s.log.Warn(ctx, "exp award failed, marker recorded",
			"quest_id", quest.ID, "user_id", userID, "error", awardErr)
		return false, nil
	}

	s.log.Info(ctx, "exp awarded",
		"quest_id", quest.ID, "user_id", userID, "exp", quest.Exp, "level_up", resp.LevelUp)
	return resp.LevelUp, nil
}
