package services

import (
	"context"
	"fmt"

	"github.com/fitquest/fitquest/internal/client/api"
	"github.com/fitquest/fitquest/internal/client/repositories/session"
	"github.com/fitquest/fitquest/internal/logging"
)

// WorkoutService marks individual workout units complete and derives whether
// a quest's workout set is fully finished. Errors always propagate; a failed
// completion must surface a retry affordance, never vanish.
type WorkoutService interface {
	MarkComplete(ctx context.Context, questID, workoutID int64) error
	AllCompleted(ctx context.Context, questID int64) (bool, error)
	CompleteQuest(ctx context.Context, questID int64) error
}

type workoutService struct {
	client  api.Client
	session session.Repository
	log     logging.Logger
}

func NewWorkoutService(client api.Client, sess session.Repository, log logging.Logger) WorkoutService {
	return &workoutService{client: client, session: sess, log: log}
}

// MarkComplete records the workout as done. The client does not track
// elapsed time: startTime and endTime are both the completion instant.
func (s *workoutService) MarkComplete(ctx context.Context, questID, workoutID int64) error {
	user, err := currentUser(ctx, s.session)
	if err != nil {
		return err
	}

	now := timeNow()
	if err := s.client.MarkWorkoutComplete(ctx, questID, workoutID, user.ID, now, now); err != nil {
		return fmt.Errorf("marking workout %d complete: %w", workoutID, err)
	}

	s.log.Info(ctx, "workout completed", "quest_id", questID, "workout_id", workoutID)
	return nil
}

// AllCompleted re-fetches the quest's workouts and reports whether every one
// is finished. It is a confirmation signal only: quest completion itself is
// server-computed and surfaces on the next quest fetch.
func (s *workoutService) AllCompleted(ctx context.Context, questID int64) (bool, error) {
	user, err := currentUser(ctx, s.session)
	if err != nil {
		return false, err
	}

	workouts, err := s.client.QuestWorkouts(ctx, questID, user.ID)
	if err != nil {
		return false, fmt.Errorf("fetching quest workouts: %w", err)
	}

	for _, w := range workouts {
		if !w.IsFinished {
			return false, nil
		}
	}

	s.log.Info(ctx, "all workouts completed", "quest_id", questID, "count", len(workouts))
	return true, nil
}

// CompleteQuest marks every unfinished workout complete, in the order the
// server returned them. Not atomic: the loop stops at the first failure and
// already-marked workouts stay marked.
func (s *workoutService) CompleteQuest(ctx context.Context, questID int64) error {
	user, err := currentUser(ctx, s.session)
	if err != nil {
		return err
	}

	workouts, err := s.client.QuestWorkouts(ctx, questID, user.ID)
	if err != nil {
		return fmt.Errorf("fetching quest workouts: %w", err)
	}

	for _, w := range workouts {
		if w.IsFinished {
			continue
		}
		now := timeNow()
		if err := s.client.MarkWorkoutComplete(ctx, questID, w.ID, user.ID, now, now); err != nil {
			return fmt.Errorf("marking workout %d complete: %w", w.ID, err)
		}
	}
	return nil
}
