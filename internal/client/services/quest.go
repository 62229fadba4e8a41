package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/fitquest/fitquest/internal/client/api"
	"github.com/fitquest/fitquest/internal/client/models"
	"github.com/fitquest/fitquest/internal/client/repositories/session"
	"github.com/fitquest/fitquest/internal/logging"
)

// QuestService fetches quest state for the logged-in user. The derivation
// helpers (HasCompletedQuest, TodayQuest, QuestProgress) are pure package
// functions so callers can apply them to any quest slice.
type QuestService interface {
	ActiveQuests(ctx context.Context) ([]models.Quest, error)
	Workouts(ctx context.Context, questID int64) ([]models.QuestWorkout, error)
}

type questService struct {
	client  api.Client
	session session.Repository
	log     logging.Logger
}

func NewQuestService(client api.Client, sess session.Repository, log logging.Logger) QuestService {
	return &questService{client: client, session: sess, log: log}
}

// ActiveQuests fetches the user's quests and normalizes the two completion
// representations: every quest's UserIDs is rewritten to [userID] when
// IsFinished is true and to the empty list otherwise, so legacy consumers of
// the membership form see a consistent view.
func (s *questService) ActiveQuests(ctx context.Context) ([]models.Quest, error) {
	user, err := currentUser(ctx, s.session)
	if err != nil {
		return nil, err
	}

	quests, err := s.client.Quests(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching quests: %w", err)
	}

	for i := range quests {
		if quests[i].IsFinished != nil && *quests[i].IsFinished {
			quests[i].UserIDs = []int64{user.ID}
		} else {
			quests[i].UserIDs = []int64{}
		}
	}

	s.log.Debug(ctx, "fetched quests", "count", len(quests), "user_id", user.ID)
	return quests, nil
}

func (s *questService) Workouts(ctx context.Context, questID int64) ([]models.QuestWorkout, error) {
	user, err := currentUser(ctx, s.session)
	if err != nil {
		return nil, err
	}

	workouts, err := s.client.QuestWorkouts(ctx, questID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching quest workouts: %w", err)
	}
	return workouts, nil
}

// HasCompletedQuest reports whether userID completed the quest. IsFinished
// is authoritative when the server sent it; the deprecated UserIDs
// membership is the fallback.
func HasCompletedQuest(q models.Quest, userID int64) bool {
	return q.HasCompleted(userID)
}

// QuestProgress returns a coarse progress percentage: 100 when the quest is
// complete, 50 otherwise.
func QuestProgress(q models.Quest, userID int64) int {
	if HasCompletedQuest(q, userID) {
		return 100
	}
	return 50
}

// TodayQuest picks the quest to surface on the home screen: the most
// recently started quest that has not yet ended, or nil. Quests sharing a
// start date keep their input order (stable sort).
func TodayQuest(quests []models.Quest, now time.Time) *models.Quest {
	if len(quests) == 0 {
		return nil
	}

	sorted := make([]models.Quest, len(quests))
	copy(sorted, quests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})

	for i := range sorted {
		if !sorted[i].EndDate.Before(now) {
			return &sorted[i]
		}
	}
	return nil
}

// currentUser reads the cached user, mapping an absent session to
// api.ErrUnauthorized so callers get the same failure an expired token
// would produce.
func currentUser(ctx context.Context, sess session.Repository) (*models.User, error) {
	user, err := sess.User(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, api.ErrUnauthorized
	}
	return user, nil
}
