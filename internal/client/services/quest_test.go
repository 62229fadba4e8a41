package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitquest/fitquest/internal/client/api"
	"github.com/fitquest/fitquest/internal/client/models"
	"github.com/fitquest/fitquest/internal/client/repositories/session"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestHasCompletedQuest_IsFinishedWinsOverMembership(t *testing.T) {
	// is_finished=false beats a user_id list that claims completion
	q := models.Quest{ID: 1, IsFinished: boolPtr(false), UserIDs: []int64{7}}
	assert.False(t, HasCompletedQuest(q, 7))

	q = models.Quest{ID: 1, IsFinished: boolPtr(true), UserIDs: []int64{}}
	assert.True(t, HasCompletedQuest(q, 7))
}

func TestHasCompletedQuest_FallsBackToMembership(t *testing.T) {
	q := models.Quest{ID: 1, UserIDs: []int64{3, 7}}
	assert.True(t, HasCompletedQuest(q, 7))
	assert.False(t, HasCompletedQuest(q, 9))

	q = models.Quest{ID: 1}
	assert.False(t, HasCompletedQuest(q, 7))
}

func TestQuestProgress(t *testing.T) {
	done := models.Quest{IsFinished: boolPtr(true)}
	assert.Equal(t, 100, QuestProgress(done, 1))

	pending := models.Quest{IsFinished: boolPtr(false)}
	assert.Equal(t, 50, QuestProgress(pending, 1))
}

func TestTodayQuest_Empty(t *testing.T) {
	assert.Nil(t, TodayQuest(nil, time.Now()))
	assert.Nil(t, TodayQuest([]models.Quest{}, time.Now()))
}

func TestTodayQuest_SkipsEndedQuests(t *testing.T) {
	now := day("2025-06-15")
	quests := []models.Quest{
		{ID: 1, StartDate: day("2025-06-10"), EndDate: day("2025-06-12")},
		{ID: 2, StartDate: day("2025-06-01"), EndDate: day("2025-06-30")},
	}

	got := TodayQuest(quests, now)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)
}

func TestTodayQuest_AllEnded(t *testing.T) {
	now := day("2025-07-01")
	quests := []models.Quest{
		{ID: 1, StartDate: day("2025-06-10"), EndDate: day("2025-06-12")},
	}
	assert.Nil(t, TodayQuest(quests, now))
}

func TestTodayQuest_PicksMostRecentlyStarted(t *testing.T) {
	now := day("2025-06-15")
	quests := []models.Quest{
		{ID: 1, StartDate: day("2025-06-01"), EndDate: day("2025-06-30")},
		{ID: 2, StartDate: day("2025-06-14"), EndDate: day("2025-06-30")},
		{ID: 3, StartDate: day("2025-06-07"), EndDate: day("2025-06-30")},
	}

	got := TodayQuest(quests, now)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ID)
}

func TestTodayQuest_TieKeepsInputOrder(t *testing.T) {
	now := day("2025-06-15")
	quests := []models.Quest{
		{ID: 5, StartDate: day("2025-06-10"), EndDate: day("2025-06-30")},
		{ID: 6, StartDate: day("2025-06-10"), EndDate: day("2025-06-30")},
	}

	got := TodayQuest(quests, now)
	require.NotNil(t, got)
	assert.Equal(t, int64(5), got.ID)
}

func TestTodayQuest_EndingTodayStillCounts(t *testing.T) {
	now := day("2025-06-15")
	quests := []models.Quest{
		{ID: 1, StartDate: day("2025-06-10"), EndDate: day("2025-06-15")},
	}

	got := TodayQuest(quests, now)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
}

func TestActiveQuests_NormalizesUserIDs(t *testing.T) {
	db := setupDB(t)
	storeUser(t, db, models.User{ID: 42, Name: "Dana"})

	fc := &fakeClient{QuestsRet: []models.Quest{
		{ID: 1, IsFinished: boolPtr(true), UserIDs: []int64{1, 2, 3}},
		{ID: 2, IsFinished: boolPtr(false), UserIDs: []int64{42}},
		{ID: 3},
	}}

	svc := NewQuestService(fc, session.NewSQLiteRepository(db), testLogger())
	quests, err := svc.ActiveQuests(context.Background())
	require.NoError(t, err)
	require.Len(t, quests, 3)

	assert.Equal(t, []int64{42}, quests[0].UserIDs)
	assert.Equal(t, []int64{}, quests[1].UserIDs)
	assert.Equal(t, []int64{}, quests[2].UserIDs)
	assert.Equal(t, int64(42), fc.LastQuestsUser)
}

func TestActiveQuests_NotLoggedIn(t *testing.T) {
	db := setupDB(t)
	svc := NewQuestService(&fakeClient{}, session.NewSQLiteRepository(db), testLogger())

	_, err := svc.ActiveQuests(context.Background())
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestActiveQuests_PropagatesFetchError(t *testing.T) {
	db := setupDB(t)
	storeUser(t, db, models.User{ID: 42})

	fetchErr := errors.New("boom")
	fc := &fakeClient{QuestsErr: fetchErr}
	svc := NewQuestService(fc, session.NewSQLiteRepository(db), testLogger())

	_, err := svc.ActiveQuests(context.Background())
	assert.ErrorIs(t, err, fetchErr)
}

func TestWorkouts_UsesSessionUser(t *testing.T) {
	db := setupDB(t)
	storeUser(t, db, models.User{ID: 42})

	fc := &fakeClient{WorkoutsRet: []models.QuestWorkout{{ID: 10, Name: "Push-ups", Repetition: 20}}}
	svc := NewQuestService(fc, session.NewSQLiteRepository(db), testLogger())

	workouts, err := svc.Workouts(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, [2]int64{7, 42}, fc.LastWorkoutsKey)
}
