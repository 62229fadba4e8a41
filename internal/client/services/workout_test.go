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

func TestMarkComplete_SendsCompletionTimestampPair(t *testing.T) {
	db := setupDB(t)
	storeUser(t, db, models.User{ID: 42})

	fixed := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = orig })

	fc := &fakeClient{}
	svc := NewWorkoutService(fc, session.NewSQLiteRepository(db), testLogger())

	require.NoError(t, svc.MarkComplete(context.Background(), 7, 10))

	require.Equal(t, []int64{10}, fc.MarkedWorkouts)
	// not a duration: start and end are the same completion instant
	assert.Equal(t, fixed, fc.LastMarkTimes[0])
	assert.Equal(t, fixed, fc.LastMarkTimes[1])
}

func TestMarkComplete_NotLoggedIn(t *testing.T) {
	db := setupDB(t)
	svc := NewWorkoutService(&fakeClient{}, session.NewSQLiteRepository(db), testLogger())

	err := svc.MarkComplete(context.Background(), 7, 10)
	assert.ErrorIs(t, err, api.ErrUnauthorized)
}

func TestMarkComplete_PropagatesAPIError(t *testing.T) {
	db := setupDB(t)
	storeUser(t, db, models.User{ID: 42})

	apiErr := &api.APIError{Status: 500}
	fc := &fakeClient{MarkErrOnWorkout: 10, MarkErr: apiErr}
	svc := NewWorkoutService(fc, session.NewSQLiteRepository(db), testLogger())

	err := svc.MarkComplete(context.Background(), 7, 10)
	var got *api.APIError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, 500, got.Status)
}

func TestAllCompleted(t *testing.T) {
	db := setupDB(t)
	storeUser(t, db, models.User{ID: 42})

	fc := &fakeClient{WorkoutsRet: []models.QuestWorkout{
		{ID: 1, IsFinished: true},
		{ID: 2, IsFinished: true},
	}}
	svc := NewWorkoutService(fc, session.NewSQLiteRepository(db), testLogger())

	done, err := svc.AllCompleted(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, done)

	fc.WorkoutsRet[1].IsFinished = false
	done, err = svc.AllCompleted(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestCompleteQuest_MarksOnlyUnfinishedInOrder(t *testing.T) {
	db := setupDB(t)
	storeUser(t, db, models.User{ID: 42})

	fc := &fakeClient{WorkoutsRet: []models.QuestWorkout{
		{ID: 1, IsFinished: true},
		{ID: 2, IsFinished: false},
		{ID: 3, IsFinished: false},
	}}
	svc := NewWorkoutService(fc, session.NewSQLiteRepository(db), testLogger())

	require.NoError(t, svc.CompleteQuest(context.Background(), 7))
	assert.Equal(t, []int64{2, 3}, fc.MarkedWorkouts)
}

func TestCompleteQuest_StopsAtFirstFailureWithoutRollback(t *testing.T) {
	db := setupDB(t)
	storeUser(t, db, models.User{ID: 42})

	markErr := errors.New("network down")
	fc := &fakeClient{
		WorkoutsRet: []models.QuestWorkout{
			{ID: 1, IsFinished: false},
			{ID: 2, IsFinished: false},
			{ID: 3, IsFinished: false},
		},
		MarkErrOnWorkout: 2,
		MarkErr:          markErr,
	}
	svc := NewWorkoutService(fc, session.NewSQLiteRepository(db), testLogger())

	err := svc.CompleteQuest(context.Background(), 7)
	require.ErrorIs(t, err, markErr)
	// workout 1 stays marked, workout 3 was never attempted
	assert.Equal(t, []int64{1}, fc.MarkedWorkouts)
}
