package models

import "time"

// Quest is a time-boxed workout program with an EXP reward.
//
// Completion exists in two representations: IsFinished (canonical when the
// server sends it) and membership in UserIDs (the legacy list of users who
// completed the quest). IsFinished wins whenever both are present; see
// HasCompleted.
type Quest struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Exp          int64     `json:"exp"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	IsFinished   *bool     `json:"is_finished,omitempty"`
	WorkoutCount *int      `json:"workout_count,omitempty"`
	WorkoutType  string    `json:"workout_type,omitempty"`
	UserIDs      []int64   `json:"user_id,omitempty"`
}

// HasCompleted reports whether userID has completed the quest. IsFinished is
// the source of truth when the server sent it; otherwise the deprecated
// UserIDs membership is consulted.
func (q Quest) HasCompleted(userID int64) bool {
	if q.IsFinished != nil {
		return *q.IsFinished
	}
	for _, id := range q.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// QuestWorkout is one unit of work inside a quest.
type QuestWorkout struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Repetition int    `json:"repetition"`
	IsFinished bool   `json:"is_finished"`
}
