// Package api defines the REST transport to the FitQuest backend and the
// social feed service. The Client interface is the seam services are built
// against; HTTPClient is the production implementation.
package api

import (
	"context"
	"time"

	"github.com/fitquest/fitquest/internal/client/models"
)

// LoginRequest carries the credentials for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest carries the payload for POST /signup.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResponse is the envelope returned by /login and /signup.
type AuthResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    models.User `json:"data"`
	Token   string      `json:"token"`
}

// AddExpResponse is the envelope returned by PATCH /users/{id}/exp.
// The local fallback tiers of the EXP updater produce the same shape.
type AddExpResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    models.User `json:"data"`
	LevelUp bool        `json:"levelUp"`
}

// NewPost is the multipart payload for creating a feed post. ImagePath is
// optional; when set, the file is attached as the "image" form part.
type NewPost struct {
	Title     string
	Caption   string
	ImagePath string
}

// Client is the remote surface the services consume.
type Client interface {
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	Quests(ctx context.Context, userID int64) ([]models.Quest, error)
	QuestWorkouts(ctx context.Context, questID, userID int64) ([]models.QuestWorkout, error)
	MarkWorkoutComplete(ctx context.Context, questID, workoutID, userID int64, start, end time.Time) error
	AddUserExp(ctx context.Context, userID, expPoints int64) (*AddExpResponse, error)

	FeedPosts(ctx context.Context, cursor string) ([]models.FeedPost, error)
	ToggleLike(ctx context.Context, feedID, userID int64) error
	AddComment(ctx context.Context, feedID, userID int64, comment string) error
	CreatePost(ctx context.Context, userID int64, post NewPost) error

	Geofences(ctx context.Context) ([]models.Geofence, error)
}
