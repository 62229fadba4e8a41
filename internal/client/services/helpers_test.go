package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/fitquest/fitquest/internal/client/api"
	"github.com/fitquest/fitquest/internal/client/models"
	"github.com/fitquest/fitquest/internal/client/repositories/session"
	"github.com/fitquest/fitquest/internal/logging"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// a second pooled connection would see a fresh empty in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
CREATE TABLE award_markers (
  quest_id   INTEGER NOT NULL,
  user_id    INTEGER NOT NULL,
  awarded    BOOLEAN NOT NULL DEFAULT 0,
  awarded_at INTEGER NOT NULL,
  exp_amount INTEGER NOT NULL DEFAULT 0,
  errored    BOOLEAN NOT NULL DEFAULT 0,
  PRIMARY KEY (quest_id, user_id)
);
`)
	require.NoError(t, err)
	return db
}

func storeUser(t *testing.T, db *sql.DB, u models.User) {
	t.Helper()
	require.NoError(t, session.NewSQLiteRepository(db).SetUser(context.Background(), &u))
}

func storedUser(t *testing.T, db *sql.DB) *models.User {
	t.Helper()
	u, err := session.NewSQLiteRepository(db).User(context.Background())
	require.NoError(t, err)
	return u
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func boolPtr(b bool) *bool { return &b }

// ---- fake client ----

// fakeClient implements api.Client for the service unit tests. Last* fields
// capture arguments for assertions.
type fakeClient struct {
	LoginResp *api.AuthResponse
	LoginErr  error

	RegisterResp *api.AuthResponse
	RegisterErr  error

	QuestsRet []models.Quest
	QuestsErr error

	WorkoutsRet []models.QuestWorkout
	WorkoutsErr error

	MarkErrOnWorkout int64 // when non-zero, MarkWorkoutComplete fails for this workout id
	MarkErr          error

	AddExpResp  *api.AddExpResponse
	AddExpErr   error
	AddExpCalls int

	FeedRet    []models.FeedPost
	FeedErr    error
	LikeErr    error
	CommentErr error
	PostErr    error

	GeofencesRet []models.Geofence
	GeofencesErr error

	LastLoginReq    api.LoginRequest
	LastRegisterReq api.RegisterRequest
	LastQuestsUser  int64
	LastWorkoutsKey [2]int64
	MarkedWorkouts  []int64
	LastMarkTimes   [2]time.Time
	LastExpDelta    int64
	LastCommented   string
	LastPost        api.NewPost
}

func (f *fakeClient) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	f.LastLoginReq = req
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	f.LastRegisterReq = req
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeClient) Quests(ctx context.Context, userID int64) ([]models.Quest, error) {
	f.LastQuestsUser = userID
	return f.QuestsRet, f.QuestsErr
}

func (f *fakeClient) QuestWorkouts(ctx context.Context, questID, userID int64) ([]models.QuestWorkout, error) {
	f.LastWorkoutsKey = [2]int64{questID, userID}
	return f.WorkoutsRet, f.WorkoutsErr
}

func (f *fakeClient) MarkWorkoutComplete(ctx context.Context, questID, workoutID, userID int64, start, end time.Time) error {
	if f.MarkErrOnWorkout != 0 && workoutID == f.MarkErrOnWorkout {
		return f.MarkErr
	}
	f.MarkedWorkouts = append(f.MarkedWorkouts, workoutID)
	f.LastMarkTimes = [2]time.Time{start, end}
	return nil
}

func (f *fakeClient) AddUserExp(ctx context.Context, userID, expPoints int64) (*api.AddExpResponse, error) {
	f.AddExpCalls++
	f.LastExpDelta = expPoints
	return f.AddExpResp, f.AddExpErr
}

func (f *fakeClient) FeedPosts(ctx context.Context, cursor string) ([]models.FeedPost, error) {
	return f.FeedRet, f.FeedErr
}

func (f *fakeClient) ToggleLike(ctx context.Context, feedID, userID int64) error {
	return f.LikeErr
}

func (f *fakeClient) AddComment(ctx context.Context, feedID, userID int64, comment string) error {
	f.LastCommented = comment
	return f.CommentErr
}

func (f *fakeClient) CreatePost(ctx context.Context, userID int64, post api.NewPost) error {
	f.LastPost = post
	return f.PostErr
}

func (f *fakeClient) Geofences(ctx context.Context) ([]models.Geofence, error) {
	return f.GeofencesRet, f.GeofencesErr
}
