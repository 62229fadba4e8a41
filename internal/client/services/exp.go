package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fitquest/fitquest/internal/client/api"
	"github.com/fitquest/fitquest/internal/client/models"
	"github.com/fitquest/fitquest/internal/client/repositories/session"
	"github.com/fitquest/fitquest/internal/logging"
)

// ErrExpUpdate is returned when every tier of AddExp failed, including the
// emergency local write.
var ErrExpUpdate = errors.New("failed to update experience points")

// UserService applies EXP deltas to the user, remote-first with a local
// fallback chain.
type UserService interface {
	AddExp(ctx context.Context, userID, expPoints int64) (*api.AddExpResponse, error)
}

type userService struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger
}

func NewUserService(client api.Client, db *sql.DB, log logging.Logger) UserService {
	return &userService{client: client, db: db, log: log}
}

// AddExp sends the EXP delta to the backend and falls back to local
// arithmetic when the call fails. Three tiers, each a single attempt:
//
//  1. remote PATCH — the server adds the delta to its stored total and
//     returns the canonical exp/level, which overwrite the cached user;
//  2. local arithmetic on the cached user, persisted;
//  3. emergency rebuild of a minimal user record from whatever local state
//     survives.
//
// The level/EXP relationship is deterministic (level = exp / 100), which is
// what makes the local tiers safe: the client can always recompute the level
// from the total it believes is correct. Whenever a later remote call does
// succeed, its response overwrites local state — last write wins.
func (s *userService) AddExp(ctx context.Context, userID, expPoints int64) (*api.AddExpResponse, error) {
	resp, err := s.client.AddUserExp(ctx, userID, expPoints)
	if err == nil {
		if resp.Status {
			if cacheErr := s.cacheServerResult(ctx, resp.Data); cacheErr != nil {
				s.log.Warn(ctx, "failed to cache exp update", "error", cacheErr)
			}
		}
		return resp, nil
	}

	s.log.Warn(ctx, "remote exp update failed, falling back to local", "error", err, "user_id", userID)

	resp, localErr := s.addExpLocally(ctx, userID, expPoints)
	if localErr == nil {
		return resp, nil
	}

	s.log.Error(ctx, "local exp update failed, attempting emergency update", "error", localErr)

	resp, emergencyErr := s.emergencyExpUpdate(ctx, userID, expPoints)
	if emergencyErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrExpUpdate, emergencyErr)
	}
	return resp, nil
}

// cacheServerResult overwrites the cached exp/level with the server's
// canonical values. The server is authoritative on success, even when its
// values diverge from local arithmetic.
func (s *userService) cacheServerResult(ctx context.Context, u models.User) error {
	repo := session.NewSQLiteRepository(s.db)
	cached, err := repo.User(ctx)
	if err != nil {
		return err
	}
	if cached == nil {
		return nil
	}
	cached.Exp = u.Exp
	cached.Level = u.Level
	return repo.SetUser(ctx, cached)
}

// addExpLocally applies the delta to the cached user with the deterministic
// level arithmetic. The cached level is never lowered: reconciliation may
// only hold or raise it.
func (s *userService) addExpLocally(ctx context.Context, userID, expPoints int64) (*api.AddExpResponse, error) {
	repo := session.NewSQLiteRepository(s.db)
	cached, err := repo.User(ctx)
	if err != nil {
		return nil, err
	}
	if cached == nil || cached.ID != userID {
		return nil, errors.New("user data not found in local storage")
	}

	currentExp := cached.Exp
	newExp := currentExp + expPoints

	oldLevel := models.LevelForExp(currentExp)
	newLevel := models.LevelForExp(newExp)
	levelUp := newLevel > oldLevel

	cached.Exp = newExp
	if newLevel > cached.Level {
		cached.Level = newLevel
	}

	if err := repo.SetUser(ctx, cached); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "exp updated locally",
		"exp", currentExp, "new_exp", newExp, "level", oldLevel, "new_level", newLevel)

	return &api.AddExpResponse{
		Status:  true,
		Message: "experience added (local only)",
		Data:    *cached,
		LevelUp: levelUp,
	}, nil
}

// emergencyExpUpdate is the last resort when even the cached user cannot be
// read: rebuild a minimal record, defaulting unknown fields, apply the same
// arithmetic, and persist it.
func (s *userService) emergencyExpUpdate(ctx context.Context, userID, expPoints int64) (*api.AddExpResponse, error) {
	repo := session.NewSQLiteRepository(s.db)

	u := models.User{ID: userID, Name: "User", Email: "", Exp: expPoints, Level: models.LevelForExp(expPoints)}
	levelUp := false

	if cached, err := repo.User(ctx); err == nil && cached != nil {
		oldExp := cached.Exp
		newExp := oldExp + expPoints

		oldLevel := models.LevelForExp(oldExp)
		newLevel := models.LevelForExp(newExp)
		levelUp = newLevel > oldLevel

		u = *cached
		u.Exp = newExp
		if newLevel > u.Level {
			u.Level = newLevel
		}
	}

	if err := repo.SetUser(ctx, &u); err != nil {
		return nil, err
	}

	return &api.AddExpResponse{
		Status:  true,
		Message: "emergency experience update",
		Data:    u,
		LevelUp: levelUp,
	}, nil
}
