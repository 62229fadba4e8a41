// Package services contains the application services of the FitQuest client:
// authentication, quest and workout tracking, EXP accounting, the award
// reconciler, the social feed, and geofence checks. Services talk to the
// backend through api.Client and to local state through the repositories.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fitquest/fitquest/internal/client/api"
	"github.com/fitquest/fitquest/internal/client/models"
	"github.com/fitquest/fitquest/internal/client/repositories/session"
	"github.com/fitquest/fitquest/internal/dbx"
	"github.com/fitquest/fitquest/internal/logging"
)

// timeNow is a test seam for the current time.
var timeNow = time.Now

// AuthService manages the login session: credentials exchange, the locally
// persisted token/user pair, and logout.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, email, password, name string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	IsAuthenticated(ctx context.Context) (bool, error)
}

type authService struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// local database.
func NewAuthService(client api.Client, db *sql.DB, log logging.Logger) AuthService {
	return &authService{client: client, db: db, log: log}
}

// Login authenticates against the backend and persists the returned token
// and user record in one transaction.
func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	resp, err := a.client.Login(ctx, api.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, resp.Token, resp.Data); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.log.Info(ctx, "logged in", "user_id", resp.Data.ID)
	return &resp.Data, nil
}

// Register creates an account on the backend and persists the session,
// mirroring Login.
func (a *authService) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	resp, err := a.client.Register(ctx, api.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, fmt.Errorf("registration error: %w", err)
	}

	if err := a.saveSession(ctx, resp.Token, resp.Data); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.log.Info(ctx, "registered", "user_id", resp.Data.ID)
	return &resp.Data, nil
}

func (a *authService) saveSession(ctx context.Context, token string, u models.User) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.SetToken(ctx, token); err != nil {
			return err
		}
		return repo.SetUser(ctx, &u)
	})
}

// Logout wipes the persisted session. Award markers survive: a settled
// award stays settled across logins.
func (a *authService) Logout(ctx context.Context) error {
	repo := session.NewSQLiteRepository(a.db)
	if err := repo.Clear(ctx); err != nil {
		return fmt.Errorf("logout error: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	return session.NewSQLiteRepository(a.db).User(ctx)
}

// IsAuthenticated reports whether a session token is present. When the token
// parses as a JWT its expiry claim is honored; any other token is treated as
// opaque and assumed valid (the server remains the final judge).
func (a *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	token, err := session.NewSQLiteRepository(a.db).Token(ctx)
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}
	return !tokenExpired(token), nil
}

func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(timeNow())
}
