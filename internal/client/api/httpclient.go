package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/fitquest/fitquest/internal/client/models"
)

// TokenSource supplies the bearer token for authenticated requests,
// typically backed by the session repository. An empty token with a nil
// error means "not logged in".
type TokenSource func(ctx context.Context) (string, error)

// HTTPClient implements Client over plain JSON/HTTP. It performs no retries
// and configures no per-call timeout; callers inherit the transport defaults.
type HTTPClient struct {
	baseURL string
	feedURL string
	tokens  TokenSource
	http    *http.Client
}

func NewHTTPClient(baseURL, feedURL string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		feedURL: feedURL,
		tokens:  tokens,
		http:    &http.Client{},
	}
}

// bearerToken resolves the current session token, failing with
// ErrUnauthorized before any network I/O when none is stored.
func (c *HTTPClient) bearerToken(ctx context.Context) (string, error) {
	token, err := c.tokens(ctx)
	if err != nil {
		return "", fmt.Errorf("reading session token: %w", err)
	}
	if token == "" {
		return "", ErrUnauthorized
	}
	return token, nil
}

// do issues a JSON request and decodes a 2xx response body into out (when
// out is non-nil). Non-2xx responses become *APIError with the envelope
// message when one can be parsed.
func (c *HTTPClient) do(ctx context.Context, method, url string, authed bool, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if authed {
		token, err := c.bearerToken(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}
	var envelope struct {
		Message string `json:"message"`
	}
	b, err := io.ReadAll(resp.Body)
	if err == nil && json.Unmarshal(b, &envelope) == nil {
		apiErr.Message = envelope.Message
	}
	return apiErr
}

func (c *HTTPClient) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/login", false, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/signup", false, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Quests(ctx context.Context, userID int64) ([]models.Quest, error) {
	var quests []models.Quest
	url := fmt.Sprintf("%s/quests/%d", c.baseURL, userID)
	if err := c.do(ctx, http.MethodGet, url, true, nil, &quests); err != nil {
		return nil, err
	}
	return quests, nil
}

func (c *HTTPClient) QuestWorkouts(ctx context.Context, questID, userID int64) ([]models.QuestWorkout, error) {
	var workouts []models.QuestWorkout
	url := fmt.Sprintf("%s/quests/workouts/%d/%d", c.baseURL, questID, userID)
	if err := c.do(ctx, http.MethodGet, url, true, nil, &workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

func (c *HTTPClient) MarkWorkoutComplete(ctx context.Context, questID, workoutID, userID int64, start, end time.Time) error {
	body := struct {
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	}{
		StartTime: start.UTC().Format(time.RFC3339),
		EndTime:   end.UTC().Format(time.RFC3339),
	}
	url := fmt.Sprintf("%s/quests/workouts/%d/%d/%d", c.baseURL, questID, workoutID, userID)
	return c.do(ctx, http.MethodPatch, url, true, body, nil)
}

func (c *HTTPClient) AddUserExp(ctx context.Context, userID, expPoints int64) (*AddExpResponse, error) {
	// The body carries the delta; the server adds it to its stored total
	// and returns the canonical new exp/level.
	body := struct {
		Exp int64 `json:"exp"`
	}{Exp: expPoints}

	var resp AddExpResponse
	url := fmt.Sprintf("%s/users/%d/exp", c.baseURL, userID)
	if err := c.do(ctx, http.MethodPatch, url, true, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) FeedPosts(ctx context.Context, cursor string) ([]models.FeedPost, error) {
	url := c.feedURL + "/feed/feeds-load"
	if cursor != "" {
		url += "?cursor=" + cursor
	}
	var posts []models.FeedPost
	if err := c.do(ctx, http.MethodGet, url, true, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *HTTPClient) ToggleLike(ctx context.Context, feedID, userID int64) error {
	body := struct {
		UserID int64 `json:"userId"`
	}{UserID: userID}
	url := fmt.Sprintf("%s/feed/like/%d", c.feedURL, feedID)
	return c.do(ctx, http.MethodPost, url, true, body, nil)
}

func (c *HTTPClient) AddComment(ctx context.Context, feedID, userID int64, comment string) error {
	body := struct {
		UserID  int64  `json:"userId"`
		Comment string `json:"comment"`
	}{UserID: userID, Comment: comment}
	url := fmt.Sprintf("%s/feed/comment/%d", c.feedURL, feedID)
	return c.do(ctx, http.MethodPost, url, true, body, nil)
}

// CreatePost uploads a new feed post as a multipart form. Unlike the JSON
// endpoints the Content-Type here is set by the multipart writer.
func (c *HTTPClient) CreatePost(ctx context.Context, userID int64, post NewPost) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", post.Title); err != nil {
		return err
	}
	if err := w.WriteField("caption", post.Caption); err != nil {
		return err
	}
	if err := w.WriteField("userId", fmt.Sprintf("%d", userID)); err != nil {
		return err
	}
	if post.ImagePath != "" {
		f, err := os.Open(post.ImagePath)
		if err != nil {
			return fmt.Errorf("opening image: %w", err)
		}
		defer f.Close()

		part, err := w.CreateFormFile("image", filepath.Base(post.ImagePath))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f); err != nil {
			return fmt.Errorf("attaching image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.feedURL+"/feed", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Request-Id", uuid.NewString())

	token, err := c.bearerToken(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	return nil
}

func (c *HTTPClient) Geofences(ctx context.Context) ([]models.Geofence, error) {
	var fences []models.Geofence
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/geofences", true, nil, &fences); err != nil {
		return nil, err
	}
	return fences, nil
}
