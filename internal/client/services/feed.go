package services

import (
	"context"
	"fmt"

	"github.com/fitquest/fitquest/internal/client/api"
	"github.com/fitquest/fitquest/internal/client/models"
	"github.com/fitquest/fitquest/internal/client/repositories/session"
	"github.com/fitquest/fitquest/internal/logging"
)

// FeedService exposes the social feed: activity posts, likes and comments.
type FeedService interface {
	Posts(ctx context.Context, cursor string) ([]models.FeedPost, error)
	ToggleLike(ctx context.Context, feedID int64) error
	Comment(ctx context.Context, feedID int64, text string) error
	CreatePost(ctx context.Context, post api.NewPost) error
}

type feedService struct {
	client  api.Client
	session session.Repository
	log     logging.Logger
}

func NewFeedService(client api.Client, sess session.Repository, log logging.Logger) FeedService {
	return &feedService{client: client, session: sess, log: log}
}

func (s *feedService) Posts(ctx context.Context, cursor string) ([]models.FeedPost, error) {
	posts, err := s.client.FeedPosts(ctx, cursor)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	return posts, nil
}

func (s *feedService) ToggleLike(ctx context.Context, feedID int64) error {
	user, err := currentUser(ctx, s.session)
	if err != nil {
		return err
	}
	if err := s.client.ToggleLike(ctx, feedID, user.ID); err != nil {
		return fmt.Errorf("toggling like: %w", err)
	}
	return nil
}

func (s *feedService) Comment(ctx context.Context, feedID int64, text string) error {
	user, err := currentUser(ctx, s.session)
	if err != nil {
		return err
	}
	if err := s.client.AddComment(ctx, feedID, user.ID, text); err != nil {
		return fmt.Errorf("adding comment: %w", err)
	}
	return nil
}

func (s *feedService) CreatePost(ctx context.Context, post api.NewPost) error {
	user, err := currentUser(ctx, s.session)
	if err != nil {
		return err
	}
	if err := s.client.CreatePost(ctx, user.ID, post); err != nil {
		return fmt.Errorf("creating post: %w", err)
	}
	s.log.Info(ctx, "feed post created", "user_id", user.ID, "title", post.Title)
	return nil
}
