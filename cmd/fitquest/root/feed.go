package root

import (
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/client/api"
	"github.com/fitquest/fitquest/internal/ui"
)

func newFeedCmd() *cobra.Command {
	var cursor string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Browse the activity feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			posts, err := a.feed.Posts(ctx, cursor)
			if err != nil {
				return err
			}
			if len(posts) == 0 {
				ui.Linef("Feed is empty.")
				return nil
			}

			for _, p := range posts {
				ui.Title.Printf("[%d] %s — %s\n", p.ID, p.Title, p.User.Name)
				if p.Caption != "" {
					ui.Linef("%s", p.Caption)
				}
				ui.Muted.Printf("♥ %d  💬 %d  %s\n", p.LikesCount, p.CommentsCount, p.CreatedAt)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")

	cmd.AddCommand(newFeedLikeCmd(), newFeedCommentCmd(), newFeedPostCmd())
	return cmd
}

func feedIDArg(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, errors.New("post id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errors.New("post id must be an integer")
	}
	return id, nil
}

func newFeedLikeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Like (or unlike) a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feedID, err := feedIDArg(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.feed.ToggleLike(ctx, feedID); err != nil {
				return err
			}
			ui.Successf("Toggled like on post %d", feedID)
			return nil
		},
	}
}

func newFeedCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <post-id> <text...>",
		Short: "Comment on a post",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			feedID, err := feedIDArg(args)
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")

			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.feed.Comment(ctx, feedID, text); err != nil {
				return err
			}
			ui.Successf("Comment added")
			return nil
		},
	}
}

func newFeedPostCmd() *cobra.Command {
	var title, caption, image string

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish an activity update",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return errors.New("--title is required")
			}

			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			post := api.NewPost{Title: title, Caption: caption, ImagePath: image}
			if err := a.feed.CreatePost(ctx, post); err != nil {
				return err
			}
			ui.Successf("Posted %q", title)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&caption, "caption", "", "post caption")
	cmd.Flags().StringVar(&image, "image", "", "path of an image to attach")
	return cmd
}
