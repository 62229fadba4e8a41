package models

// FeedAuthor is the embedded author summary on a feed post.
type FeedAuthor struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FeedPost is one activity update on the social feed.
type FeedPost struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Caption       string     `json:"caption"`
	PicURL        string     `json:"picUrl,omitempty"`
	UserID        int64      `json:"user_id"`
	CreatedAt     string     `json:"created_at"`
	Timestamp     string     `json:"timestamp"`
	LikesCount    int        `json:"likes_count"`
	CommentsCount int        `json:"comments_count"`
	User          FeedAuthor `json:"user"`
}
