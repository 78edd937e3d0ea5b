package model

// Read-side view types shared by the service packages. Views are composed
// fresh per request and carry only projected fields; credential columns
// never appear here. Single-valued joins are flattened to a pointer that
// stays nil when the referenced row is gone.

type UserSummary struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

type CommentView struct {
	CommentId  int64        `json:"comment_id"`
	Content    string       `json:"content"`
	CreatedAt  string       `json:"created_at"`
	Owner      *UserSummary `json:"owner"`
	LikesCount int64        `json:"likes_count"`
	IsLiked    bool         `json:"is_liked"`
}

type TweetView struct {
	TweetId    int64        `json:"tweet_id"`
	Content    string       `json:"content"`
	CreatedAt  string       `json:"created_at"`
	Owner      *UserSummary `json:"owner"`
	LikesCount int64        `json:"likes_count"`
	IsLiked    bool         `json:"is_liked"`
}

// VideoSummary is the list-level projection of a video (playlist members,
// liked-video lists). Description and publish state stay off list views.
type VideoSummary struct {
	VideoId    int64        `json:"video_id"`
	Title      string       `json:"title"`
	VideoUrl   string       `json:"video_url"`
	CoverUrl   string       `json:"cover_url"`
	Duration   int64        `json:"duration"`
	VisitCount int64        `json:"visit_count"`
	CreatedAt  string       `json:"created_at"`
	Owner      *UserSummary `json:"owner"`
}

type VideoDetail struct {
	VideoId         int64        `json:"video_id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	VideoUrl        string       `json:"video_url"`
	CoverUrl        string       `json:"cover_url"`
	Duration        int64        `json:"duration"`
	VisitCount      int64        `json:"visit_count"`
	IsPublished     bool         `json:"is_published"`
	CreatedAt       string       `json:"created_at"`
	Owner           *UserSummary `json:"owner"`
	SubscriberCount int64        `json:"subscriber_count"`
	IsSubscribed    bool         `json:"is_subscribed"`
	LikesCount      int64        `json:"likes_count"`
	IsLiked         bool         `json:"is_liked"`
	CommentsCount   int64        `json:"comments_count"`
}

type PlaylistSummary struct {
	PlaylistId  int64  `json:"playlist_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	VideoCount  int64  `json:"video_count"`
	TotalView   int64  `json:"total_view"`
}

// ChannelProfile is a user summary annotated with the channel-side
// subscriber count (playlist owner, channel pages).
type ChannelProfile struct {
	UserSummary
	SubscriberCount int64 `json:"subscriber_count"`
}

type PlaylistDetail struct {
	PlaylistId  int64           `json:"playlist_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
	Videos      []*VideoSummary `json:"videos"`
	VideosCount int64           `json:"videos_count"`
	TotalView   int64           `json:"total_view"`
	Owner       *ChannelProfile `json:"owner"`
}

type SubscriberList struct {
	ChannelId       int64          `json:"channel_id"`
	Subscribers     []*UserSummary `json:"subscribers"`
	SubscriberCount int64          `json:"subscriber_count"`
}

type SubscribedChannel struct {
	UserSummary
	IsSubscribed bool `json:"is_subscribed"`
}

type SubscribedList struct {
	SubscriberId int64                `json:"subscriber_id"`
	Channels     []*SubscribedChannel `json:"channels"`
	ChannelCount int64                `json:"channel_count"`
}
