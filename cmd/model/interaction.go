package model

import "fmt"

type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"primaryKey"`
	VideoId   int64  `json:"video_id" gorm:"index"`
	UserId    int64  `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	DeletedAt string `json:"deleted_at"`
}

// Like target kinds. A like row points at exactly one of these.
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// Like is a polymorphic edge row: a discriminant plus one target id.
// The unique index is the backstop for the one-edge-per-(target, user)
// invariant under concurrent toggles.
type Like struct {
	LikeId     int64  `json:"like_id" gorm:"primaryKey"`
	TargetType string `json:"target_type" gorm:"size:16;uniqueIndex:idx_like_target_user"`
	TargetId   int64  `json:"target_id" gorm:"uniqueIndex:idx_like_target_user"`
	UserId     int64  `json:"user_id" gorm:"uniqueIndex:idx_like_target_user"`
	CreatedAt  string `json:"created_at"`
	DeletedAt  string `json:"deleted_at"`
}

// NewLike enforces the tagged-variant invariant at construction time:
// a known target kind and non-zero endpoints.
func NewLike(targetType string, targetId, userId int64) (*Like, error) {
	switch targetType {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
	default:
		return nil, fmt.Errorf("unknown like target type: %q", targetType)
	}
	if targetId <= 0 {
		return nil, fmt.Errorf("like target id is missing")
	}
	if userId <= 0 {
		return nil, fmt.Errorf("like user id is missing")
	}
	return &Like{TargetType: targetType, TargetId: targetId, UserId: userId}, nil
}
