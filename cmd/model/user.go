package model

type User struct {
	UserId    int64  `json:"user_id" gorm:"primaryKey"`
	UserName  string `json:"user_name" gorm:"size:64"`
	FullName  string `json:"full_name" gorm:"size:128"`
	AvatarUrl string `json:"avatar_url"`
	CoverUrl  string `json:"cover_url"`
	Password  string `json:"-"`
	Email     string `json:"-"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	DeletedAt string `json:"deleted_at"`
}

// UserVideoWatchHistory records one watched video per user, appended by the
// video detail read path. Duplicate (user, video) pairs are suppressed.
type UserVideoWatchHistory struct {
	UserVideoWatchHistoryId int64  `json:"user_video_watch_history_id" gorm:"primaryKey"`
	UserId                  int64  `json:"user_id" gorm:"uniqueIndex:idx_watch_user_video"`
	VideoId                 int64  `json:"video_id" gorm:"uniqueIndex:idx_watch_user_video"`
	WatchTime               string `json:"watch_time"`
}
