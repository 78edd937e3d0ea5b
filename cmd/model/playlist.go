package model

type Playlist struct {
	PlaylistId  int64  `json:"playlist_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"index"`
	Name        string `json:"name" gorm:"size:255"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	DeletedAt   string `json:"deleted_at"`
}

// PlaylistVideo keeps playlist membership as an ordered set: row ids grow
// with insertion time and the unique pair index suppresses duplicates.
type PlaylistVideo struct {
	PlaylistVideoId int64 `json:"playlist_video_id" gorm:"primaryKey"`
	PlaylistId      int64 `json:"playlist_id" gorm:"uniqueIndex:idx_playlist_video"`
	VideoId         int64 `json:"video_id" gorm:"uniqueIndex:idx_playlist_video"`
}
