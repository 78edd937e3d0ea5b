package db

import (
	"context"

	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/utils"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return DB.WithContext(ctx).Create(playlist).Error
}

func GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := &model.Playlist{}
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).First(playlist).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, patch map[string]interface{}) error {
	res := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeletePlaylist(ctx context.Context, playlistId int64) error {
	res := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.Playlist{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func GetUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId).
		Order("created_at desc, playlist_id desc").Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

// FindPlaylistByNameOrDescription backs the duplicate check made before
// creating a playlist.
func FindPlaylistByNameOrDescription(ctx context.Context, name, description string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("name = ? Or description = ?", name, description).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// AddPlaylistVideo appends a member with set semantics: re-adding an
// existing video is a no-op. Member ids come from the snowflake generator
// so ordering by id reproduces insertion order.
func AddPlaylistVideo(ctx context.Context, playlistId, videoId int64) error {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ? And video_id = ?", playlistId, videoId).Count(&count).Error; err != nil {
		return err
	}
	if count != 0 {
		return nil
	}
	return DB.WithContext(ctx).Create(&model.PlaylistVideo{
		PlaylistVideoId: utils.NewID(),
		PlaylistId:      playlistId,
		VideoId:         videoId,
	}).Error
}

func RemovePlaylistVideo(ctx context.Context, playlistId, videoId int64) error {
	return DB.WithContext(ctx).
		Where("playlist_id = ? And video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error
}

// GetPlaylistVideoIds preserves insertion order via the member row id.
func GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).
		Where("playlist_id = ?", playlistId).
		Order("playlist_video_id asc").
		Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeletePlaylistVideos removes the member rows of a deleted playlist.
// Member videos themselves are untouched; playlists do not own videos.
func DeletePlaylistVideos(ctx context.Context, playlistId int64) error {
	return DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error
}
