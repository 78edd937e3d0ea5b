package db

import (
	"context"

	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
)

func CreateVideo(ctx context.Context, video *model.Video) error {
	return DB.WithContext(ctx).Create(video).Error
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	video := &model.Video{}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(videoIds))
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id in ?", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// UpdateVideo applies a field patch and reports gorm.ErrRecordNotFound
// when the row is absent, so callers see the same not-found shape as reads.
func UpdateVideo(ctx context.Context, videoId int64, patch map[string]interface{}) error {
	res := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Updates(patch)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	res := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementVideoVisit bumps the view counter in place; the detail view is
// the only caller (list fetches never touch it).
func IncrementVideoVisit(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		UpdateColumn("visit_count", gorm.Expr("visit_count + ?", 1)).Error
}

func CheckVideoExists(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// FindVideoByTitleOrDescription backs the duplicate-content check made
// before publishing a new video.
func FindVideoByTitleOrDescription(ctx context.Context, title, description string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).
		Where("title = ? Or description = ?", title, description).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}
