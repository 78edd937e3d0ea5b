package db

import (
	"context"
	"time"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/utils"
)

func CreateUser(ctx context.Context, user *model.User) error {
	return DB.WithContext(ctx).Create(user).Error
}

func GetUser(ctx context.Context, userId int64) (*model.User, error) {
	user := &model.User{}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUsersByIds fetches profile rows for a join stage. Missing ids are
// simply absent from the result; the composer flattens against that.
func GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	users := make([]*model.User, 0, len(userIds))
	if len(userIds) == 0 {
		return users, nil
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id in ?", userIds).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func CheckUserExists(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// AddWatchHistory appends a watched video, suppressing duplicates per
// (user, video). The unique index backs the in-flight check. The row id
// comes from the snowflake generator so the recency tie-break stays
// monotonic within one timestamp.
func AddWatchHistory(ctx context.Context, userId, videoId int64) error {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.UserVideoWatchHistory{}).
		Where("user_id = ? And video_id = ?", userId, videoId).Count(&count).Error; err != nil {
		return err
	}
	if count != 0 {
		return nil
	}
	return DB.WithContext(ctx).Create(&model.UserVideoWatchHistory{
		UserVideoWatchHistoryId: utils.NewID(),
		UserId:                  userId,
		VideoId:                 videoId,
		WatchTime:               time.Now().Format(constants.DataFormate),
	}).Error
}

func GetWatchHistoryVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.UserVideoWatchHistory{}).
		Where("user_id = ?", userId).
		Order("watch_time desc, user_video_watch_history_id desc").
		Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
