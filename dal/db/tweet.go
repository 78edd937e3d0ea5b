package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return DB.WithContext(ctx).Create(tweet).Error
}

func GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	tweet := &model.Tweet{}
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).First(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func UpdateTweetContent(ctx context.Context, tweetId int64, content string) error {
	res := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now().Format(constants.DataFormate),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	res := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func CheckTweetExists(ctx context.Context, tweetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

func GetUserTweets(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId).
		Order("created_at desc, tweet_id desc").Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}
