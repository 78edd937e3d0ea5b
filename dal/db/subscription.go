package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
)

func CreateSubscription(ctx context.Context, channelId, subscriberId int64) error {
	return DB.WithContext(ctx).Create(&model.Subscription{
		SubscriptionId: int64(uuid.New().ID()),
		ChannelId:      channelId,
		SubscriberId:   subscriberId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
		DeletedAt:      "",
	}).Error
}

func DeleteSubscription(ctx context.Context, channelId, subscriberId int64) error {
	return DB.WithContext(ctx).
		Where("channel_id = ? And subscriber_id = ?", channelId, subscriberId).
		Delete(&model.Subscription{}).Error
}

func IsSubscribed(ctx context.Context, channelId, subscriberId int64) (bool, error) {
	if subscriberId <= 0 {
		return false, nil
	}
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ? And subscriber_id = ?", channelId, subscriberId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetChannelSubscriptions returns the edges into a channel, newest first.
func GetChannelSubscriptions(ctx context.Context, channelId int64) ([]*model.Subscription, error) {
	subs := make([]*model.Subscription, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("channel_id = ?", channelId).
		Order("created_at desc, subscription_id desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// GetSubscriberSubscriptions returns the edges out of a subscriber,
// newest first.
func GetSubscriberSubscriptions(ctx context.Context, subscriberId int64) ([]*model.Subscription, error) {
	subs := make([]*model.Subscription, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ?", subscriberId).
		Order("created_at desc, subscription_id desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// GetSubscribedChannelSet reports which of channelIds the caller
// subscribes to, one membership query per view.
func GetSubscribedChannelSet(ctx context.Context, subscriberId int64, channelIds []int64) (map[int64]bool, error) {
	subscribed := make(map[int64]bool, len(channelIds))
	if subscriberId <= 0 || len(channelIds) == 0 {
		return subscribed, nil
	}
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? And channel_id in ?", subscriberId, channelIds).
		Select("channel_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	for _, id := range list {
		subscribed[id] = true
	}
	return subscribed, nil
}
