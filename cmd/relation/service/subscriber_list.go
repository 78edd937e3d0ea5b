package service

import (
	"github.com/pkg/errors"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
)

// GetChannelSubscribers composes the subscriber list view for a channel:
// match subscription edges, join subscriber profiles, count. A channel
// with no subscribers yields an empty list.
func (service *RelationService) GetChannelSubscribers(channelId int64) (*model.SubscriberList, error) {
	if channelId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "channel id is required")
	}

	subs, err := db.GetChannelSubscriptions(service.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "load subscriptions failed")
	}

	subscriberIds := make([]int64, 0, len(subs))
	for _, s := range subs {
		subscriberIds = append(subscriberIds, s.SubscriberId)
	}
	users, err := db.GetUsersByIds(service.ctx, subscriberIds)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "join subscriber profiles failed")
	}
	userById := make(map[int64]*model.User, len(users))
	for _, u := range users {
		userById[u.UserId] = u
	}

	view := &model.SubscriberList{
		ChannelId:   channelId,
		Subscribers: make([]*model.UserSummary, 0, len(subs)),
	}
	// edges keep the newest-first order; profiles attach in that order
	for _, s := range subs {
		u, ok := userById[s.SubscriberId]
		if !ok {
			continue
		}
		view.Subscribers = append(view.Subscribers, &model.UserSummary{
			UserId:    u.UserId,
			UserName:  u.UserName,
			FullName:  u.FullName,
			AvatarUrl: u.AvatarUrl,
		})
	}
	view.SubscriberCount = int64(len(view.Subscribers))
	return view, nil
}

// GetSubscribedChannels composes the channels a subscriber follows, with a
// caller-relative IsSubscribed flag per channel. An anonymous caller
// (callerId <= 0) gets explicit false flags.
func (service *RelationService) GetSubscribedChannels(subscriberId, callerId int64) (*model.SubscribedList, error) {
	if subscriberId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "subscriber id is required")
	}

	subs, err := db.GetSubscriberSubscriptions(service.ctx, subscriberId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "load subscriptions failed")
	}

	channelIds := make([]int64, 0, len(subs))
	for _, s := range subs {
		channelIds = append(channelIds, s.ChannelId)
	}
	users, err := db.GetUsersByIds(service.ctx, channelIds)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "join channel profiles failed")
	}
	userById := make(map[int64]*model.User, len(users))
	for _, u := range users {
		userById[u.UserId] = u
	}

	callerSet, err := db.GetSubscribedChannelSet(service.ctx, callerId, channelIds)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "check caller subscriptions failed")
	}

	view := &model.SubscribedList{
		SubscriberId: subscriberId,
		Channels:     make([]*model.SubscribedChannel, 0, len(subs)),
	}
	for _, s := range subs {
		u, ok := userById[s.ChannelId]
		if !ok {
			continue
		}
		view.Channels = append(view.Channels, &model.SubscribedChannel{
			UserSummary: model.UserSummary{
				UserId:    u.UserId,
				UserName:  u.UserName,
				FullName:  u.FullName,
				AvatarUrl: u.AvatarUrl,
			},
			IsSubscribed: callerSet[s.ChannelId],
		})
	}
	view.ChannelCount = int64(len(view.Channels))
	return view, nil
}
