package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

var toggleLocks utils.KeyMutex

// RelationService implements the subscribe toggle and the subscriber-side
// views. Self-subscription is rejected here: the data model allows the
// row, the service is the policy layer.
type RelationService struct {
	ctx          context.Context
	cacheManager *cache.CountCacheManager
}

func NewRelationService(ctx context.Context, cacheManager *cache.CountCacheManager) *RelationService {
	return &RelationService{ctx: ctx, cacheManager: cacheManager}
}

// ToggleSubscription inserts or removes the (channel, subscriber) edge and
// returns the resulting state.
func (service *RelationService) ToggleSubscription(channelId, subscriberId int64) (bool, error) {
	if channelId <= 0 {
		return false, errors.WithMessage(errno.ParamErr, "channel id is missing")
	}
	if subscriberId <= 0 {
		return false, errors.WithMessage(errno.ParamErr, "subscriber id is missing")
	}
	if channelId == subscriberId {
		return false, errors.WithMessage(errno.ParamErr, "cannot subscribe to yourself")
	}

	exists, err := db.CheckUserExists(service.ctx, channelId)
	if err != nil {
		return false, errors.WithMessage(errno.ServiceErr, "check channel failed")
	}
	if !exists {
		return false, errors.WithMessage(errno.NotFoundErr, "channel not found")
	}

	key := fmt.Sprintf("subscription:%d:%d", channelId, subscriberId)
	toggleLocks.Lock(key)
	defer toggleLocks.Unlock(key)

	subscribed, err := db.IsSubscribed(service.ctx, channelId, subscriberId)
	if err != nil {
		return false, errors.WithMessage(errno.ServiceErr, "check subscription state failed")
	}

	if subscribed {
		if err := db.DeleteSubscription(service.ctx, channelId, subscriberId); err != nil {
			logrus.Errorf("delete subscription failed: %v", err)
			return false, errors.WithMessage(errno.ServiceErr, "delete subscription failed")
		}
		service.cacheManager.InvalidateSubscriberCount(service.ctx, channelId)
		return false, nil
	}

	if err := db.CreateSubscription(service.ctx, channelId, subscriberId); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent toggle won the insert; the edge exists
			return true, nil
		}
		logrus.Errorf("create subscription failed: %v", err)
		return false, errors.WithMessage(errno.ServiceErr, "create subscription failed")
	}
	service.cacheManager.InvalidateSubscriberCount(service.ctx, channelId)
	return true, nil
}
