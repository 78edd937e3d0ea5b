package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

// toggleLocks serializes toggles on the same edge key. Different keys take
// different locks and run independently; the unique index on the like
// table remains the backstop for anything this process cannot see.
var toggleLocks utils.KeyMutex

// LikeActionService implements the like toggle for all three target kinds.
type LikeActionService struct {
	ctx          context.Context
	cacheManager *cache.CountCacheManager
}

func NewLikeActionService(ctx context.Context, cacheManager *cache.CountCacheManager) *LikeActionService {
	return &LikeActionService{ctx: ctx, cacheManager: cacheManager}
}

// ToggleLike inserts the (target, caller) edge if absent or removes it if
// present, returning the resulting membership state.
func (service *LikeActionService) ToggleLike(targetType string, targetId, userId int64) (bool, error) {
	like, err := model.NewLike(targetType, targetId, userId)
	if err != nil {
		return false, errors.WithMessage(errno.ParamErr, err.Error())
	}

	exists, err := service.targetExists(targetType, targetId)
	if err != nil {
		return false, errors.WithMessage(errno.ServiceErr, "check like target failed")
	}
	if !exists {
		return false, errors.WithMessage(errno.NotFoundErr, fmt.Sprintf("%s %d not found", targetType, targetId))
	}

	key := fmt.Sprintf("like:%s:%d:%d", targetType, targetId, userId)
	toggleLocks.Lock(key)
	defer toggleLocks.Unlock(key)

	existing, err := db.GetLike(service.ctx, targetType, targetId, userId)
	if err != nil {
		return false, errors.WithMessage(errno.ServiceErr, "check like state failed")
	}

	if existing != nil {
		if err := db.DeleteLike(service.ctx, targetType, targetId, userId); err != nil {
			logrus.Errorf("delete like failed: %v", err)
			return false, errors.WithMessage(errno.ServiceErr, "delete like failed")
		}
		service.cacheManager.InvalidateLikeCount(service.ctx, targetType, targetId)
		return false, nil
	}

	if err := db.CreateLike(service.ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// a concurrent toggle won the insert; the edge exists
			return true, nil
		}
		logrus.Errorf("create like failed: %v", err)
		return false, errors.WithMessage(errno.ServiceErr, "create like failed")
	}
	service.cacheManager.InvalidateLikeCount(service.ctx, targetType, targetId)
	return true, nil
}

func (service *LikeActionService) targetExists(targetType string, targetId int64) (bool, error) {
	switch targetType {
	case model.LikeTargetVideo:
		return db.CheckVideoExists(service.ctx, targetId)
	case model.LikeTargetComment:
		return db.CheckCommentExists(service.ctx, targetId)
	case model.LikeTargetTweet:
		return db.CheckTweetExists(service.ctx, targetId)
	default:
		return false, fmt.Errorf("unknown like target type: %q", targetType)
	}
}
