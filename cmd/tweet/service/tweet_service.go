package service

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func (service *TweetService) CreateTweet(userId int64, content string) (*model.Tweet, error) {
	if userId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "user id is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.WithMessage(errno.ParamErr, "tweet content is required")
	}

	now := time.Now().Format(constants.DataFormate)
	tweet := &model.Tweet{
		TweetId:   utils.NewID(),
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateTweet(service.ctx, tweet); err != nil {
		logrus.Errorf("create tweet failed: %v", err)
		return nil, errors.WithMessage(errno.ServiceErr, "create tweet failed")
	}
	return tweet, nil
}

func (service *TweetService) UpdateTweet(tweetId int64, content string) error {
	if tweetId <= 0 {
		return errors.WithMessage(errno.ParamErr, "tweet id is required")
	}
	if strings.TrimSpace(content) == "" {
		return errors.WithMessage(errno.ParamErr, "tweet content is required")
	}
	if err := db.UpdateTweetContent(service.ctx, tweetId, content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithMessage(errno.NotFoundErr, "tweet not found")
		}
		return errors.WithMessage(errno.ServiceErr, "update tweet failed")
	}
	return nil
}

// DeleteTweet removes the tweet row, then sweeps its like edges. Sweep
// failure is reported as CascadeErr with the parent already gone; retry
// via SweepTweetRelations.
func (service *TweetService) DeleteTweet(tweetId int64) error {
	if tweetId <= 0 {
		return errors.WithMessage(errno.ParamErr, "tweet id is required")
	}
	if err := db.DeleteTweet(service.ctx, tweetId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithMessage(errno.NotFoundErr, "tweet not found")
		}
		return errors.WithMessage(errno.ServiceErr, "delete tweet failed")
	}
	if err := service.SweepTweetRelations(tweetId); err != nil {
		logrus.Errorf("tweet %d deleted but like sweep failed: %v", tweetId, err)
		return errors.WithMessage(errno.CascadeErr, "tweet deleted, like sweep failed")
	}
	return nil
}

// SweepTweetRelations is idempotent; re-running it against a clean set is
// a no-op.
func (service *TweetService) SweepTweetRelations(tweetId int64) error {
	return db.DeleteLikesByTarget(service.ctx, model.LikeTargetTweet, tweetId)
}
