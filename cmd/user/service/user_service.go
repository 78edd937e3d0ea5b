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

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

func (service *UserService) CreateUser(userName, fullName, avatarUrl, coverUrl string) (*model.User, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, errors.WithMessage(errno.ParamErr, "user name is required")
	}

	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    utils.NewID(),
		UserName:  userName,
		FullName:  fullName,
		AvatarUrl: avatarUrl,
		CoverUrl:  coverUrl,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateUser(service.ctx, user); err != nil {
		logrus.Errorf("create user failed: %v", err)
		return nil, errors.WithMessage(errno.ServiceErr, "create user failed")
	}
	return user, nil
}

// GetUserInfo projects the profile to the summary view; credential fields
// never leave the store layer.
func (service *UserService) GetUserInfo(userId int64) (*model.UserSummary, error) {
	if userId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "user id is required")
	}
	user, err := db.GetUser(service.ctx, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithMessage(errno.NotFoundErr, "user not found")
		}
		return nil, errors.WithMessage(errno.ServiceErr, "load user failed")
	}
	return &model.UserSummary{
		UserId:    user.UserId,
		UserName:  user.UserName,
		FullName:  user.FullName,
		AvatarUrl: user.AvatarUrl,
	}, nil
}

// GetWatchHistory composes the watched-video list in most-recent-first
// order, owner-joined. Entries whose video has been deleted are skipped.
func (service *UserService) GetWatchHistory(userId int64) ([]*model.VideoSummary, error) {
	if userId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "user id is required")
	}

	videoIds, err := db.GetWatchHistoryVideoIds(service.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "load watch history failed")
	}
	videos, err := db.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "join watched videos failed")
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		videoById[v.VideoId] = v
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := db.GetUsersByIds(service.ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "join video owners failed")
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u
	}

	summaries := make([]*model.VideoSummary, 0, len(videoIds))
	for _, id := range videoIds {
		video, ok := videoById[id]
		if !ok {
			continue
		}
		summary := &model.VideoSummary{
			VideoId:    video.VideoId,
			Title:      video.Title,
			VideoUrl:   video.VideoUrl,
			CoverUrl:   video.CoverUrl,
			Duration:   video.Duration,
			VisitCount: video.VisitCount,
			CreatedAt:  video.CreatedAt,
		}
		if owner, ok := ownerById[video.UserId]; ok {
			summary.Owner = &model.UserSummary{
				UserId:    owner.UserId,
				UserName:  owner.UserName,
				FullName:  owner.FullName,
				AvatarUrl: owner.AvatarUrl,
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
