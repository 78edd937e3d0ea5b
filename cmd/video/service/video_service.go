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
	"VideoTube.com/pkg/cache"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

type VideoService struct {
	ctx          context.Context
	cacheManager *cache.CountCacheManager
}

func NewVideoService(ctx context.Context, cacheManager *cache.CountCacheManager) *VideoService {
	return &VideoService{ctx: ctx, cacheManager: cacheManager}
}

type PublishVideoParams struct {
	UserId      int64
	Title       string
	Description string
	VideoUrl    string
	CoverUrl    string
	Duration    int64
}

// PublishVideo validates required fields, rejects duplicate
// title/description, and creates the row as published.
func (service *VideoService) PublishVideo(params *PublishVideoParams) (*model.Video, error) {
	if params.UserId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "owner id is required")
	}
	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Description) == "" {
		return nil, errors.WithMessage(errno.ParamErr, "title and description are required")
	}
	if params.VideoUrl == "" || params.CoverUrl == "" {
		return nil, errors.WithMessage(errno.ParamErr, "video file and thumbnail are required")
	}

	existed, err := db.FindVideoByTitleOrDescription(service.ctx, params.Title, params.Description)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "check existing video failed")
	}
	if existed {
		return nil, errors.WithMessage(errno.ConflictErr, "video with same title or description already exists")
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     utils.NewID(),
		UserId:      params.UserId,
		Title:       params.Title,
		Description: params.Description,
		VideoUrl:    params.VideoUrl,
		CoverUrl:    params.CoverUrl,
		Duration:    params.Duration,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.CreateVideo(service.ctx, video); err != nil {
		logrus.Errorf("create video failed: %v", err)
		return nil, errors.WithMessage(errno.ServiceErr, "create video failed")
	}
	return video, nil
}

// UpdateVideo patches title, description and thumbnail.
func (service *VideoService) UpdateVideo(videoId int64, title, description, coverUrl string) error {
	if videoId <= 0 {
		return errors.WithMessage(errno.ParamErr, "video id is required")
	}
	if strings.TrimSpace(title) == "" && strings.TrimSpace(description) == "" && coverUrl == "" {
		return errors.WithMessage(errno.ParamErr, "nothing to update")
	}

	patch := map[string]interface{}{
		"updated_at": time.Now().Format(constants.DataFormate),
	}
	if strings.TrimSpace(title) != "" {
		patch["title"] = title
	}
	if strings.TrimSpace(description) != "" {
		patch["description"] = description
	}
	if coverUrl != "" {
		patch["cover_url"] = coverUrl
	}

	if err := db.UpdateVideo(service.ctx, videoId, patch); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithMessage(errno.NotFoundErr, "video not found")
		}
		return errors.WithMessage(errno.ServiceErr, "update video failed")
	}
	return nil
}

// TogglePublishStatus flips visibility and returns the new state.
func (service *VideoService) TogglePublishStatus(videoId int64) (bool, error) {
	if videoId <= 0 {
		return false, errors.WithMessage(errno.ParamErr, "video id is required")
	}
	video, err := db.GetVideo(service.ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errors.WithMessage(errno.NotFoundErr, "video not found")
		}
		return false, errors.WithMessage(errno.ServiceErr, "load video failed")
	}

	next := !video.IsPublished
	patch := map[string]interface{}{
		"is_published": next,
		"updated_at":   time.Now().Format(constants.DataFormate),
	}
	if err := db.UpdateVideo(service.ctx, videoId, patch); err != nil {
		return false, errors.WithMessage(errno.ServiceErr, "update publish status failed")
	}
	return next, nil
}
