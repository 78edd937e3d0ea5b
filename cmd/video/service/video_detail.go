package service

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
)

// GetVideoDetail composes the denormalized detail view: the video row, the
// flattened owner profile, the owner's subscriber count, like and comment
// counts, and the caller-relative flags. The successful fetch increments
// the view counter and, for an authenticated caller, appends the video to
// their watch history (duplicates suppressed). callerId <= 0 is anonymous:
// the flags come back as explicit false, never omitted.
//
// Joins read snapshot-per-stage: a write landing between stages may leave
// a slightly stale count, which is within the consistency contract.
func (service *VideoService) GetVideoDetail(videoId, callerId int64) (*model.VideoDetail, error) {
	if videoId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "video id is required")
	}

	video, err := db.GetVideo(service.ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithMessage(errno.NotFoundErr, "video not found")
		}
		return nil, errors.WithMessage(errno.ServiceErr, "load video failed")
	}

	if err := db.IncrementVideoVisit(service.ctx, videoId); err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "increment video views failed")
	}
	video.VisitCount++

	if callerId > 0 {
		if err := db.AddWatchHistory(service.ctx, callerId, videoId); err != nil {
			// history is best effort; the detail view still renders
			logrus.Errorf("append watch history failed: %v", err)
		}
	}

	detail := &model.VideoDetail{
		VideoId:     video.VideoId,
		Title:       video.Title,
		Description: video.Description,
		VideoUrl:    video.VideoUrl,
		CoverUrl:    video.CoverUrl,
		Duration:    video.Duration,
		VisitCount:  video.VisitCount,
		IsPublished: video.IsPublished,
		CreatedAt:   video.CreatedAt,
	}

	// owner join is a list of at most one; flatten to pointer-or-nil
	owners, err := db.GetUsersByIds(service.ctx, []int64{video.UserId})
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "join video owner failed")
	}
	if len(owners) > 0 {
		owner := owners[0]
		detail.Owner = &model.UserSummary{
			UserId:    owner.UserId,
			UserName:  owner.UserName,
			FullName:  owner.FullName,
			AvatarUrl: owner.AvatarUrl,
		}
	}

	detail.SubscriberCount, err = service.subscriberCount(video.UserId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "count subscribers failed")
	}
	detail.IsSubscribed, err = db.IsSubscribed(service.ctx, video.UserId, callerId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "check subscription failed")
	}

	detail.LikesCount, err = service.likeCount(video.VideoId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "count likes failed")
	}
	if callerId > 0 {
		like, err := db.GetLike(service.ctx, model.LikeTargetVideo, video.VideoId, callerId)
		if err != nil {
			return nil, errors.WithMessage(errno.ServiceErr, "check caller like failed")
		}
		detail.IsLiked = like != nil
	}

	detail.CommentsCount, err = db.GetVideoCommentCount(service.ctx, video.VideoId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "count comments failed")
	}

	return detail, nil
}

// likeCount serves the hot counter from cache when possible and falls back
// to the store, refreshing the cache on a miss.
func (service *VideoService) likeCount(videoId int64) (int64, error) {
	if count, ok := service.cacheManager.GetLikeCount(service.ctx, model.LikeTargetVideo, videoId); ok {
		return count, nil
	}
	count, err := db.GetLikeCount(service.ctx, model.LikeTargetVideo, videoId)
	if err != nil {
		return 0, err
	}
	service.cacheManager.SetLikeCount(service.ctx, model.LikeTargetVideo, videoId, count)
	return count, nil
}

func (service *VideoService) subscriberCount(channelId int64) (int64, error) {
	if count, ok := service.cacheManager.GetSubscriberCount(service.ctx, channelId); ok {
		return count, nil
	}
	count, err := db.GetSubscriberCount(service.ctx, channelId)
	if err != nil {
		return 0, err
	}
	service.cacheManager.SetSubscriberCount(service.ctx, channelId, count)
	return count, nil
}
