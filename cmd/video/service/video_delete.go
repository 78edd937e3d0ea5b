package service

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
)

// DeleteVideo removes the video row, then sweeps everything referencing
// it: likes on the video, the video's comments, and the likes on those
// comments (full transitive sweep). The parent goes first; if the sweep
// fails the operation is reported as CascadeErr with the parent already
// gone, and SweepVideoRelations can be retried on its own.
func (service *VideoService) DeleteVideo(videoId int64) error {
	if videoId <= 0 {
		return errors.WithMessage(errno.ParamErr, "video id is required")
	}

	// capture the comment set before the parent disappears; the sweep
	// needs it to chase comment likes
	commentIds, err := db.GetVideoCommentIds(service.ctx, videoId)
	if err != nil {
		return errors.WithMessage(errno.ServiceErr, "load video comments failed")
	}

	if err := db.DeleteVideo(service.ctx, videoId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithMessage(errno.NotFoundErr, "video not found")
		}
		return errors.WithMessage(errno.ServiceErr, "delete video failed")
	}

	if err := service.sweepVideoRelations(videoId, commentIds); err != nil {
		logrus.Errorf("video %d deleted but relation sweep failed: %v", videoId, err)
		return errors.WithMessage(errno.CascadeErr, "video deleted, relation sweep failed")
	}
	service.cacheManager.InvalidateLikeCount(service.ctx, model.LikeTargetVideo, videoId)
	return nil
}

// SweepVideoRelations re-runs the dependent-row sweep for a video whose
// cascade previously failed partway. Every step is a deletion by
// predicate, so sweeping an already-clean relation set is a no-op.
func (service *VideoService) SweepVideoRelations(videoId int64) error {
	commentIds, err := db.GetVideoCommentIds(service.ctx, videoId)
	if err != nil {
		return err
	}
	return service.sweepVideoRelations(videoId, commentIds)
}

func (service *VideoService) sweepVideoRelations(videoId int64, commentIds []int64) error {
	if err := db.DeleteLikesByTarget(service.ctx, model.LikeTargetVideo, videoId); err != nil {
		return errors.WithMessage(err, "sweep video likes")
	}
	if err := db.DeleteLikesByTargets(service.ctx, model.LikeTargetComment, commentIds); err != nil {
		return errors.WithMessage(err, "sweep comment likes")
	}
	if err := db.DeleteCommentsByVideo(service.ctx, videoId); err != nil {
		return errors.WithMessage(err, "sweep comments")
	}
	return nil
}
