package service

import (
	"github.com/pkg/errors"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
)

// GetLikedVideos composes the caller's liked-video list: match the
// caller's like edges (newest like first), join the videos, keep only
// published ones, join each video's owner, project to summaries. Edges
// whose video has since been deleted or unpublished are skipped silently.
func (service *VideoService) GetLikedVideos(callerId int64) ([]*model.VideoSummary, error) {
	if callerId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "caller id is required")
	}

	likes, err := db.GetLikesByUser(service.ctx, model.LikeTargetVideo, callerId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "load like edges failed")
	}

	videoIds := make([]int64, 0, len(likes))
	for _, like := range likes {
		videoIds = append(videoIds, like.TargetId)
	}
	videos, err := db.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "join liked videos failed")
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

	summaries := make([]*model.VideoSummary, 0, len(likes))
	// iterate the edges so the newest-like-first order survives the joins
	for _, like := range likes {
		video, ok := videoById[like.TargetId]
		if !ok || !video.IsPublished {
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
