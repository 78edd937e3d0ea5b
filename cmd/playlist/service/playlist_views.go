package service

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
)

// GetUserPlaylists composes the summary view of a user's playlists:
// member count plus the summed view counter of the joined videos.
// No playlists is an empty list, not an error.
func (service *PlaylistService) GetUserPlaylists(userId int64) ([]*model.PlaylistSummary, error) {
	if userId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "user id is required")
	}

	playlists, err := db.GetUserPlaylists(service.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "load playlists failed")
	}

	summaries := make([]*model.PlaylistSummary, 0, len(playlists))
	for _, p := range playlists {
		videoIds, err := db.GetPlaylistVideoIds(service.ctx, p.PlaylistId)
		if err != nil {
			return nil, errors.WithMessage(errno.ServiceErr, "load playlist members failed")
		}
		videos, err := db.GetVideosByIds(service.ctx, videoIds)
		if err != nil {
			return nil, errors.WithMessage(errno.ServiceErr, "join playlist videos failed")
		}
		var totalView int64
		for _, v := range videos {
			totalView += v.VisitCount
		}
		summaries = append(summaries, &model.PlaylistSummary{
			PlaylistId:  p.PlaylistId,
			Name:        p.Name,
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
			VideoCount:  int64(len(videos)),
			TotalView:   totalView,
		})
	}
	return summaries, nil
}

// GetPlaylistDetail composes the nested detail view: the member videos in
// playlist order, each owner-joined and projected to summary fields, plus
// the playlist owner with their subscriber count, the member count, and
// the aggregate view total. Member rows whose video has been deleted are
// skipped and do not count.
func (service *PlaylistService) GetPlaylistDetail(playlistId int64) (*model.PlaylistDetail, error) {
	if playlistId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "playlist id is required")
	}

	playlist, err := db.GetPlaylist(service.ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.WithMessage(errno.NotFoundErr, "playlist not found")
		}
		return nil, errors.WithMessage(errno.ServiceErr, "load playlist failed")
	}

	videoIds, err := db.GetPlaylistVideoIds(service.ctx, playlistId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "load playlist members failed")
	}
	videos, err := db.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "join playlist videos failed")
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos)+1)
	for _, v := range videos {
		videoById[v.VideoId] = v
		ownerIds = append(ownerIds, v.UserId)
	}
	ownerIds = append(ownerIds, playlist.UserId)

	owners, err := db.GetUsersByIds(service.ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "join owners failed")
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u
	}

	detail := &model.PlaylistDetail{
		PlaylistId:  playlist.PlaylistId,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		Videos:      make([]*model.VideoSummary, 0, len(videoIds)),
	}

	// member order is playlist insertion order, not createdAt
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
		detail.Videos = append(detail.Videos, summary)
		detail.TotalView += video.VisitCount
	}
	detail.VideosCount = int64(len(detail.Videos))

	if owner, ok := ownerById[playlist.UserId]; ok {
		subscriberCount, err := db.GetSubscriberCount(service.ctx, owner.UserId)
		if err != nil {
			return nil, errors.WithMessage(errno.ServiceErr, "count owner subscribers failed")
		}
		detail.Owner = &model.ChannelProfile{
			UserSummary: model.UserSummary{
				UserId:    owner.UserId,
				UserName:  owner.UserName,
				FullName:  owner.FullName,
				AvatarUrl: owner.AvatarUrl,
			},
			SubscriberCount: subscriberCount,
		}
	}

	return detail, nil
}
