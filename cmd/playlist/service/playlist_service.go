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

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

// CreatePlaylist rejects a duplicate name/description before inserting.
func (service *PlaylistService) CreatePlaylist(userId int64, name, description string) (*model.Playlist, error) {
	if userId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "owner id is required")
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, errors.WithMessage(errno.ParamErr, "name and description are required")
	}

	existed, err := db.FindPlaylistByNameOrDescription(service.ctx, name, description)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "check existing playlist failed")
	}
	if existed {
		return nil, errors.WithMessage(errno.ConflictErr, "playlist already exists with the same name or description")
	}

	now := time.Now().Format(constants.DataFormate)
	playlist := &model.Playlist{
		PlaylistId:  utils.NewID(),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.CreatePlaylist(service.ctx, playlist); err != nil {
		logrus.Errorf("create playlist failed: %v", err)
		return nil, errors.WithMessage(errno.ServiceErr, "create playlist failed")
	}
	return playlist, nil
}

func (service *PlaylistService) UpdatePlaylist(playlistId int64, name, description string) error {
	if playlistId <= 0 {
		return errors.WithMessage(errno.ParamErr, "playlist id is required")
	}
	if strings.TrimSpace(name) == "" && strings.TrimSpace(description) == "" {
		return errors.WithMessage(errno.ParamErr, "name or description is required")
	}

	patch := map[string]interface{}{
		"updated_at": time.Now().Format(constants.DataFormate),
	}
	if strings.TrimSpace(name) != "" {
		patch["name"] = name
	}
	if strings.TrimSpace(description) != "" {
		patch["description"] = description
	}
	if err := db.UpdatePlaylist(service.ctx, playlistId, patch); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithMessage(errno.NotFoundErr, "playlist not found")
		}
		return errors.WithMessage(errno.ServiceErr, "update playlist failed")
	}
	return nil
}

// AddVideoToPlaylist appends with set semantics; re-adding is a no-op.
func (service *PlaylistService) AddVideoToPlaylist(playlistId, videoId int64) error {
	if playlistId <= 0 || videoId <= 0 {
		return errors.WithMessage(errno.ParamErr, "playlist id and video id are required")
	}
	if _, err := db.GetPlaylist(service.ctx, playlistId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithMessage(errno.NotFoundErr, "playlist not found")
		}
		return errors.WithMessage(errno.ServiceErr, "load playlist failed")
	}
	exists, err := db.CheckVideoExists(service.ctx, videoId)
	if err != nil {
		return errors.WithMessage(errno.ServiceErr, "check video failed")
	}
	if !exists {
		return errors.WithMessage(errno.NotFoundErr, "video not found")
	}
	if err := db.AddPlaylistVideo(service.ctx, playlistId, videoId); err != nil {
		return errors.WithMessage(errno.ServiceErr, "add video to playlist failed")
	}
	return nil
}

func (service *PlaylistService) RemoveVideoFromPlaylist(playlistId, videoId int64) error {
	if playlistId <= 0 || videoId <= 0 {
		return errors.WithMessage(errno.ParamErr, "playlist id and video id are required")
	}
	if err := db.RemovePlaylistVideo(service.ctx, playlistId, videoId); err != nil {
		return errors.WithMessage(errno.ServiceErr, "remove video from playlist failed")
	}
	return nil
}

// DeletePlaylist removes the playlist and its member rows only. Member
// videos are unaffected; playlists do not own videos.
func (service *PlaylistService) DeletePlaylist(playlistId int64) error {
	if playlistId <= 0 {
		return errors.WithMessage(errno.ParamErr, "playlist id is required")
	}
	if err := db.DeletePlaylist(service.ctx, playlistId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithMessage(errno.NotFoundErr, "playlist not found")
		}
		return errors.WithMessage(errno.ServiceErr, "delete playlist failed")
	}
	if err := db.DeletePlaylistVideos(service.ctx, playlistId); err != nil {
		logrus.Errorf("playlist %d deleted but member sweep failed: %v", playlistId, err)
		return errors.WithMessage(errno.CascadeErr, "playlist deleted, member sweep failed")
	}
	return nil
}
