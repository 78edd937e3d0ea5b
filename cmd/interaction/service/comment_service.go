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

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (service *CommentService) AddComment(videoId, userId int64, content string) (*model.Comment, error) {
	if videoId <= 0 || userId <= 0 {
		return nil, errors.WithMessage(errno.ParamErr, "video id and user id are required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, errors.WithMessage(errno.ParamErr, "comment content is required")
	}

	exists, err := db.CheckVideoExists(service.ctx, videoId)
	if err != nil {
		return nil, errors.WithMessage(errno.ServiceErr, "check video failed")
	}
	if !exists {
		return nil, errors.WithMessage(errno.NotFoundErr, "video not found")
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: utils.NewID(),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateComment(service.ctx, comment); err != nil {
		logrus.Errorf("create comment failed: %v", err)
		return nil, errors.WithMessage(errno.ServiceErr, "create comment failed")
	}
	return comment, nil
}

func (service *CommentService) UpdateComment(commentId int64, content string) error {
	if commentId <= 0 {
		return errors.WithMessage(errno.ParamErr, "comment id is required")
	}
	if strings.TrimSpace(content) == "" {
		return errors.WithMessage(errno.ParamErr, "comment content is required")
	}
	if err := db.UpdateCommentContent(service.ctx, commentId, content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithMessage(errno.NotFoundErr, "comment not found")
		}
		return errors.WithMessage(errno.ServiceErr, "update comment failed")
	}
	return nil
}

// DeleteComment removes the comment row, then sweeps its like edges.
// onlyCallerLikes scopes the sweep to the acting caller's edge (policy
// parameter, per the caller layer's choice). A sweep failure is reported
// as CascadeErr with the parent already gone; retry via
// SweepCommentRelations.
func (service *CommentService) DeleteComment(commentId int64, onlyCallerLikes bool, callerId int64) error {
	if commentId <= 0 {
		return errors.WithMessage(errno.ParamErr, "comment id is required")
	}
	if err := db.DeleteComment(service.ctx, commentId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithMessage(errno.NotFoundErr, "comment not found")
		}
		return errors.WithMessage(errno.ServiceErr, "delete comment failed")
	}
	if err := service.SweepCommentRelations(commentId, onlyCallerLikes, callerId); err != nil {
		logrus.Errorf("comment %d deleted but like sweep failed: %v", commentId, err)
		return errors.WithMessage(errno.CascadeErr, "comment deleted, like sweep failed")
	}
	return nil
}

// SweepCommentRelations deletes like edges referencing a comment. Running
// it against an already-clean set is a no-op, so a failed cascade can
// retry the sweep alone.
func (service *CommentService) SweepCommentRelations(commentId int64, onlyCallerLikes bool, callerId int64) error {
	if onlyCallerLikes {
		return db.DeleteLikesByTargetAndUser(service.ctx, model.LikeTargetComment, commentId, callerId)
	}
	return db.DeleteLikesByTarget(service.ctx, model.LikeTargetComment, commentId)
}
