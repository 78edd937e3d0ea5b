package service

import (
	"github.com/pkg/errors"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/pager"
)

// GetCommentFeed composes the paginated comment view for a video: match
// comments, join owner profiles, derive like counts and the caller flag,
// project, then page. A video with no comments (or an unknown id) yields
// an empty page, not an error; callerId <= 0 means anonymous and every
// IsLiked is an explicit false.
func (service *CommentService) GetCommentFeed(videoId, page, limit, callerId int64) (pager.Page[*model.CommentView], error) {
	var empty pager.Page[*model.CommentView]
	if videoId <= 0 {
		return empty, errors.WithMessage(errno.ParamErr, "video id is required")
	}

	comments, err := db.GetVideoComments(service.ctx, videoId)
	if err != nil {
		return empty, errors.WithMessage(errno.ServiceErr, "load comments failed")
	}

	ownerIds := make([]int64, 0, len(comments))
	commentIds := make([]int64, 0, len(comments))
	for _, c := range comments {
		ownerIds = append(ownerIds, c.UserId)
		commentIds = append(commentIds, c.CommentId)
	}

	owners, err := db.GetUsersByIds(service.ctx, ownerIds)
	if err != nil {
		return empty, errors.WithMessage(errno.ServiceErr, "join comment owners failed")
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u
	}

	likeCounts, err := db.GetLikeCountsByTargets(service.ctx, model.LikeTargetComment, commentIds)
	if err != nil {
		return empty, errors.WithMessage(errno.ServiceErr, "count comment likes failed")
	}
	likedSet, err := db.GetLikedTargetSet(service.ctx, model.LikeTargetComment, callerId, commentIds)
	if err != nil {
		return empty, errors.WithMessage(errno.ServiceErr, "check caller likes failed")
	}

	views := make([]*model.CommentView, 0, len(comments))
	for _, c := range comments {
		view := &model.CommentView{
			CommentId:  c.CommentId,
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
			LikesCount: likeCounts[c.CommentId],
			IsLiked:    likedSet[c.CommentId],
		}
		if owner, ok := ownerById[c.UserId]; ok {
			view.Owner = &model.UserSummary{
				UserId:    owner.UserId,
				UserName:  owner.UserName,
				FullName:  owner.FullName,
				AvatarUrl: owner.AvatarUrl,
			}
		}
		views = append(views, view)
	}

	return pager.Paginate(views, page, limit), nil
}
