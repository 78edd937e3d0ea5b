package service

import (
	"github.com/pkg/errors"

	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/pager"
)

// GetTweetFeed composes a user's tweet feed: owner-joined, like-annotated,
// newest first, and paginated in the same envelope as the comment feed.
// An unknown user or a user with no tweets yields an empty page.
func (service *TweetService) GetTweetFeed(userId, page, limit, callerId int64) (pager.Page[*model.TweetView], error) {
	var empty pager.Page[*model.TweetView]
	if userId <= 0 {
		return empty, errors.WithMessage(errno.ParamErr, "user id is required")
	}

	tweets, err := db.GetUserTweets(service.ctx, userId)
	if err != nil {
		return empty, errors.WithMessage(errno.ServiceErr, "load tweets failed")
	}

	tweetIds := make([]int64, 0, len(tweets))
	for _, t := range tweets {
		tweetIds = append(tweetIds, t.TweetId)
	}

	// the feed is single-owner; one profile row covers every entry
	owners, err := db.GetUsersByIds(service.ctx, []int64{userId})
	if err != nil {
		return empty, errors.WithMessage(errno.ServiceErr, "join tweet owner failed")
	}
	var owner *model.UserSummary
	if len(owners) > 0 {
		owner = &model.UserSummary{
			UserId:    owners[0].UserId,
			UserName:  owners[0].UserName,
			FullName:  owners[0].FullName,
			AvatarUrl: owners[0].AvatarUrl,
		}
	}

	likeCounts, err := db.GetLikeCountsByTargets(service.ctx, model.LikeTargetTweet, tweetIds)
	if err != nil {
		return empty, errors.WithMessage(errno.ServiceErr, "count tweet likes failed")
	}
	likedSet, err := db.GetLikedTargetSet(service.ctx, model.LikeTargetTweet, callerId, tweetIds)
	if err != nil {
		return empty, errors.WithMessage(errno.ServiceErr, "check caller likes failed")
	}

	views := make([]*model.TweetView, 0, len(tweets))
	for _, t := range tweets {
		views = append(views, &model.TweetView{
			TweetId:    t.TweetId,
			Content:    t.Content,
			CreatedAt:  t.CreatedAt,
			Owner:      owner,
			LikesCount: likeCounts[t.TweetId],
			IsLiked:    likedSet[t.TweetId],
		})
	}

	return pager.Paginate(views, page, limit), nil
}
