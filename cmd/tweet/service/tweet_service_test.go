package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	intersvc "VideoTube.com/cmd/interaction/service"
	"VideoTube.com/cmd/model"
	"VideoTube.com/dal/db"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/errno"
	"VideoTube.com/pkg/utils"
)

func initTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(gdb))
	db.DB = gdb
}

func seedUser(t *testing.T, name string) *model.User {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	user := &model.User{UserId: utils.NewID(), UserName: name, FullName: name, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.CreateUser(context.Background(), user))
	return user
}

func TestTweetLifecycle(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	author := seedUser(t, "author")
	service := NewTweetService(ctx)

	tweet, err := service.CreateTweet(author.UserId, "hello")
	require.NoError(t, err)
	assert.NotZero(t, tweet.TweetId)

	_, err = service.CreateTweet(author.UserId, "  ")
	assert.ErrorIs(t, err, errno.ParamErr)
	_, err = service.CreateTweet(0, "orphan")
	assert.ErrorIs(t, err, errno.ParamErr)

	require.NoError(t, service.UpdateTweet(tweet.TweetId, "edited"))
	got, err := db.GetTweet(ctx, tweet.TweetId)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)

	assert.ErrorIs(t, service.UpdateTweet(404, "nope"), errno.NotFoundErr)
}

func TestDeleteTweetSweepsLikes(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	author := seedUser(t, "author")
	fan := seedUser(t, "fan")
	service := NewTweetService(ctx)
	likeSvc := intersvc.NewLikeActionService(ctx, nil)

	tweet, err := service.CreateTweet(author.UserId, "doomed")
	require.NoError(t, err)

	liked, err := likeSvc.ToggleLike(model.LikeTargetTweet, tweet.TweetId, fan.UserId)
	require.NoError(t, err)
	require.True(t, liked)

	require.NoError(t, service.DeleteTweet(tweet.TweetId))

	_, err = db.GetTweet(ctx, tweet.TweetId)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := db.GetLikeCount(ctx, model.LikeTargetTweet, tweet.TweetId)
	require.NoError(t, err)
	assert.Zero(t, count)

	assert.ErrorIs(t, service.DeleteTweet(tweet.TweetId), errno.NotFoundErr)
	require.NoError(t, service.SweepTweetRelations(tweet.TweetId))
}

func TestGetTweetFeed(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	author := seedUser(t, "author")
	fan := seedUser(t, "fan")
	service := NewTweetService(ctx)
	likeSvc := intersvc.NewLikeActionService(ctx, nil)

	const total = 12
	tweets := make([]*model.Tweet, 0, total)
	for i := 0; i < total; i++ {
		tw, err := service.CreateTweet(author.UserId, "post")
		require.NoError(t, err)
		tweets = append(tweets, tw)
	}
	latest := tweets[total-1]

	_, err := likeSvc.ToggleLike(model.LikeTargetTweet, latest.TweetId, fan.UserId)
	require.NoError(t, err)

	t.Run("FirstPageNewestFirst", func(t *testing.T) {
		page, err := service.GetTweetFeed(author.UserId, 1, 10, fan.UserId)
		require.NoError(t, err)
		require.Len(t, page.Items, 10)
		assert.Equal(t, latest.TweetId, page.Items[0].TweetId)
		assert.Equal(t, int64(total), page.TotalItems)
		assert.True(t, page.HasNextPage)

		assert.Equal(t, int64(1), page.Items[0].LikesCount)
		assert.True(t, page.Items[0].IsLiked)
		assert.False(t, page.Items[1].IsLiked)
		require.NotNil(t, page.Items[0].Owner)
		assert.Equal(t, author.UserName, page.Items[0].Owner.UserName)
	})

	t.Run("LastPage", func(t *testing.T) {
		page, err := service.GetTweetFeed(author.UserId, 2, 10, 0)
		require.NoError(t, err)
		assert.Len(t, page.Items, total%10)
		assert.False(t, page.HasNextPage)
		assert.True(t, page.HasPrevPage)
	})

	t.Run("NoTweetsIsEmptyNotError", func(t *testing.T) {
		page, err := service.GetTweetFeed(fan.UserId, 1, 10, 0)
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(0), page.TotalItems)
	})

	t.Run("InvalidUser", func(t *testing.T) {
		_, err := service.GetTweetFeed(0, 1, 10, 0)
		assert.ErrorIs(t, err, errno.ParamErr)
	})
}
