package db

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/utils"
)

func initTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, AutoMigrate(gdb))
	DB = gdb
}

func seedUser(t *testing.T, name string) *model.User {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	user := &model.User{UserId: utils.NewID(), UserName: name, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, CreateUser(context.Background(), user))
	return user
}

func seedVideo(t *testing.T, ownerId int64, title string) *model.Video {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId: utils.NewID(), UserId: ownerId, Title: title,
		Description: title + " description", VideoUrl: "v.mp4", CoverUrl: "c.png",
		IsPublished: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, CreateVideo(context.Background(), video))
	return video
}

func TestUserStore(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	u := seedUser(t, "alice")

	got, err := GetUser(ctx, u.UserId)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)

	_, err = GetUser(ctx, 404)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	exists, err := CheckUserExists(ctx, u.UserId)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestVideoStoreUpdateDelete(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	u := seedUser(t, "bob")
	v := seedVideo(t, u.UserId, "first")

	require.NoError(t, UpdateVideo(ctx, v.VideoId, map[string]interface{}{"title": "renamed"}))
	got, err := GetVideo(ctx, v.VideoId)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)

	assert.ErrorIs(t, UpdateVideo(ctx, 404, map[string]interface{}{"title": "x"}), gorm.ErrRecordNotFound)

	require.NoError(t, DeleteVideo(ctx, v.VideoId))
	assert.ErrorIs(t, DeleteVideo(ctx, v.VideoId), gorm.ErrRecordNotFound)
}

func TestVideoVisitCounter(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	u := seedUser(t, "carol")
	v := seedVideo(t, u.UserId, "counted")

	require.NoError(t, IncrementVideoVisit(ctx, v.VideoId))
	require.NoError(t, IncrementVideoVisit(ctx, v.VideoId))

	got, err := GetVideo(ctx, v.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.VisitCount)
}

func TestLikeUniqueConstraint(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	like, err := model.NewLike(model.LikeTargetVideo, 100, 200)
	require.NoError(t, err)
	require.NoError(t, CreateLike(ctx, like))

	dup, err := model.NewLike(model.LikeTargetVideo, 100, 200)
	require.NoError(t, err)
	err = CreateLike(ctx, dup)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// same user, different target kind is a distinct edge
	other, err := model.NewLike(model.LikeTargetComment, 100, 200)
	require.NoError(t, err)
	assert.NoError(t, CreateLike(ctx, other))
}

func TestLikeSweepIdempotent(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	for _, userId := range []int64{1, 2, 3} {
		like, err := model.NewLike(model.LikeTargetVideo, 55, userId)
		require.NoError(t, err)
		require.NoError(t, CreateLike(ctx, like))
	}

	require.NoError(t, DeleteLikesByTarget(ctx, model.LikeTargetVideo, 55))
	count, err := GetLikeCount(ctx, model.LikeTargetVideo, 55)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// sweeping an already-clean set is a no-op
	require.NoError(t, DeleteLikesByTarget(ctx, model.LikeTargetVideo, 55))
}

func TestLikeBatchHelpers(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	for _, pair := range [][2]int64{{10, 1}, {10, 2}, {11, 1}} {
		like, err := model.NewLike(model.LikeTargetComment, pair[0], pair[1])
		require.NoError(t, err)
		require.NoError(t, CreateLike(ctx, like))
	}

	counts, err := GetLikeCountsByTargets(ctx, model.LikeTargetComment, []int64{10, 11, 12})
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[10])
	assert.Equal(t, int64(1), counts[11])
	assert.Zero(t, counts[12])

	liked, err := GetLikedTargetSet(ctx, model.LikeTargetComment, 1, []int64{10, 11, 12})
	require.NoError(t, err)
	assert.True(t, liked[10])
	assert.True(t, liked[11])
	assert.False(t, liked[12])

	// anonymous caller sees nothing liked
	liked, err = GetLikedTargetSet(ctx, model.LikeTargetComment, 0, []int64{10, 11})
	require.NoError(t, err)
	assert.Empty(t, liked)
}

func TestSubscriptionUniqueConstraint(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	require.NoError(t, CreateSubscription(ctx, 1, 2))
	assert.ErrorIs(t, CreateSubscription(ctx, 1, 2), gorm.ErrDuplicatedKey)

	subscribed, err := IsSubscribed(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, subscribed)

	subscribed, err = IsSubscribed(ctx, 1, 0)
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestPlaylistMemberSetSemantics(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	require.NoError(t, AddPlaylistVideo(ctx, 7, 100))
	require.NoError(t, AddPlaylistVideo(ctx, 7, 101))
	require.NoError(t, AddPlaylistVideo(ctx, 7, 100)) // duplicate, no-op

	ids, err := GetPlaylistVideoIds(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 101}, ids)

	require.NoError(t, RemovePlaylistVideo(ctx, 7, 100))
	ids, err = GetPlaylistVideoIds(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{101}, ids)
}

func TestWatchHistoryDedup(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()

	require.NoError(t, AddWatchHistory(ctx, 1, 50))
	require.NoError(t, AddWatchHistory(ctx, 1, 50))
	require.NoError(t, AddWatchHistory(ctx, 1, 51))

	ids, err := GetWatchHistoryVideoIds(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}
