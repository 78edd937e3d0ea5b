package service

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

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

func seedVideo(t *testing.T, ownerId int64, title string) *model.Video {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId: utils.NewID(), UserId: ownerId, Title: title,
		Description: title + " description", VideoUrl: "v.mp4", CoverUrl: "c.png",
		IsPublished: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.CreateVideo(context.Background(), video))
	return video
}

func TestCreateUserAndGetInfo(t *testing.T) {
	initTestDB(t)
	service := NewUserService(context.Background())

	user, err := service.CreateUser("alice", "Alice A", "a.png", "cover.png")
	require.NoError(t, err)
	assert.NotZero(t, user.UserId)

	_, err = service.CreateUser("  ", "", "", "")
	assert.ErrorIs(t, err, errno.ParamErr)

	info, err := service.GetUserInfo(user.UserId)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.UserName)
	assert.Equal(t, "Alice A", info.FullName)
	assert.Equal(t, "a.png", info.AvatarUrl)

	_, err = service.GetUserInfo(404)
	assert.ErrorIs(t, err, errno.NotFoundErr)
	_, err = service.GetUserInfo(0)
	assert.ErrorIs(t, err, errno.ParamErr)
}

func TestGetWatchHistory(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	service := NewUserService(ctx)

	creator, err := service.CreateUser("creator", "Creator", "", "")
	require.NoError(t, err)
	viewer, err := service.CreateUser("viewer", "Viewer", "", "")
	require.NoError(t, err)

	v1 := seedVideo(t, creator.UserId, "first watched")
	v2 := seedVideo(t, creator.UserId, "second watched")
	gone := seedVideo(t, creator.UserId, "deleted later")

	for _, v := range []*model.Video{v1, v2, gone} {
		require.NoError(t, db.AddWatchHistory(ctx, viewer.UserId, v.VideoId))
	}
	// rewatching must not duplicate the entry
	require.NoError(t, db.AddWatchHistory(ctx, viewer.UserId, v1.VideoId))
	require.NoError(t, db.DeleteVideo(ctx, gone.VideoId))

	history, err := service.GetWatchHistory(viewer.UserId)
	require.NoError(t, err)
	require.Len(t, history, 2)

	watchedIds := []int64{history[0].VideoId, history[1].VideoId}
	assert.ElementsMatch(t, []int64{v1.VideoId, v2.VideoId}, watchedIds)
	require.NotNil(t, history[0].Owner)
	assert.Equal(t, "creator", history[0].Owner.UserName)

	_, err = service.GetWatchHistory(0)
	assert.ErrorIs(t, err, errno.ParamErr)

	// a user with no history gets an empty list
	history, err = service.GetWatchHistory(creator.UserId)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestWatchHistoryMostRecentFirst(t *testing.T) {
	initTestDB(t)
	ctx := context.Background()
	service := NewUserService(ctx)

	creator, err := service.CreateUser("creator", "Creator", "", "")
	require.NoError(t, err)
	viewer, err := service.CreateUser("viewer", "Viewer", "", "")
	require.NoError(t, err)

	older := seedVideo(t, creator.UserId, "older")
	newer := seedVideo(t, creator.UserId, "newer")
	require.NoError(t, db.AddWatchHistory(ctx, viewer.UserId, older.VideoId))
	require.NoError(t, db.AddWatchHistory(ctx, viewer.UserId, newer.VideoId))

	history, err := service.GetWatchHistory(viewer.UserId)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, newer.VideoId, history[0].VideoId)
	assert.Equal(t, older.VideoId, history[1].VideoId)
}
