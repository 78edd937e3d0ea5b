package db

import (
	"context"
	"time"

	"gorm.io/gorm"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

func GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) error {
	res := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now().Format(constants.DataFormate),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	res := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func CheckCommentExists(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, err
	}
	return count != 0, nil
}

// GetVideoComments returns the feed base set newest first; ties on the
// second-resolution timestamp fall back to id descending so the order is
// deterministic.
func GetVideoComments(ctx context.Context, videoId int64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Order("created_at desc, comment_id desc").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func GetVideoCommentIds(ctx context.Context, videoId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Select("comment_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteCommentsByVideo is a cascade sweep step; deleting an already-clean
// set is a no-op, which keeps the sweep retryable.
func DeleteCommentsByVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Comment{}).Error
}
