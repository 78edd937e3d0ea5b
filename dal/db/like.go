package db

import (
	"context"
	"time"

	"github.com/google/uuid"

	"VideoTube.com/cmd/model"
	"VideoTube.com/pkg/constants"
)

// CreateLike inserts an edge row. The unique (target_type, target_id,
// user_id) index makes a concurrent duplicate surface as
// gorm.ErrDuplicatedKey instead of a second row.
func CreateLike(ctx context.Context, like *model.Like) error {
	if like.LikeId == 0 {
		like.LikeId = int64(uuid.New().ID())
	}
	if like.CreatedAt == "" {
		like.CreatedAt = time.Now().Format(constants.DataFormate)
	}
	return DB.WithContext(ctx).Create(like).Error
}

// GetLike returns the edge matching the endpoints exactly, or nil when
// absent. Absence is a normal toggle outcome, not an error.
func GetLike(ctx context.Context, targetType string, targetId, userId int64) (*model.Like, error) {
	likes := make([]*model.Like, 0, 1)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And target_id = ? And user_id = ?", targetType, targetId, userId).
		Limit(1).Find(&likes).Error; err != nil {
		return nil, err
	}
	if len(likes) == 0 {
		return nil, nil
	}
	return likes[0], nil
}

func DeleteLike(ctx context.Context, targetType string, targetId, userId int64) error {
	return DB.WithContext(ctx).
		Where("target_type = ? And target_id = ? And user_id = ?", targetType, targetId, userId).
		Delete(&model.Like{}).Error
}

func GetLikeCount(ctx context.Context, targetType string, targetId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And target_id = ?", targetType, targetId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikeUserIds returns who liked the target, for the isLiked derivation.
func GetLikeUserIds(ctx context.Context, targetType string, targetId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And target_id = ?", targetType, targetId).
		Select("user_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetLikesByUser returns a user's like edges for one target kind, newest
// like first. Base set of the liked-video view.
func GetLikesByUser(ctx context.Context, targetType string, userId int64) ([]*model.Like, error) {
	likes := make([]*model.Like, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And user_id = ?", targetType, userId).
		Order("created_at desc, like_id desc").Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// GetLikedTargetSet reports which of targetIds the user has liked, one
// membership query for a whole feed page.
func GetLikedTargetSet(ctx context.Context, targetType string, userId int64, targetIds []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(targetIds))
	if userId <= 0 || len(targetIds) == 0 {
		return liked, nil
	}
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And user_id = ? And target_id in ?", targetType, userId, targetIds).
		Select("target_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	for _, id := range list {
		liked[id] = true
	}
	return liked, nil
}

// GetLikeCountsByTargets batches per-target counts for feed annotation.
func GetLikeCountsByTargets(ctx context.Context, targetType string, targetIds []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(targetIds))
	if len(targetIds) == 0 {
		return counts, nil
	}
	rows := make([]struct {
		TargetId int64
		Total    int64
	}, 0, len(targetIds))
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? And target_id in ?", targetType, targetIds).
		Select("target_id, count(*) as total").Group("target_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.TargetId] = row.Total
	}
	return counts, nil
}

// DeleteLikesByTarget sweeps every edge pointing at one parent. Idempotent.
func DeleteLikesByTarget(ctx context.Context, targetType string, targetId int64) error {
	return DB.WithContext(ctx).
		Where("target_type = ? And target_id = ?", targetType, targetId).
		Delete(&model.Like{}).Error
}

// DeleteLikesByTargets sweeps edges for a batch of parents (the comments
// of a deleted video). Idempotent.
func DeleteLikesByTargets(ctx context.Context, targetType string, targetIds []int64) error {
	if len(targetIds) == 0 {
		return nil
	}
	return DB.WithContext(ctx).
		Where("target_type = ? And target_id in ?", targetType, targetIds).
		Delete(&model.Like{}).Error
}

// DeleteLikesByTargetAndUser is the caller-scoped variant of the comment
// sweep (policy parameter on comment deletion).
func DeleteLikesByTargetAndUser(ctx context.Context, targetType string, targetId, userId int64) error {
	return DB.WithContext(ctx).
		Where("target_type = ? And target_id = ? And user_id = ?", targetType, targetId, userId).
		Delete(&model.Like{}).Error
}
