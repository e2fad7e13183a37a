package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/network/internal/model"
)

type LikeRepository interface {
	// Toggle flips the (user, post) edge and reports whether the user
	// likes the post afterwards.
	Toggle(ctx context.Context, userID, postID string) (bool, error)
	Exists(ctx context.Context, userID, postID string) (bool, error)
	CountForPost(ctx context.Context, postID string) (int64, error)
	// LikedSet returns which of postIDs the user has liked, for feed pages.
	LikedSet(ctx context.Context, userID string, postIDs []string) (map[string]bool, error)
}

type likeRepository struct{ db *gorm.DB }

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

// Toggle uses the same conditional-insert discipline as FollowRepository,
// guarded by idx_like_pair.
func (r *likeRepository) Toggle(ctx context.Context, userID, postID string) (bool, error) {
	l := &model.Like{ID: uuid.New().String(), UserID: userID, PostID: postID}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(l)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{}).Error
	return false, err
}

func (r *likeRepository) Exists(ctx context.Context, userID, postID string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *likeRepository) CountForPost(ctx context.Context, postID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&cnt).Error
	return cnt, err
}

func (r *likeRepository) LikedSet(ctx context.Context, userID string, postIDs []string) (map[string]bool, error) {
	out := make(map[string]bool, len(postIDs))
	if len(postIDs) == 0 {
		return out, nil
	}
	var liked []string
	err := r.db.WithContext(ctx).
		Model(&model.Like{}).
		Select("post_id").
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Scan(&liked).Error
	if err != nil {
		return nil, err
	}
	for _, id := range liked {
		out[id] = true
	}
	return out, nil
}
