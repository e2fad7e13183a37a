package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/network/internal/model"
)

// FeedRow is one post as feed pages render it: author resolved to a
// username, like count precomputed in the query.
type FeedRow struct {
	ID        string
	Author    string
	Content   string
	CreatedAt time.Time
	Likes     int64
}

type PostRepository interface {
	Create(ctx context.Context, authorID, content string) (*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	CountAll(ctx context.Context) (int64, error)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	// CountFollowed counts posts authored by anyone userID follows.
	CountFollowed(ctx context.Context, userID string) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]FeedRow, error)
	ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]FeedRow, error)
	ListFollowed(ctx context.Context, userID string, offset, limit int) ([]FeedRow, error)
}

type postRepository struct{ db *gorm.DB }

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, authorID, content string) (*model.Post, error) {
	p := &model.Post{
		ID:        uuid.New().String(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	var p model.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postRepository) CountAll(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("author_id = ?", authorID).
		Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) CountFollowed(ctx context.Context, userID string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Joins("JOIN follows ON follows.followee_id = posts.author_id").
		Where("follows.follower_id = ?", userID).
		Count(&cnt).Error
	return cnt, err
}

func (r *postRepository) ListAll(ctx context.Context, offset, limit int) ([]FeedRow, error) {
	return r.listRows(ctx, r.feedQuery(ctx), offset, limit)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID string, offset, limit int) ([]FeedRow, error) {
	q := r.feedQuery(ctx).Where("posts.author_id = ?", authorID)
	return r.listRows(ctx, q, offset, limit)
}

func (r *postRepository) ListFollowed(ctx context.Context, userID string, offset, limit int) ([]FeedRow, error) {
	q := r.feedQuery(ctx).
		Joins("JOIN follows ON follows.followee_id = posts.author_id").
		Where("follows.follower_id = ?", userID)
	return r.listRows(ctx, q, offset, limit)
}

// feedQuery builds the shared projection: author username joined in, like
// count as a correlated subquery. Ordering is newest first with id as the
// deterministic tie-break.
func (r *postRepository) feedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id",
			"users.username AS author",
			"posts.content",
			"posts.created_at",
			"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes").
		Joins("JOIN users ON users.id = posts.author_id")
}

func (r *postRepository) listRows(_ context.Context, q *gorm.DB, offset, limit int) ([]FeedRow, error) {
	rows := []FeedRow{}
	err := q.Order("posts.created_at DESC, posts.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
