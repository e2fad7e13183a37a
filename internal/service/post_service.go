package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/network/internal/cache"
	"github.com/d60-Lab/network/internal/model"
	"github.com/d60-Lab/network/internal/repository"
	"github.com/d60-Lab/network/pkg/pagination"
)

// TimeFormat is the wire format for post timestamps.
const TimeFormat = "2006-01-02 15:04"

// PostView is the public representation of a post.
type PostView struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	Likes     int64  `json:"likes"`
	Liked     bool   `json:"liked"`
}

// FeedPage is one page of posts plus its pagination envelope.
type FeedPage struct {
	Posts      []PostView      `json:"posts"`
	Pagination pagination.Page `json:"pagination"`
}

// ProfilePage is a user's feed page plus graph counts. IsFollowing is set
// only when the viewer is authenticated and is not the profile owner.
type ProfilePage struct {
	FeedPage
	Username    string `json:"username"`
	Followers   int64  `json:"followers"`
	Following   int64  `json:"following"`
	IsFollowing *bool  `json:"is_following,omitempty"`
}

// PostService owns post creation and the three feed queries. All feeds are
// newest-first with pagination.PageSize posts per page; out-of-range pages
// clamp.
type PostService interface {
	// CreatePost trims content, rejects empty or >model.MaxPostContentLen,
	// and returns the created post with zero likes.
	CreatePost(ctx context.Context, authorID, content string) (*PostView, error)
	// GlobalFeed returns all posts. viewerID may be empty.
	GlobalFeed(ctx context.Context, viewerID string, page int) (*FeedPage, error)
	// FollowingFeed returns posts authored by users the viewer follows.
	// An empty following set yields an empty page, never the global feed.
	FollowingFeed(ctx context.Context, viewerID string, page int) (*FeedPage, error)
	// ProfileFeed returns the target user's posts plus graph counts.
	ProfileFeed(ctx context.Context, viewerID, username string, page int) (*ProfilePage, error)
}

type postService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	likeRepo   repository.LikeRepository
	followRepo repository.FollowRepository
	cache      *cache.Cache
}

func NewPostService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	likeRepo repository.LikeRepository,
	followRepo repository.FollowRepository,
	c *cache.Cache,
) PostService {
	return &postService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		likeRepo:   likeRepo,
		followRepo: followRepo,
		cache:      c,
	}
}

func (s *postService) CreatePost(ctx context.Context, authorID, content string) (*PostView, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if len([]rune(content)) > model.MaxPostContentLen {
		return nil, ErrContentTooLong
	}
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	post, err := s.postRepo.Create(ctx, author.ID, content)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateFrontPage(ctx)
	return &PostView{
		ID:        post.ID,
		Author:    author.Username,
		Content:   post.Content,
		CreatedAt: post.CreatedAt.Format(TimeFormat),
		Likes:     0,
	}, nil
}

func (s *postService) GlobalFeed(ctx context.Context, viewerID string, page int) (*FeedPage, error) {
	// only the anonymous page 1 is cacheable: liked flags are per viewer
	cacheable := viewerID == "" && page <= 1
	if cacheable {
		if payload, ok := s.cache.FrontPage(ctx); ok {
			var fp FeedPage
			if err := json.Unmarshal(payload, &fp); err == nil {
				return &fp, nil
			}
		}
	}
	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	pg := pagination.Clamp(page, total)
	rows, err := s.postRepo.ListAll(ctx, pg.Offset(), pagination.PageSize)
	if err != nil {
		return nil, err
	}
	fp, err := s.renderPage(ctx, viewerID, rows, pg)
	if err != nil {
		return nil, err
	}
	if cacheable && pg.Number == 1 {
		if payload, err := json.Marshal(fp); err == nil {
			s.cache.SetFrontPage(ctx, payload)
		}
	}
	return fp, nil
}

func (s *postService) FollowingFeed(ctx context.Context, viewerID string, page int) (*FeedPage, error) {
	total, err := s.postRepo.CountFollowed(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	pg := pagination.Clamp(page, total)
	rows, err := s.postRepo.ListFollowed(ctx, viewerID, pg.Offset(), pagination.PageSize)
	if err != nil {
		return nil, err
	}
	return s.renderPage(ctx, viewerID, rows, pg)
}

func (s *postService) ProfileFeed(ctx context.Context, viewerID, username string, page int) (*ProfilePage, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	total, err := s.postRepo.CountByAuthor(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	pg := pagination.Clamp(page, total)
	rows, err := s.postRepo.ListByAuthor(ctx, target.ID, pg.Offset(), pagination.PageSize)
	if err != nil {
		return nil, err
	}
	fp, err := s.renderPage(ctx, viewerID, rows, pg)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.CountFollowers(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	following, err := s.followRepo.CountFollowing(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	profile := &ProfilePage{
		FeedPage:  *fp,
		Username:  target.Username,
		Followers: followers,
		Following: following,
	}
	if viewerID != "" && viewerID != target.ID {
		isFollowing, err := s.followRepo.Exists(ctx, viewerID, target.ID)
		if err != nil {
			return nil, err
		}
		profile.IsFollowing = &isFollowing
	}
	return profile, nil
}

// renderPage converts repository rows into the wire shape, annotating each
// post with the viewer's liked flag when a viewer is present.
func (s *postService) renderPage(ctx context.Context, viewerID string, rows []repository.FeedRow, pg pagination.Page) (*FeedPage, error) {
	var likedSet map[string]bool
	if viewerID != "" && len(rows) > 0 {
		ids := make([]string, len(rows))
		for i, r := range rows {
			ids[i] = r.ID
		}
		var err error
		likedSet, err = s.likeRepo.LikedSet(ctx, viewerID, ids)
		if err != nil {
			return nil, err
		}
	}
	posts := make([]PostView, len(rows))
	for i, r := range rows {
		posts[i] = PostView{
			ID:        r.ID,
			Author:    r.Author,
			Content:   r.Content,
			CreatedAt: r.CreatedAt.Format(TimeFormat),
			Likes:     r.Likes,
			Liked:     likedSet[r.ID],
		}
	}
	return &FeedPage{Posts: posts, Pagination: pg}, nil
}
