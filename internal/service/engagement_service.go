package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/network/internal/cache"
	"github.com/d60-Lab/network/internal/repository"
)

// LikeResult is the outcome of a like toggle.
type LikeResult struct {
	Liked bool   `json:"liked"`
	Likes int64  `json:"likes"`
	ID    string `json:"id"`
}

// EngagementService owns the Likes relation.
type EngagementService interface {
	// ToggleLike flips the actor->post edge. Toggling twice restores the
	// original state.
	ToggleLike(ctx context.Context, actorID, postID string) (*LikeResult, error)
	HasLiked(ctx context.Context, userID, postID string) (bool, error)
}

type engagementService struct {
	likeRepo repository.LikeRepository
	postRepo repository.PostRepository
	cache    *cache.Cache
}

func NewEngagementService(likeRepo repository.LikeRepository, postRepo repository.PostRepository, c *cache.Cache) EngagementService {
	return &engagementService{likeRepo: likeRepo, postRepo: postRepo, cache: c}
}

func (s *engagementService) ToggleLike(ctx context.Context, actorID, postID string) (*LikeResult, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	liked, err := s.likeRepo.Toggle(ctx, actorID, post.ID)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateFrontPage(ctx)
	likes, err := s.likeRepo.CountForPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: liked, Likes: likes, ID: post.ID}, nil
}

func (s *engagementService) HasLiked(ctx context.Context, userID, postID string) (bool, error) {
	return s.likeRepo.Exists(ctx, userID, postID)
}
