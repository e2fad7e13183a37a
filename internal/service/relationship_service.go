package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/d60-Lab/network/internal/cache"
	"github.com/d60-Lab/network/internal/repository"
)

// Follow states as the API reports them.
const (
	StateFollowed   = "followed"
	StateUnfollowed = "unfollowed"
)

// FollowResult is the outcome of a toggle: the new edge state and the
// target's follower count after the write.
type FollowResult struct {
	State     string `json:"state"`
	Followers int64  `json:"followers"`
}

// RelationshipService owns the Following relation.
type RelationshipService interface {
	// ToggleFollow flips the actor->target edge. Toggling twice restores
	// the original state.
	ToggleFollow(ctx context.Context, actorID, targetUsername string) (*FollowResult, error)
	IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error)
	FollowerCount(ctx context.Context, userID string) (int64, error)
	FollowingCount(ctx context.Context, userID string) (int64, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
	cache      *cache.Cache
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository, c *cache.Cache) RelationshipService {
	return &relationshipService{followRepo: followRepo, userRepo: userRepo, cache: c}
}

func (s *relationshipService) ToggleFollow(ctx context.Context, actorID, targetUsername string) (*FollowResult, error) {
	target, err := s.userRepo.GetByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if actorID == target.ID {
		return nil, ErrFollowSelf
	}
	followed, err := s.followRepo.Toggle(ctx, actorID, target.ID)
	if err != nil {
		return nil, err
	}
	s.cache.InvalidateFollowerCount(ctx, target.ID)
	followers, err := s.followRepo.CountFollowers(ctx, target.ID)
	if err != nil {
		return nil, err
	}
	state := StateUnfollowed
	if followed {
		state = StateFollowed
	}
	return &FollowResult{State: state, Followers: followers}, nil
}

func (s *relationshipService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followeeID)
}

func (s *relationshipService) FollowerCount(ctx context.Context, userID string) (int64, error) {
	if n, ok := s.cache.FollowerCount(ctx, userID); ok {
		return n, nil
	}
	n, err := s.followRepo.CountFollowers(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.cache.SetFollowerCount(ctx, userID, n)
	return n, nil
}

func (s *relationshipService) FollowingCount(ctx context.Context, userID string) (int64, error) {
	return s.followRepo.CountFollowing(ctx, userID)
}
