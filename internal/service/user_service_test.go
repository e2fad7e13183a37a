package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/network/internal/model"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.userSvc.Register(ctx, "alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", u.Password) // stored hashed

	got, err := f.userSvc.Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = f.userSvc.Authenticate(ctx, "alice", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.userSvc.Authenticate(ctx, "nobody", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.userSvc.Register(ctx, "alice", "a@example.com", "x")
	require.NoError(t, err)
	_, err = f.userSvc.Register(ctx, "alice", "b@example.com", "y")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestDeleteUserLeavesNoOrphans(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	doomed := f.register(t, "doomed")
	other := f.register(t, "other")

	post, err := f.postSvc.CreatePost(ctx, doomed.ID, "about to vanish")
	require.NoError(t, err)
	kept, err := f.postSvc.CreatePost(ctx, other.ID, "kept")
	require.NoError(t, err)

	_, err = f.relSvc.ToggleFollow(ctx, doomed.ID, "other")
	require.NoError(t, err)
	_, err = f.relSvc.ToggleFollow(ctx, other.ID, "doomed")
	require.NoError(t, err)
	_, err = f.engSvc.ToggleLike(ctx, other.ID, post.ID)
	require.NoError(t, err)
	_, err = f.engSvc.ToggleLike(ctx, doomed.ID, kept.ID)
	require.NoError(t, err)

	require.NoError(t, f.userSvc.Delete(ctx, "doomed"))

	var posts, follows, likes int64
	require.NoError(t, f.db.Model(&model.Post{}).Count(&posts).Error)
	require.NoError(t, f.db.Model(&model.Follow{}).Count(&follows).Error)
	require.NoError(t, f.db.Model(&model.Like{}).Count(&likes).Error)
	require.EqualValues(t, 1, posts)
	require.Zero(t, follows)
	require.Zero(t, likes)

	require.ErrorIs(t, f.userSvc.Delete(ctx, "doomed"), ErrUserNotFound)
}
