package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/network/internal/model"
)

func TestToggleFollowPairIsInverse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	res, err := f.relSvc.ToggleFollow(ctx, alice.ID, "bob")
	require.NoError(t, err)
	require.Equal(t, StateFollowed, res.State)
	require.EqualValues(t, 1, res.Followers)

	ok, err := f.relSvc.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, ok)

	res, err = f.relSvc.ToggleFollow(ctx, alice.ID, "bob")
	require.NoError(t, err)
	require.Equal(t, StateUnfollowed, res.State)
	require.EqualValues(t, 0, res.Followers)

	ok, err = f.relSvc.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestToggleFollowSelfRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")

	_, err := f.relSvc.ToggleFollow(ctx, alice.ID, "alice")
	require.ErrorIs(t, err, ErrFollowSelf)

	// rejected operation must not touch the edge set
	var cnt int64
	require.NoError(t, f.db.Model(&model.Follow{}).Count(&cnt).Error)
	require.Zero(t, cnt)
}

func TestToggleFollowUnknownTarget(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")

	_, err := f.relSvc.ToggleFollow(context.Background(), alice.ID, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollowerCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	target := f.register(t, "target")
	for _, name := range []string{"a", "b", "c"} {
		u := f.register(t, name)
		_, err := f.relSvc.ToggleFollow(ctx, u.ID, "target")
		require.NoError(t, err)
	}

	n, err := f.relSvc.FollowerCount(ctx, target.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	n, err = f.relSvc.FollowingCount(ctx, target.ID)
	require.NoError(t, err)
	require.Zero(t, n)
}
