package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/network/internal/model"
)

func TestFollowToggle(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	followed, err := repo.Toggle(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.True(t, followed)

	exists, err := repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.True(t, exists)

	// toggling again removes the edge
	followed, err = repo.Toggle(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.False(t, followed)

	exists, err = repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	require.False(t, exists)

	var cnt int64
	require.NoError(t, db.Model(&model.Follow{}).Count(&cnt).Error)
	require.Zero(t, cnt)
}

func TestFollowToggleNeverDuplicates(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	a := seedUser(t, db, "alice")
	b := seedUser(t, db, "bob")

	for i := 0; i < 6; i++ {
		_, err := repo.Toggle(ctx, a.ID, b.ID)
		require.NoError(t, err)
		var cnt int64
		require.NoError(t, db.Model(&model.Follow{}).
			Where("follower_id = ? AND followee_id = ?", a.ID, b.ID).
			Count(&cnt).Error)
		require.LessOrEqual(t, cnt, int64(1))
	}
}

func TestFollowCounts(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()
	target := seedUser(t, db, "celebrity")
	other := seedUser(t, db, "other")

	for i := 0; i < 4; i++ {
		fan := seedUser(t, db, fmt.Sprintf("fan%d", i))
		_, err := repo.Toggle(ctx, fan.ID, target.ID)
		require.NoError(t, err)
	}
	_, err := repo.Toggle(ctx, target.ID, other.ID)
	require.NoError(t, err)

	followers, err := repo.CountFollowers(ctx, target.ID)
	require.NoError(t, err)
	require.EqualValues(t, 4, followers)
	following, err := repo.CountFollowing(ctx, target.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, following)
}

func BenchmarkFollowToggle(b *testing.B) {
	db, err := newBenchDB()
	if err != nil {
		b.Fatalf("open db: %v", err)
	}
	repo := NewFollowRepository(db)
	ctx := context.Background()

	users := make([]model.User, 500)
	for i := range users {
		users[i] = model.User{ID: fmt.Sprintf("u%04d", i), Username: fmt.Sprintf("u%04d", i), Email: fmt.Sprintf("u%04d@example.com", i), Password: "p"}
	}
	if err := db.Create(&users).Error; err != nil {
		b.Fatalf("seed users: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := users[i%len(users)].ID
		to := users[(i*7+1)%len(users)].ID
		if from == to {
			continue
		}
		_, _ = repo.Toggle(ctx, from, to)
	}
}
