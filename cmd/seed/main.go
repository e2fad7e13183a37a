package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"github.com/d60-Lab/network/config"
	"github.com/d60-Lab/network/internal/repository"
	"github.com/d60-Lab/network/pkg/database"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Seeds demo users, a follow graph and some posts with likes.
func main() {
	cfg := must(config.Load())
	db := must(database.InitDB(cfg))
	ctx := context.Background()

	users := 20
	if s := os.Getenv("USERS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			users = n
		}
	}
	postsPer := 5
	if s := os.Getenv("POSTS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			postsPer = n
		}
	}

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	postRepo := repository.NewPostRepository(db)

	hash := must(bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost))

	ids := make([]string, users)
	for i := 0; i < users; i++ {
		u := must(userRepo.Create(ctx, fmt.Sprintf("user%02d", i), fmt.Sprintf("user%02d@example.com", i), string(hash)))
		ids[i] = u.ID
	}

	postIDs := make([]string, 0, users*postsPer)
	for i, id := range ids {
		for j := 0; j < postsPer; j++ {
			p := must(postRepo.Create(ctx, id, fmt.Sprintf("post %d from user%02d", j, i)))
			postIDs = append(postIDs, p.ID)
		}
	}

	// each user follows ~a third of the others and likes a handful of posts
	for i, id := range ids {
		for j, other := range ids {
			if i == j || rand.Intn(3) != 0 {
				continue
			}
			must(followRepo.Toggle(ctx, id, other))
		}
		for k := 0; k < 5 && len(postIDs) > 0; k++ {
			must(likeRepo.Toggle(ctx, id, postIDs[rand.Intn(len(postIDs))]))
		}
	}

	fmt.Printf("seeded %d users, %d posts\n", users, len(postIDs))
}
