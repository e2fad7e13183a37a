package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/d60-Lab/network/internal/model"
	"github.com/d60-Lab/network/internal/repository"
)

// fixture wires every service against one in-memory database.
type fixture struct {
	db      *gorm.DB
	userSvc UserService
	relSvc  RelationshipService
	engSvc  EngagementService
	postSvc PostService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Post{}, &model.Follow{}, &model.Like{}))

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	postRepo := repository.NewPostRepository(db)

	return &fixture{
		db:      db,
		userSvc: NewUserService(userRepo),
		relSvc:  NewRelationshipService(followRepo, userRepo, nil),
		engSvc:  NewEngagementService(likeRepo, postRepo, nil),
		postSvc: NewPostService(postRepo, userRepo, likeRepo, followRepo, nil),
	}
}

func (f *fixture) register(t *testing.T, username string) *model.User {
	t.Helper()
	u, err := f.userSvc.Register(context.Background(), username, username+"@example.com", "secret")
	require.NoError(t, err)
	return u
}
