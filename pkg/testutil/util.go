package testutil

import (
	"context"
	"time"

	"github.com/yatube-lab/backend/config"
	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/pkg/logger"
	"github.com/yatube-lab/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MockConfigs() config.Configs {
	return config.Configs{
		Env: "test",
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
			Admins: []string{User3.Username},
		},
		File: config.FileConfigs{
			MaxSize:       2 * 1024 * 1024,
			MaxImageWidth: 64,
			ImageBucket:   "images",
		},
		Cache: config.CacheConfigs{
			Driver: "memory",
			Prefix: "feed",
		},
		Feed: config.FeedConfigs{
			PageSize: 10,
			IndexTTL: 20 * time.Second,
		},
	}
}

// MockContext returns a context holding an empty migrated sqlite database in
// memory. Every call returns a new database.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		panic(err)
	}

	// Each connection of the pool would open its own memory database.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, MockConfigs())
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
