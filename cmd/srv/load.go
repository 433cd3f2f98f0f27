package main

import (
	"fmt"
	"time"

	"github.com/yatube-lab/backend/internal/domain"
	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/internal/repository"
	"github.com/yatube-lab/backend/pkg/pagecache"
	"github.com/yatube-lab/backend/pkg/storage"
	"github.com/yatube-lab/backend/pkg/xcontext"
	"github.com/yatube-lab/backend/pkg/xredis"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.ConnectionString(), // data source name
			DefaultStringSize:         256,                    // default size for string fields
			DisableDatetimePrecision:  true,                   // disable datetime precision, which not supported before MySQL 5.6
			DontSupportRenameIndex:    true,                   // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
			DontSupportRenameColumn:   true,                   // `change` when rename column, rename column not supported before MySQL 8, MariaDB
			SkipInitializeWithVersion: false,                  // auto configure based on currently MySQL version
		})
	case "sqlite":
		dialector = sqlite.Open(cfg.ConnectionString())
	default:
		panic(fmt.Sprintf("unsupported database driver %s", cfg.Driver))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		panic(err)
	}

	return db
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "INFO":
		return gormlogger.Info
	case "WARNING":
		return gormlogger.Warn
	case "ERROR":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}

func (s *srv) migrateDB() {
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadStorage() {
	var err error
	s.storage, err = storage.NewS3Storage(xcontext.Configs(s.ctx).Storage)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

// loadPageCache selects the page cache backend. The memory cache is local to
// the process and only suits a single api instance.
func (s *srv) loadPageCache() {
	cfg := xcontext.Configs(s.ctx).Cache
	switch cfg.Driver {
	case "redis":
		s.loadRedisClient()
		s.pageCache = pagecache.NewRedisCache(s.redisClient, cfg.Prefix)
	case "memory":
		s.pageCache = pagecache.NewMemoryCache(time.Now)
	default:
		panic(fmt.Sprintf("unsupported cache driver %s", cfg.Driver))
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.groupRepo = repository.NewGroupRepository()
	s.postRepo = repository.NewPostRepository()
	s.commentRepo = repository.NewCommentRepository()
	s.followRepo = repository.NewFollowRepository()
}

func (s *srv) loadDomains() {
	s.feedDomain = domain.NewFeedDomain(s.postRepo, s.groupRepo, s.userRepo, s.followRepo, s.pageCache)
	s.postDomain = domain.NewPostDomain(s.postRepo, s.commentRepo, s.groupRepo, s.userRepo, s.storage)
	s.followDomain = domain.NewFollowDomain(s.followRepo, s.userRepo)
	s.groupDomain = domain.NewGroupDomain(s.groupRepo, s.postRepo, s.userRepo)
}
