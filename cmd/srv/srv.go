package main

import (
	"context"
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/yatube-lab/backend/internal/domain"
	"github.com/yatube-lab/backend/internal/repository"
	"github.com/yatube-lab/backend/pkg/pagecache"
	"github.com/yatube-lab/backend/pkg/router"
	"github.com/yatube-lab/backend/pkg/storage"
	"github.com/yatube-lab/backend/pkg/xredis"
)

type srv struct {
	app *cli.App
	ctx context.Context

	userRepo    repository.UserRepository
	groupRepo   repository.GroupRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	followRepo  repository.FollowRepository

	feedDomain   domain.FeedDomain
	postDomain   domain.PostDomain
	followDomain domain.FollowDomain
	groupDomain  domain.GroupDomain

	storage     storage.Storage
	redisClient xredis.Client
	pageCache   pagecache.Cache

	router        *router.Router
	server        *http.Server
	metricsServer *http.Server
}
