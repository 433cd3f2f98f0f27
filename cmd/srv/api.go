package main

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
	"github.com/yatube-lab/backend/internal/middleware"
	"github.com/yatube-lab/backend/pkg/prometheus"
	"github.com/yatube-lab/backend/pkg/router"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

func (s *srv) startApi(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadStorage()
	s.loadPageCache()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx).ApiServer
	s.metricsServer = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.MetricsPort),
		Handler: prometheus.NewHandler(),
	}

	go func() {
		xcontext.Logger(s.ctx).Infof("Starting metrics server on port: %s", cfg.MetricsPort)
		if err := s.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			xcontext.Logger(s.ctx).Errorf("Cannot serve metrics: %v", err)
		}
	}()

	s.server = &http.Server{
		Addr: fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: cors.New(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}).Handler(s.router.Handler()),
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.Port)

	var err error
	if cfg.Cert != "" && cfg.Key != "" {
		err = s.server.ListenAndServeTLS(cfg.Cert, cfg.Key)
	} else {
		err = s.server.ListenAndServe()
	}
	if err != nil && err != http.ErrServerClosed {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger(), middleware.Prometheus())

	// These following APIs need authentication with Access Token.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.NewAuthVerifier().WithAccessToken().Middleware())
	{
		router.GET(authRouter, "/getFollowIndex", s.feedDomain.GetFollowIndex)
		router.GET(authRouter, "/getFollowStatus", s.followDomain.GetFollowStatus)

		router.POST(authRouter, "/createPost", s.postDomain.Create)
		router.POST(authRouter, "/updatePost", s.postDomain.Update)
		router.POST(authRouter, "/deletePost", s.postDomain.Delete)
		router.POST(authRouter, "/addComment", s.postDomain.AddComment)

		router.POST(authRouter, "/follow", s.followDomain.Follow)
		router.POST(authRouter, "/unfollow", s.followDomain.Unfollow)
	}

	// These following APIs are only for admins.
	adminRouter := authRouter.Branch()
	adminRouter.Before(middleware.NewOnlyAdmin(s.userRepo).Middleware())
	{
		router.POST(adminRouter, "/createGroup", s.groupDomain.Create)
		router.POST(adminRouter, "/deleteGroup", s.groupDomain.Delete)
		router.POST(adminRouter, "/invalidateCache", s.feedDomain.InvalidateCache)
	}

	// Public API, the requester is resolved when a token is present.
	publicRouter := s.router.Branch()
	publicRouter.Before(middleware.NewAuthVerifier().WithAccessToken().WithOptional().Middleware())
	{
		router.GET(publicRouter, "/getIndex", s.feedDomain.GetIndex)
		router.GET(publicRouter, "/getGroupPosts", s.feedDomain.GetGroupPosts)
		router.GET(publicRouter, "/getProfile", s.feedDomain.GetProfile)
		router.GET(publicRouter, "/getPost", s.postDomain.Get)
		router.GET(publicRouter, "/getGroups", s.groupDomain.GetList)
		router.GET(publicRouter, "/getGroup", s.groupDomain.Get)
	}
}
