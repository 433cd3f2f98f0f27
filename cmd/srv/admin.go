package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"github.com/yatube-lab/backend/internal/common"
	"github.com/yatube-lab/backend/internal/domain"
	"github.com/yatube-lab/backend/internal/entity"
	"github.com/yatube-lab/backend/internal/model"
	"github.com/yatube-lab/backend/pkg/authenticator"
	"github.com/yatube-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

func (s *srv) loadAdminCommand() {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRepos()
	s.groupDomain = domain.NewGroupDomain(s.groupRepo, s.postRepo, s.userRepo)
}

func (s *srv) createUser(cctx *cli.Context) error {
	s.loadAdminCommand()

	username := cctx.String("username")
	if !common.IsValidSlug(username) {
		return fmt.Errorf("invalid username %q", username)
	}

	name := cctx.String("name")
	if name == "" {
		name = username
	}

	user := &entity.User{
		Base:     entity.Base{ID: uuid.NewString()},
		Username: username,
		Name:     name,
	}
	if err := s.userRepo.Create(s.ctx, user); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Created user %s with id %s", user.Username, user.ID)
	return nil
}

// adminContext returns a context whose requester is the admin named by the
// admin flag, or the first configured admin.
func (s *srv) adminContext(cctx *cli.Context) (context.Context, error) {
	username := cctx.String("admin")
	if username == "" {
		admins := xcontext.Configs(s.ctx).Auth.Admins
		if len(admins) == 0 {
			return nil, errors.New("no admin is configured")
		}
		username = admins[0]
	}

	user, err := s.userRepo.GetByUsername(s.ctx, username)
	if err != nil {
		return nil, fmt.Errorf("cannot get admin %s: %w", username, err)
	}

	return xcontext.WithRequestUserID(s.ctx, user.ID), nil
}

func (s *srv) createGroup(cctx *cli.Context) error {
	s.loadAdminCommand()

	ctx, err := s.adminContext(cctx)
	if err != nil {
		return err
	}

	resp, err := s.groupDomain.Create(ctx, &model.CreateGroupRequest{
		Slug:        cctx.String("slug"),
		Title:       cctx.String("title"),
		Description: cctx.String("description"),
	})
	if err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Created group %s with id %s", resp.Group.Slug, resp.Group.ID)
	return nil
}

func (s *srv) deleteGroup(cctx *cli.Context) error {
	s.loadAdminCommand()

	ctx, err := s.adminContext(cctx)
	if err != nil {
		return err
	}

	if _, err := s.groupDomain.Delete(ctx, &model.DeleteGroupRequest{Slug: cctx.String("slug")}); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Deleted group %s", cctx.String("slug"))
	return nil
}

func (s *srv) generateToken(cctx *cli.Context) error {
	s.loadAdminCommand()

	user, err := s.userRepo.GetByUsername(s.ctx, cctx.String("username"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("not found user %s", cctx.String("username"))
		}

		return err
	}

	cfg := xcontext.Configs(s.ctx).Auth
	engine := authenticator.NewTokenEngine[model.AccessToken](cfg.TokenSecret, cfg.AccessToken.Expiration)
	token, err := engine.Generate(user.ID, model.AccessToken{ID: user.ID, Username: user.Username})
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

func (s *srv) clearCache(*cli.Context) error {
	s.loadPageCache()

	if err := s.pageCache.InvalidateAll(s.ctx); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Cleared the page cache")
	return nil
}
