package main

import (
	"github.com/urfave/cli/v2"
	"github.com/yatube-lab/backend/pkg/xcontext"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()

	xcontext.Logger(s.ctx).Infof("Migrate database successfully")
	return nil
}
