package main

import (
	"github.com/urfave/cli/v2"
)

// loadApp creates an app with sane defaults.
func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Yatube"
	app.Usage = "Blog platform backend"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path of a toml file overriding the environment configuration",
			EnvVars: []string{"CONFIG_FILE"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		if err := s.loadConfig(cctx.String("config")); err != nil {
			return err
		}

		s.loadLogger()
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Used for start service api, it main service included all apis.`,
		},
		{
			Action:   s.startMigrate,
			Name:     "migrate",
			Usage:    "Migrate the database schema",
			Category: "Admin",
		},
		{
			Name:     "user",
			Usage:    "Manage users",
			Category: "Admin",
			Subcommands: []*cli.Command{
				{
					Action: s.createUser,
					Name:   "create",
					Usage:  "Create a user",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "username", Required: true},
						&cli.StringFlag{Name: "name"},
					},
				},
			},
		},
		{
			Name:     "group",
			Usage:    "Manage groups",
			Category: "Admin",
			Subcommands: []*cli.Command{
				{
					Action: s.createGroup,
					Name:   "create",
					Usage:  "Create a group",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "admin", Usage: "Username of the admin running the command"},
						&cli.StringFlag{Name: "slug", Required: true},
						&cli.StringFlag{Name: "title", Required: true},
						&cli.StringFlag{Name: "description", Required: true},
					},
				},
				{
					Action: s.deleteGroup,
					Name:   "delete",
					Usage:  "Delete a group, its posts are kept without group",
					Flags: []cli.Flag{
						&cli.StringFlag{Name: "admin", Usage: "Username of the admin running the command"},
						&cli.StringFlag{Name: "slug", Required: true},
					},
				},
			},
		},
		{
			Action:   s.generateToken,
			Name:     "token",
			Usage:    "Print an access token of a user",
			Category: "Admin",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "username", Required: true},
			},
		},
		{
			Name:     "cache",
			Usage:    "Manage the page cache",
			Category: "Admin",
			Subcommands: []*cli.Command{
				{
					Action: s.clearCache,
					Name:   "clear",
					Usage:  "Remove every cached page",
				},
			},
		},
	}

	s.app = app
}
