package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/gitops-secrets/cmd/app/commands"
	"github.com/allisson/gitops-secrets/internal/app"
	"github.com/allisson/gitops-secrets/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-master-key",
			Usage: "Generate a new random master key",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(ctx, container)

				return commands.RunCreateMasterKey(container.Logger(), commands.DefaultIO().Writer)
			},
		},
	}
}
