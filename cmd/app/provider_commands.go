package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/gitops-secrets/cmd/app/commands"
	"github.com/allisson/gitops-secrets/internal/app"
	"github.com/allisson/gitops-secrets/internal/config"
)

func getProviderCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "fetch",
			Usage: "Download secrets from the provider (local agent first, then the remote API)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "json",
					Usage:   "Output format: json, env, yaml, docker or env-no-quotes",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(ctx, container)

				retrieval, err := container.RetrievalUseCase()
				if err != nil {
					return err
				}

				return commands.RunFetch(
					ctx,
					retrieval,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("format"),
				)
			},
		},
	}
}

// newContainer loads and validates the configuration and builds the container.
func newContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.NewContainer(cfg), nil
}
