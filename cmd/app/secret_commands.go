package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/gitops-secrets/cmd/app/commands"
	secretfileDomain "github.com/allisson/gitops-secrets/internal/secretfile/domain"
	secretfileUseCase "github.com/allisson/gitops-secrets/internal/secretfile/usecase"
)

func getSecretCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "encrypt",
			Usage: "Encrypt secrets into an envelope",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "input",
					Aliases: []string{"i"},
					Value:   "-",
					Usage:   "File to encrypt, '-' reads standard input",
				},
				&cli.StringFlag{
					Name:  "input-format",
					Value: "json",
					Usage: "Input format: json, env, env-no-quotes, docker or raw",
				},
				&cli.BoolFlag{
					Name:  "from-provider",
					Value: false,
					Usage: "Fetch the secrets from the provider instead of reading input",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Key in the secrets bucket to write the envelope to (omit to print it)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(ctx, container)

				codec, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				var files secretfileUseCase.SecretFileUseCase
				if cmd.String("output") != "" {
					if files, err = container.SecretFileUseCase(ctx); err != nil {
						return err
					}
				}

				retrieval, err := container.RetrievalUseCase()
				if err != nil {
					return err
				}

				return commands.RunEncrypt(
					ctx,
					codec,
					files,
					retrieval,
					container.Logger(),
					commands.DefaultIO(),
					commands.EncryptOptions{
						InputPath:    cmd.String("input"),
						InputFormat:  cmd.String("input-format"),
						FromProvider: cmd.Bool("from-provider"),
						OutputKey:    cmd.String("output"),
					},
				)
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt an envelope and print the secrets",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "input",
					Aliases: []string{"i"},
					Usage:   "Key in the secrets bucket to read (omit to read the envelope from standard input)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "json",
					Usage:   "Output format: json, env or raw",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(ctx, container)

				codec, err := container.EnvelopeUseCase()
				if err != nil {
					return err
				}

				var files secretfileUseCase.SecretFileUseCase
				if cmd.String("input") != "" {
					if files, err = container.SecretFileUseCase(ctx); err != nil {
						return err
					}
				}

				return commands.RunDecrypt(
					ctx,
					codec,
					files,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("input"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:      "run",
			Usage:     "Run a command with the decrypted secrets in its environment",
			ArgsUsage: "-- command [args...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "input",
					Aliases: []string{"i"},
					Value:   secretfileDomain.DefaultKey,
					Usage:   "Key in the secrets bucket to read",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				defer commands.CloseContainer(ctx, container)

				files, err := container.SecretFileUseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunWithSecrets(
					ctx,
					files,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("input"),
					cmd.Args().Slice(),
				)
			},
		},
	}
}
