// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/domgiordano/xomper-back-end/cmd/app/commands"
	"github.com/domgiordano/xomper-back-end/internal/app"
	"github.com/domgiordano/xomper-back-end/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "xomper",
		Usage:   "Fantasy football companion backend",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the API and metrics servers",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "update-players",
				Usage: "Refresh every player record from the Sleeper API",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					useCase, err := container.PlayerUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize player use case: %w", err)
					}
					return commands.RunUpdatePlayers(ctx, useCase, logger, commands.DefaultIO())
				},
			},
			{
				Name:  "create-user",
				Usage: "Store a login record with a hashed password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Sleeper user id",
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Required: true,
						Usage:    "Plain password to hash and store",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					useCase, err := container.UserUseCase()
					if err != nil {
						return fmt.Errorf("failed to initialize user use case: %w", err)
					}
					st, err := container.Store()
					if err != nil {
						return fmt.Errorf("failed to initialize store: %w", err)
					}
					return commands.RunCreateUser(
						ctx,
						useCase,
						st,
						cfg.UserTable,
						cmd.String("id"),
						cmd.String("password"),
						logger,
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "delete-user",
				Usage: "Remove a stored login record",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Aliases:  []string{"i"},
						Required: true,
						Usage:    "Sleeper user id",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					st, err := container.Store()
					if err != nil {
						return fmt.Errorf("failed to initialize store: %w", err)
					}
					return commands.RunDeleteUser(ctx, st, cfg.UserTable, cmd.String("id"), logger, commands.DefaultIO())
				},
			},
			{
				Name:  "list-users",
				Usage: "Print the user id of every stored login record",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					st, err := container.Store()
					if err != nil {
						return fmt.Errorf("failed to initialize store: %w", err)
					}
					return commands.RunListUsers(ctx, st, cfg.UserTable, logger, commands.DefaultIO())
				},
			},
			{
				Name:  "authorize",
				Usage: "Evaluate a credential against a method ARN and print the policy",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Required: true,
						Usage:    "Bearer credential to evaluate",
					},
					&cli.StringFlag{
						Name:     "arn",
						Aliases:  []string{"a"},
						Required: true,
						Usage:    "Method ARN the caller wants to invoke",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					container := app.NewContainer(config.Load())
					logger := container.Logger()
					defer commands.CloseContainer(container, logger)

					gate, err := container.Authorizer()
					if err != nil {
						return fmt.Errorf("failed to initialize authorizer: %w", err)
					}
					return commands.RunAuthorize(ctx, gate, cmd.String("token"), cmd.String("arn"), commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
