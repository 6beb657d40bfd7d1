// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-bluebook/internal/config"
	"github.com/MKhiriev/go-bluebook/internal/logger"
	"github.com/MKhiriev/go-bluebook/internal/service"
	"github.com/MKhiriev/go-bluebook/internal/workers"
)

const usage = `usage: bluebook [flags] <command> [args]

commands:
  derive <label>          print the Value token of label
  analyze <value>         inspect a Value header
  recover <blob|->        run the cipher trial engine on blob ("-" reads stdin)
  hypotheses              list the engine hypotheses in trial order
  list                    list the available exams
  fetch <id> [label]      fetch and decrypt one exam module
  fetch-all               fetch and decrypt every exam module
`

type command struct {
	minArgs int
	run     func(ctx context.Context, args []string) (any, error)
}

type App struct {
	services *service.ClientServices
	fetcher  *workers.ExamFetcher
	auth     config.Auth

	stdin  io.Reader
	stdout io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, cfg *config.ClientConfig, stdin io.Reader, stdout io.Writer, logger *logger.Logger) *App {
	a := &App{
		services: services,
		fetcher:  workers.NewExamFetcher(services.Client, cfg.Workers, logger),
		auth:     cfg.Auth,
		stdin:    stdin,
		stdout:   stdout,
		logger:   logger,
	}

	a.commands = map[string]command{
		"derive":     {minArgs: 0, run: a.derive},
		"analyze":    {minArgs: 1, run: a.analyze},
		"recover":    {minArgs: 1, run: a.recoverBlob},
		"hypotheses": {minArgs: 0, run: a.hypotheses},
		"list":       {minArgs: 0, run: a.authenticated(a.list)},
		"fetch":      {minArgs: 1, run: a.authenticated(a.fetch)},
		"fetch-all":  {minArgs: 0, run: a.authenticated(a.fetchAll)},
	}
	return a
}

// Usage returns the command summary.
func Usage() string {
	return usage
}

// Run executes the command named by args[0] and prints its result.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	if len(args)-1 < cmd.minArgs {
		return fmt.Errorf("%w: %s needs %d", ErrMissingArgument, args[0], cmd.minArgs)
	}

	a.logger.Debug().Strs("args", args).Msg("running command")

	result, err := cmd.run(ctx, args[1:])
	if err != nil {
		return err
	}
	return a.print(result)
}

func (a *App) print(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(a.stdout, string(out))
	return err
}

// authenticated logs in with the configured account before running next.
func (a *App) authenticated(next func(context.Context, []string) (any, error)) func(context.Context, []string) (any, error) {
	return func(ctx context.Context, args []string) (any, error) {
		if !a.services.Client.IsAuthenticated() {
			if a.auth.Email == "" || a.auth.Password == "" {
				return nil, ErrMissingCredentials
			}
			if _, err := a.services.Client.Login(ctx, a.auth.Email, a.auth.Password); err != nil {
				return nil, fmt.Errorf("login: %w", err)
			}
		}
		defer a.services.Client.Logout()

		return next(ctx, args)
	}
}

// derive with no argument derives the empty label.
func (a *App) derive(_ context.Context, args []string) (any, error) {
	return a.services.ValueService.Derive(strings.Join(args, " "))
}

func (a *App) analyze(_ context.Context, args []string) (any, error) {
	return a.services.ValueService.Analyze(args[0]), nil
}

func (a *App) recoverBlob(_ context.Context, args []string) (any, error) {
	blob := args[0]
	if blob == "-" {
		raw, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		blob = strings.TrimRight(string(raw), "\r\n")
	}

	plain, ok := a.services.DecryptService.Decrypt(blob)
	if !ok {
		return nil, ErrNotRecovered
	}
	return plain, nil
}

func (a *App) hypotheses(context.Context, []string) (any, error) {
	return a.services.DecryptService.Hypotheses(), nil
}

func (a *App) list(ctx context.Context, _ []string) (any, error) {
	return a.services.Client.ListResources(ctx)
}

func (a *App) fetch(ctx context.Context, args []string) (any, error) {
	var label string
	if len(args) > 1 {
		label = strings.Join(args[1:], " ")
	}
	return a.services.Client.FetchResource(ctx, args[0], label)
}

func (a *App) fetchAll(ctx context.Context, _ []string) (any, error) {
	if err := workers.NewWorkers(a.fetcher).Run(ctx); err != nil {
		return nil, err
	}
	return a.fetcher.Results(), nil
}
