package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"crm/config"
	"crm/internal/delivery"
	"crm/internal/delivery/console"
	logs "crm/internal/infra/log"
	"crm/internal/infra/persistence/memory"
	"crm/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	app := &cli.App{
		Name:  "crm",
		Usage: "in-memory customer relationship management demo",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Usage:   "output format: text or json (overrides output.format)",
				EnvVars: []string{"CRM_FORMAT"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "run the scripted CRM session and print every step",
				Action: func(c *cli.Context) error {
					return run(c, console.NewDemo)
				},
			},
			{
				Name:  "report",
				Usage: "run the scripted CRM session silently and print the system report",
				Action: func(c *cli.Context) error {
					return run(c, console.NewReport)
				},
			},
		},
		DefaultCommand: "demo",
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("crm failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// run builds the object graph, serves the chosen delivery once and shuts down.
func run(c *cli.Context, newDelivery func(console.DemoParams) *console.Demo) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var target delivery.Delivery
	app := fx.New(
		injectInfra(c.String("format")),
		injectRepo(),
		injectUsecase(),
		injectDelivery(newDelivery),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Populate(&target),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("Failed to stop application", slog.Any("error", err))
		}
	}()

	return target.Serve(ctx)
}

func injectInfra(format string) fx.Option {
	return fx.Provide(
		func() (*config.Config, error) {
			cfg, err := config.New()
			if err != nil {
				return nil, err
			}
			if err := cfg.WithOutputFormat(format); err != nil {
				return nil, err
			}

			return cfg, nil
		},
		logs.New,
		memory.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewCustomerRepository,
			memory.NewSalesRepRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistryService,
			impl.NewSalesRepService,
			impl.NewCustomerService,
		),
	)
}

func injectDelivery(newDelivery func(console.DemoParams) *console.Demo) fx.Option {
	return fx.Options(
		fx.Provide(
			console.New,
			fx.Annotate(
				newDelivery,
				fx.As(new(delivery.Delivery)),
			),
		),
	)
}
