package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-priceform/internal/config"
	"github.com/goliatone/go-priceform/internal/server"
	"github.com/goliatone/go-priceform/internal/stub"
	"github.com/goliatone/go-priceform/pkg/form"
	pkgopenapi "github.com/goliatone/go-priceform/pkg/openapi"
	"github.com/goliatone/go-priceform/pkg/orchestrator"
	"github.com/goliatone/go-priceform/pkg/predict"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/renderers/tui"
	"github.com/goliatone/go-priceform/pkg/schema"
)

const contractFetchTimeout = 10 * time.Second

func newRootCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      config.AppName,
		Usage:     "house price prediction form",
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file to use instead of ./.priceform/config.yaml",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "prediction service base URL",
				Value: config.DefaultEndpoint,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: config.DefaultLogLevel,
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "text or json",
				Value: config.DefaultLogFormat,
			},
		},
		Commands: []*cli.Command{
			predictCommand(a),
			serveCommand(a),
			stubCommand(a),
			renderCommand(a),
			contractCommand(a),
			configCommand(a),
		},
	}
}

func predictCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "predict",
		Usage: "fill in the form in the terminal and request a prediction",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Usage: "result panel format (text or json)",
				Value: "text",
			},
			&cli.BoolFlag{
				Name:  "once",
				Usage: "exit after the first prediction",
			},
		},
		Action: a.action(func(ctx context.Context, cmd *cli.Command) error {
			client, err := predict.New(a.cfg.Endpoint, predict.WithLogger(a.logger))
			if err != nil {
				return err
			}
			registry, err := orchestrator.DefaultRegistry()
			if err != nil {
				return err
			}
			panel, err := registry.Get(cmd.String("output"))
			if err != nil {
				return err
			}

			driver := a.driver
			if driver == nil {
				driver = tui.NewSurveyDriver(a.stdout)
			}
			controller := form.New(schema.Housing(), client, form.WithLogger(a.logger))
			session, err := tui.New(controller,
				tui.WithPromptDriver(driver),
				tui.WithPanelRenderer(panel),
				tui.WithRepeat(!cmd.Bool("once")),
				tui.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			if err := session.Run(ctx); err != nil && !errors.Is(err, tui.ErrAborted) {
				return err
			}
			return nil
		}),
	}
}

func serveCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the form as an HTML page",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address",
				Value: config.DefaultServeAddr,
			},
			&cli.StringFlag{
				Name:  "title",
				Usage: "page title",
			},
		},
		Action: a.action(func(ctx context.Context, cmd *cli.Command) error {
			if cmd.IsSet("addr") {
				a.cfg.Serve.Addr = cmd.String("addr")
			}
			client, err := predict.New(a.cfg.Endpoint, predict.WithLogger(a.logger))
			if err != nil {
				return err
			}
			gin.SetMode(gin.ReleaseMode)
			srv := server.New(client,
				server.WithLogger(a.logger),
				server.WithTitle(cmd.String("title")),
				server.WithOrchestrator(orchestrator.New(orchestrator.WithLogger(a.logger))),
			)
			return a.listen(ctx, "form server", a.cfg.Serve.Addr, srv.Handler())
		}),
	}
}

func stubCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "stub",
		Usage: "run a local prediction service for development",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address",
				Value: config.DefaultStubAddr,
			},
		},
		Action: a.action(func(ctx context.Context, cmd *cli.Command) error {
			if cmd.IsSet("addr") {
				a.cfg.Stub.Addr = cmd.String("addr")
			}
			gin.SetMode(gin.ReleaseMode)
			router := stub.NewRouter(stub.NewHandler(stub.DefaultModel(), a.logger))
			return a.listen(ctx, "prediction stub", a.cfg.Stub.Addr, router)
		}),
	}
}

func renderCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "render the empty form",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Usage: "renderer name (vanilla, text or json)",
				Value: "vanilla",
			},
			&cli.StringFlag{
				Name:  "action",
				Usage: "form action URL for HTML output",
				Value: "/",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "output file (stdout if empty)",
			},
		},
		Action: a.action(func(ctx context.Context, cmd *cli.Command) error {
			gen := orchestrator.New(orchestrator.WithLogger(a.logger))
			controller := form.New(gen.Schema(), nil, form.WithLogger(a.logger))
			out, _, err := gen.Render(ctx, controller, cmd.String("format"), render.RenderOptions{Action: cmd.String("action")})
			if err != nil {
				return err
			}
			if path := cmd.String("output"); path != "" {
				if err := os.WriteFile(path, out, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				a.logger.Info("form written", "path", path)
				return nil
			}
			_, err = a.stdout.Write(out)
			return err
		}),
	}
}

func contractCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "contract",
		Usage: "check an OpenAPI description of the prediction service against the form",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "source",
				Usage: "OpenAPI document path or URL (embedded contract if empty)",
			},
			&cli.StringFlag{
				Name:  "operation",
				Usage: "operation id of the predict call",
				Value: pkgopenapi.PredictOperationID,
			},
		},
		Action: a.action(func(ctx context.Context, cmd *cli.Command) error {
			req := orchestrator.ContractRequest{OperationID: cmd.String("operation")}
			location := pkgopenapi.PredictContract + " (embedded)"
			if raw := cmd.String("source"); raw != "" {
				src, err := pkgopenapi.SourceFromString(raw)
				if err != nil {
					return err
				}
				req.Source = src
				location = src.Location()
			}

			gen := orchestrator.New(
				orchestrator.WithLogger(a.logger),
				orchestrator.WithLoaderOptions(pkgopenapi.WithHTTPFallback(contractFetchTimeout)),
			)
			report, err := gen.CheckContract(ctx, req)
			if err != nil {
				return err
			}
			if report.OK() {
				fmt.Fprintf(a.stdout, "%s: %s matches the form\n", location, report.Operation)
				return nil
			}
			for _, issue := range report.Issues {
				fmt.Fprintf(a.stdout, "%s: %s\n", location, issue)
			}
			return report.Err()
		}),
	}
}

func configCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "manage configuration",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a config file with the default settings",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "global",
						Usage: "write ~/.config/priceform/config.yaml instead of the local file",
					},
					&cli.BoolFlag{
						Name:  "replace",
						Usage: "overwrite an existing file",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if path := cmd.String("config"); path != "" {
						a.manager.SetLocalPath(path)
					}
					path := a.manager.LocalPath()
					if cmd.Bool("global") {
						path = a.manager.GlobalPath()
					}
					if _, err := os.Stat(path); err == nil && !cmd.Bool("replace") {
						return fmt.Errorf("%s already exists (use --replace)", path)
					}
					if err := a.manager.Write(path, config.Default()); err != nil {
						return err
					}
					fmt.Fprintf(a.stdout, "wrote %s\n", path)
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "print the merged configuration",
				Action: a.action(func(_ context.Context, _ *cli.Command) error {
					data, err := yaml.Marshal(a.cfg)
					if err != nil {
						return err
					}
					_, err = a.stdout.Write(data)
					return err
				}),
			},
		},
	}
}
