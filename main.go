package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/technoplato/tracelog/logconf"
	"github.com/technoplato/tracelog/logger"
)

// Demo exercising the call-site attributed logger.
// Usage: ./tracelog [--config logging.yaml] [--level warn] [--colorize]
func main() {
	app := &cli.Command{
		Name:  "tracelog",
		Usage: "demo for the severity-gated, call-site attributed logger",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "configuration file path (json, yaml or toml)",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "minimum level: debug, info, warn, error",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "disable all log output",
			},
			&cli.BoolFlag{
				Name:  "colorize",
				Usage: "colorize level tags",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run applies configuration in increasing precedence (environment, file,
// flags) and then exercises every logging surface.
func run(ctx context.Context, cmd *cli.Command) error {
	envOpts, err := logconf.FromEnv()
	if err != nil {
		return err
	}
	logger.Configure(envOpts)

	if path := cmd.String("config"); path != "" {
		fileOpts, err := logconf.Load(path)
		if err != nil {
			return err
		}
		logger.Configure(fileOpts)
	}

	var flagOpts logger.Options
	if cmd.IsSet("level") {
		lvl, err := logger.ParseLevel(cmd.String("level"))
		if err != nil {
			return err
		}
		flagOpts.Level = &lvl
	}
	if cmd.IsSet("quiet") {
		enabled := !cmd.Bool("quiet")
		flagOpts.Enabled = &enabled
	}
	if cmd.IsSet("colorize") {
		colorize := cmd.Bool("colorize")
		flagOpts.Colorize = &colorize
	}
	logger.Configure(flagOpts)

	logger.Debug("debug detail, hidden at the default level")
	logger.Info("hello from the demo")
	logger.Warnf("%d of %d widgets left", 3, 10)
	logger.ErrorKV("request failed", "status", 502, "retries", 3)

	// Depth-indexed lookup: the package function adds one layer over the
	// method, so depth 2 names this call site.
	logger.Info("explicit origin lookup:", logger.Origin(2))
	return nil
}
