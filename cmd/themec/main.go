package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"themec-go/packages/theming/src/config"
	themecss "themec-go/packages/theming/src/css"
	"themec-go/packages/theming/src/customprops"
)

type appEnv struct {
	cfg *config.Config
	log *zap.Logger
}

var env appEnv

func initializeApp(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if env.cfg, err = config.LoadConfiguration(cmd.String("config")); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		env.cfg.Logging.Level = "debug"
	}
	if env.log, err = env.cfg.Logging.Prepare(); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.log.Debug("Program started", zap.Strings("args", os.Args))
	return ctx, nil
}

func destroyApp(ctx context.Context, cmd *cli.Command) error {
	if env.log != nil {
		env.log.Debug("Program ended")
		_ = env.log.Sync()
	}
	return nil
}

// normalizeFiles rewrites invalid compound :host selectors in each SOURCE,
// writing results next to the inputs or to DESTINATION when one is given for
// a single source.
func normalizeFiles(ctx context.Context, cmd *cli.Command) error {
	sources := cmd.Args().Slice()
	if len(sources) == 0 {
		return fmt.Errorf("nothing to do, no input files specified")
	}
	destination := cmd.String("output")
	if destination != "" && len(sources) > 1 {
		return fmt.Errorf("--output can only be used with a single input file")
	}

	normalizer := themecss.NewNormalizer(env.log)

	var errs error
	for _, source := range sources {
		if err := normalizeFile(normalizer, source, destination); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", source, err))
		}
	}
	return errs
}

func normalizeFile(normalizer *themecss.Normalizer, source, destination string) error {
	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	result, err := normalizer.NormalizeStylesheet(string(data))
	if err != nil {
		return err
	}
	if destination == "" {
		_, err = os.Stdout.WriteString(result)
		return err
	}
	if err := os.WriteFile(destination, []byte(result), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	env.log.Info("Normalized stylesheet", zap.String("source", source), zap.String("destination", destination))
	return nil
}

// emitThemeBlock writes a :root block defining --theme-* custom properties
// for every role in the configured palette.
func emitThemeBlock(ctx context.Context, cmd *cli.Command) error {
	emitter := customprops.NewEmitter(env.log)
	palette := env.cfg.Palette
	for _, role := range palette.Roles() {
		value, _ := palette.Lookup(string(role))
		emitter.Record(customprops.New("theme-"+string(role), value))
	}

	out := os.Stdout
	if destination := cmd.String("output"); destination != "" {
		f, err := os.Create(destination)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}
	return emitter.WriteRoot(out)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "themec",
		Usage:           "theming layer tools: :host selector normalization and theme custom properties",
		HideHelpCommand: true,
		Before:          initializeApp,
		After:           destroyApp,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enable debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:      "normalize",
				Usage:     "Rewrites invalid compound :host selectors in CSS file(s)",
				Action:    normalizeFiles,
				ArgsUsage: "SOURCE...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write result to `FILE` instead of STDOUT"},
				},
			},
			{
				Name:   "themeblock",
				Usage:  "Emits a :root block with --theme-* custom properties from the palette",
				Action: emitThemeBlock,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write result to `FILE` instead of STDOUT"},
				},
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}
