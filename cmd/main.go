package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/dosato-lang/dosato/dosato"
	"github.com/dosato-lang/dosato/dosato/config"
	"github.com/dosato-lang/dosato/dosato/diagnostic"
	"github.com/dosato-lang/dosato/dosato/errors"
	"github.com/dosato-lang/dosato/dosato/lexer"
)

const programName = "dosato"
const version = "latest"

func fileValidator(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("Expected exactly one argument <file>")
	}
	return nil
}

// settings merges dosato.yml with the command line flags, flags win.
type settings struct {
	config config.Config
	color  bool
	logger zerolog.Logger
}

func loadSettings(ctx *cli.Context) (settings, error) {
	conf, err := config.LoadFile(ctx.String("config"))
	if err != nil {
		return settings{}, err
	}

	if ctx.IsSet("call-stack-limit") {
		conf.CallStackLimit = ctx.Int("call-stack-limit")
	}
	if ctx.IsSet("color") {
		conf.Color = config.ColorMode(ctx.String("color"))
		if !conf.Color.IsValid() {
			return settings{}, fmt.Errorf("Illegal color mode `%s`: Valid values are `auto`, `always` and `never`", conf.Color)
		}
	}
	if ctx.Bool("trace") {
		conf.Trace = true
	}
	if err := conf.Validate(); err != nil {
		return settings{}, err
	}

	logger := zerolog.Nop()
	if conf.Trace {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
			Level(zerolog.TraceLevel).
			With().
			Timestamp().
			Logger()
	}

	return settings{
		config: conf,
		color:  conf.Color.Enabled(term.IsTerminal(int(os.Stderr.Fd()))),
		logger: logger,
	}, nil
}

func (self settings) options() (dosato.Options, error) {
	constants, err := self.config.ConstantValues()
	if err != nil {
		return dosato.Options{}, err
	}
	return dosato.Options{
		CallStackLimit: self.config.CallStackLimit,
		Constants:      constants,
		Logger:         self.logger,
	}, nil
}

func printError(err *errors.Error, source string, color bool) {
	fmt.Fprintln(os.Stderr, diagnostic.FromError(err).Display(source, color))
}

func readFile(ctx *cli.Context) (string, string, error) {
	filename := ctx.Args().Get(0)
	file, err := os.ReadFile(filename)
	if err != nil {
		return "", "", err
	}
	return filename, string(file), nil
}

func runFile(ctx *cli.Context) error {
	settings, err := loadSettings(ctx)
	if err != nil {
		return err
	}
	options, err := settings.options()
	if err != nil {
		return err
	}

	filename, source, err := readFile(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	exitCode, runErr := dosato.Run(dosato.NewStdoutExecutor(), filename, source, options)
	settings.logger.Debug().Dur("elapsed", time.Since(start)).Int("exit_code", exitCode).Msg("program finished")

	if runErr != nil {
		printError(runErr, source, settings.color)
	}
	if exitCode != 0 {
		return cli.Exit("", exitCode)
	}
	return nil
}

func main() {
	globalFlags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path of the configuration file",
			Value:   config.FileName,
			Aliases: []string{"c"},
		},
		&cli.IntFlag{
			Name:  "call-stack-limit",
			Usage: "Maximum number of nested scopes",
		},
		&cli.StringFlag{
			Name:  "color",
			Usage: "Colored diagnostics: auto, always or never",
		},
		&cli.BoolFlag{
			Name:    "trace",
			Usage:   "If set, every interpreter step is logged to stderr",
			Aliases: []string{"t"},
		},
	}

	// nolint:exhaustruct
	app := &cli.App{
		Name:     programName,
		Usage:    "Run and inspect Dosato programs",
		Version:  version,
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "The Dosato Authors",
				Email: "",
			},
		},
		Flags: globalFlags,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Aliases:   []string{"r"},
				Usage:     "Run a Dosato file",
				ArgsUsage: "[file]",
				Args:      true,
				Flags:     globalFlags,
				Before:    fileValidator,
				Action:    runFile,
			},
			{
				Name:      "tokens",
				Usage:     "Print the tokens of a Dosato file",
				ArgsUsage: "[file]",
				Args:      true,
				Before:    fileValidator,
				Action: func(ctx *cli.Context) error {
					filename, source, err := readFile(ctx)
					if err != nil {
						return err
					}

					lex := lexer.NewLexer(source, filename)
					tokens, lexErr := lex.Tokenize()
					if lexErr != nil {
						printError(lexErr, source, term.IsTerminal(int(os.Stderr.Fd())))
						return cli.Exit("", int(lexErr.Code))
					}

					for idx, token := range tokens {
						fmt.Printf("%04d | %s\n", idx, token)
					}
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "Dump the syntax tree of a Dosato file",
				ArgsUsage: "[file]",
				Args:      true,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "verbose",
						Usage:   "If set, the full Go structure of the tree is dumped",
						Aliases: []string{"v"},
					},
				},
				Before: fileValidator,
				Action: func(ctx *cli.Context) error {
					filename, source, err := readFile(ctx)
					if err != nil {
						return err
					}

					program, parseErr := dosato.Parse(filename, source)
					if parseErr != nil {
						printError(parseErr, source, term.IsTerminal(int(os.Stderr.Fd())))
						return cli.Exit("", int(parseErr.Code))
					}

					if ctx.Bool("verbose") {
						spew.Dump(program.Root)
						return nil
					}
					for _, statement := range program.Root.Body {
						fmt.Println(statement)
					}
					return nil
				},
			},
			{
				Name:   "repl",
				Usage:  "Start an interactive session",
				Flags:  globalFlags,
				Action: repl,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
