// Package cli is the wish command set. Each subcommand is a go-flags
// Commander that reports through the App it was registered with, so tests
// can drive the whole surface with in-memory writers.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/spella/wish/params"
	"github.com/spella/wish/pkg/util"
)

// Options are accepted before any subcommand.
type Options struct {
	ConfigPath string `short:"c" long:"config" description:"Path to the JSON config file (default: $WISH_CONFIG or spella_config.json)"`
	EnvFile    string `long:"env-file" description:"Optional .env file with SPELLA_* overrides"`
	Verbose    bool   `short:"v" long:"verbose" description:"Log debug events to stderr"`
	LogFile    string `long:"log-file" description:"Also append JSON logs to this file"`
}

type App struct {
	Opts  Options
	Out   io.Writer
	Err   io.Writer
	Clock util.Clock

	logger *zap.SugaredLogger
}

func New(out, errOut io.Writer) *App {
	return &App{
		Out:    out,
		Err:    errOut,
		Clock:  util.RealClock{},
		logger: zap.NewNop().Sugar(),
	}
}

func (a *App) parser() (*flags.Parser, error) {
	parser := flags.NewParser(&a.Opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "wish"
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		if err := a.setupLogger(); err != nil {
			return err
		}
		defer a.logger.Sync()
		return cmd.Execute(args)
	}

	commands := []struct {
		name, short, long string
		data              interface{}
	}{
		{"fee", "compute the fee on one price",
			"The fee command splits PRICE into the platform fee and what the seller receives.",
			&FeeCmd{app: a}},
		{"batch-fee", "compute fees over a comma-separated price list",
			"The batch-fee command splits every price in PRICES (e.g. 100,2500,30000) and prints totals.",
			&BatchFeeCmd{app: a}},
		{"hash", "fingerprint strings with keccak256",
			"The hash command prints the 32-byte fingerprint the contract stores for each TEXT.",
			&HashCmd{app: a}},
		{"list", "simulate listing spells",
			"The list command lists one spell per TITLE in a fresh in-memory store and prints the records.",
			&ListCmd{app: a}},
		{"buy", "simulate buying a spell",
			"The buy command lists a spell, immediately delists it as sold and reports the fee split.",
			&BuyCmd{app: a}},
		{"constants", "print the contract constants",
			"The constants command dumps the values compiled into the Spella contract.",
			&ConstantsCmd{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return nil, err
		}
	}

	configCmd, err := parser.AddCommand("config", "show or change the config file",
		"The config command reads or updates the JSON config file.", &struct{}{})
	if err != nil {
		return nil, err
	}
	if _, err := configCmd.AddCommand("show", "print the effective config",
		"Prints the config file merged with SPELLA_* environment overrides.", &ConfigShowCmd{app: a}); err != nil {
		return nil, err
	}
	if _, err := configCmd.AddCommand("set", "update config fields",
		"Updates the given fields in the config file and saves it.", &ConfigSetCmd{app: a}); err != nil {
		return nil, err
	}

	return parser, nil
}

// Run parses args, executes the selected command and returns the process
// exit code.
func (a *App) Run(args []string) int {
	parser, err := a.parser()
	if err != nil {
		a.fail(err)
		return 1
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(a.Out, flagsErr.Message)
			return 0
		}
		a.fail(err)
		return 1
	}
	return 0
}

func (a *App) fail(err error) {
	a.logger.Debugw("command_failed", "err", err)
	color.New(color.FgRed, color.Bold).Fprint(a.Err, "error: ")
	fmt.Fprintln(a.Err, err)
}

func (a *App) setupLogger() error {
	var (
		logger *zap.Logger
		err    error
	)
	if a.Opts.LogFile != "" {
		logger, err = util.NewLoggerWithFile(a.Opts.LogFile, a.Opts.Verbose)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
	} else {
		logger = util.NewLogger(a.Opts.Verbose)
	}
	a.logger = logger.Sugar()
	return nil
}

func (a *App) configPath() string {
	return params.ConfigPath(a.Opts.ConfigPath)
}

// config returns the effective config: file, then .env and SPELLA_* env.
func (a *App) config() params.Config {
	path := a.configPath()
	cfg := params.ApplyEnv(params.Load(path), a.Opts.EnvFile)
	a.logger.Debugw("config_loaded", "path", path, "chain_id", cfg.ChainID, "fee_bps", cfg.FeeBps)
	return cfg
}

// feeBps resolves the fee for a command: an explicit --bps wins over the
// configured value.
func (a *App) feeBps(flag *int64) int64 {
	if flag != nil {
		return *flag
	}
	return a.config().FeeBps
}

var (
	headerColor = color.New(color.Bold)
	labelColor  = color.New(color.FgCyan)
	okColor     = color.New(color.FgGreen)
)

func (a *App) header(format string, args ...interface{}) {
	headerColor.Fprintf(a.Out, format+"\n", args...)
}

func (a *App) field(name string, value interface{}) {
	labelColor.Fprintf(a.Out, "  %-18s", name+":")
	fmt.Fprintf(a.Out, " %v\n", value)
}

func (a *App) ok(format string, args ...interface{}) {
	okColor.Fprintf(a.Out, format+"\n", args...)
}
