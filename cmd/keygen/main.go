// Package main is the entry point for the keygen layout tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/wkf/keygen/internal/app"
	"github.com/wkf/keygen/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  = flag.String("config", "", "path to config file")
		logLevel    = flag.String("log-level", "", "log level (debug, info, warn, error)")
		showVersion = flag.Bool("version", false, "show version information")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("keygen %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	if flag.NArg() < 1 {
		usage()
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	lcfg := app.DefaultLoggerConfig()
	lcfg.Level = app.ParseLogLevel(cfg.Log.Level)
	logger := app.NewLogger(lcfg)

	// The flag overrides the configured level.
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		logger.SetLevel(app.ParseLogLevel(*logLevel))
	}

	a, err := app.New(app.Options{Config: cfg, Logger: logger})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := dispatch(a, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func dispatch(a *app.App, cmd string, args []string) error {
	switch cmd {
	case "list":
		return a.ListLayouts()

	case "show":
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return a.ShowLayout(name)

	case "shuffle":
		fs := flag.NewFlagSet("shuffle", flag.ExitOnError)
		saveDir := fs.String("save", "", "directory to save the variant into")
		if err := fs.Parse(args); err != nil {
			return err
		}
		name := ""
		if fs.NArg() > 0 {
			name = fs.Arg(0)
		}
		return a.ShuffleLayout(name, *saveDir)

	case "keys":
		if len(args) < 2 {
			return fmt.Errorf("usage: keygen keys <layout> <text>")
		}
		return a.Keys(args[0], strings.Join(args[1:], " "))

	case "render":
		fs := flag.NewFlagSet("render", flag.ExitOnError)
		watch := fs.Bool("watch", false, "re-render when the file changes")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if fs.NArg() < 1 {
			return fmt.Errorf("usage: keygen render [-watch] <file>")
		}
		path := fs.Arg(0)

		if !*watch {
			return a.Render(path)
		}

		ctx, cancel := signalContext()
		defer cancel()
		return a.Watch(ctx, path)

	case "help":
		usage()
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// loadConfig reads the config file, falling back to the per-user
// default location and then to built-in defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	return config.Load(path)
}

// signalContext returns a context canceled by SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		cancel()
	}()

	return ctx, cancel
}

func usage() {
	fmt.Fprintf(os.Stderr, "keygen - keyboard layout workbench\n\n")
	fmt.Fprintf(os.Stderr, "Usage: keygen [options] <command> [args]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  list                         List available layouts\n")
	fmt.Fprintf(os.Stderr, "  show [layout]                Print a layout diagram\n")
	fmt.Fprintf(os.Stderr, "  shuffle [-save dir] [layout] Print a randomly mutated copy of a layout\n")
	fmt.Fprintf(os.Stderr, "  keys <layout> <text>         Classify each character of text on a layout\n")
	fmt.Fprintf(os.Stderr, "  render [-watch] <file>       Print a layout file, re-rendering on change\n")
	fmt.Fprintf(os.Stderr, "  help                         Show this help message\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  keygen show qwerty\n")
	fmt.Fprintf(os.Stderr, "  keygen shuffle -save ./layouts colemak\n")
	fmt.Fprintf(os.Stderr, "  keygen keys dvorak \"the quick brown fox\"\n")
	fmt.Fprintf(os.Stderr, "  keygen render -watch ./layouts/variant.toml\n")
}
