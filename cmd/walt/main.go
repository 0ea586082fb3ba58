package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/walt/internal/app"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const usage = `walt - pick a wallpaper from the terminal

Usage:
  walt [flags]

Flags:
  -h, --help       show this help and exit
  -v, --version    print the version and exit
  -nt, --no-tui    set a random wallpaper and exit
  --config PATH    override config path (default ~/.config/walt/config.toml)
`

type action int

const (
	actionRun action = iota
	actionHelp
	actionVersion
)

type cli struct {
	action action
	opts   app.Options
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	c, err := parseArgs(args)
	if err != nil {
		// Bad invocations are not fatal; the hint is enough.
		fmt.Fprintf(stderr, "walt: %v\n", err)
		fmt.Fprintln(stderr, "Run 'walt --help' for usage.")
		return 0
	}

	switch c.action {
	case actionHelp:
		fmt.Fprint(stdout, usage)
		return 0
	case actionVersion:
		fmt.Fprintf(stdout, "walt %s\n", version)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	c.opts.Stdout = stdout
	if err := app.Run(ctx, c.opts); err != nil {
		fmt.Fprintf(stderr, "walt: %v\n", err)
		return 1
	}
	return 0
}

func parseArgs(args []string) (cli, error) {
	fs := flag.NewFlagSet("walt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var help, showVersion, noTUI bool
	fs.BoolVar(&help, "h", false, "show help")
	fs.BoolVar(&help, "help", false, "show help")
	fs.BoolVar(&showVersion, "v", false, "print version")
	fs.BoolVar(&showVersion, "version", false, "print version")
	fs.BoolVar(&noTUI, "nt", false, "set a random wallpaper and exit")
	fs.BoolVar(&noTUI, "no-tui", false, "set a random wallpaper and exit")
	configPath := fs.String("config", "", "override config path")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cli{action: actionHelp}, nil
		}
		return cli{}, err
	}
	if fs.NArg() > 0 {
		return cli{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	switch {
	case help:
		return cli{action: actionHelp}, nil
	case showVersion:
		return cli{action: actionVersion}, nil
	}
	return cli{opts: app.Options{ConfigPath: *configPath, NoTUI: noTUI}}, nil
}
