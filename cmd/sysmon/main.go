//go:build linux

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/SM0HANTY/System-Monitor-Tool/pkg/config"
	"github.com/SM0HANTY/System-Monitor-Tool/pkg/monitor"
	"github.com/SM0HANTY/System-Monitor-Tool/pkg/ui"
)

func parseFlags(logger *log.Logger) (config.Config, string) {
	configPath := flag.String("config", "", "optional YAML config file")
	interval := flag.Duration("interval", 0, "refresh interval (e.g. 2s, 500ms); overrides config file")
	rows := flag.Int("rows", 0, "number of process rows to display; overrides config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Printf("using defaults: %v", err)
	}
	if *interval > 0 {
		cfg.Interval = *interval
	}
	if *rows > 0 {
		cfg.Rows = *rows
	}
	return cfg, *configPath
}

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.New(os.Stderr, "[sysmon] ", log.LstdFlags)
	cfg, configPath := parseFlags(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var updates <-chan config.Config
	if configPath != "" {
		ch, err := config.Watch(ctx, configPath, logger)
		if err != nil {
			logger.Printf("config watch disabled: %v", err)
		} else {
			updates = ch
		}
	}

	onTerminal := term.IsTerminal(int(os.Stdout.Fd()))
	cleanupTerminal := enableSingleView()
	defer cleanupTerminal()

	mon := &monitor.Monitor{
		Config:     cfg,
		Screen:     &ui.TermScreen{Out: os.Stdout},
		Logger:     logger,
		Updates:    updates,
		ShowBanner: onTerminal,
	}

	err := mon.Run(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return 0
	default:
		cleanupTerminal()
		logger.Printf("fatal: %v", err)
		return 1
	}
}

func enableSingleView() func() {
	stdoutFD := int(os.Stdout.Fd())
	stdinFD := int(os.Stdin.Fd())
	if !term.IsTerminal(stdoutFD) {
		return func() {}
	}

	fmt.Print("\033[?1049h") // switch to alternate buffer
	fmt.Print("\033[?25l")   // hide cursor

	var restore []func()
	if term.IsTerminal(stdinFD) {
		if undoEcho, err := disableInputEcho(stdinFD); err != nil {
			log.Printf("unable to suppress stdin echo: %v", err)
		} else if undoEcho != nil {
			restore = append(restore, undoEcho)
		}
	}

	done := false
	return func() {
		if done {
			return
		}
		done = true
		for i := len(restore) - 1; i >= 0; i-- {
			restore[i]()
		}
		fmt.Print("\033[?25h")   // show cursor
		fmt.Print("\033[?1049l") // restore main buffer
	}
}

// disableInputEcho turns off stdin echo so the alternate-screen view stays clean.
func disableInputEcho(fd int) (func(), error) {
	termState, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}

	updated := *termState
	updated.Lflag &^= unix.ECHO

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &updated); err != nil {
		return nil, err
	}

	return func() {
		if err := unix.IoctlSetTermios(fd, unix.TCSETS, termState); err != nil {
			log.Printf("unable to restore terminal echo: %v", err)
		}
	}, nil
}
