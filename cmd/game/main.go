package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomz197/rocketraid/internal/audio"
	"github.com/tomz197/rocketraid/internal/config"
	"github.com/tomz197/rocketraid/internal/event"
	"github.com/tomz197/rocketraid/internal/loop/client"
	"golang.org/x/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Load(); err != nil {
		return err
	}
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}

	// The terminal is the game screen, so logs go to a file or nowhere.
	logOut, closeLog, err := config.OpenLogFile(settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := config.NewLogger(logOut, settings.LogLevel, "rocketraid")

	var sink event.Sink = event.Nop
	if settings.Audio {
		player := audio.NewPlayer(logger)
		if err := player.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer player.Close()
			sink = player
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := client.NewClient(bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Arena:  settings.Arena,
		Sink:   sink,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	return c.Run(ctx)
}
