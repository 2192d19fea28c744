package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/jessevdk/go-flags"
)

func main() {
	p := flags.NewParser(&opts, flags.Default)

	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			fmt.Println("cli error:", err)
		}

		os.Exit(2)
	}

	wg := sync.WaitGroup{}
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	// Initialize all components.
	logger, closeLogger := setupLogger()
	inbox, notifier := setupNotifier(logger)
	source, closeSource := setupSource(logger)
	client, closeRemote := setupRemote(notifier, logger)
	board, closeController := setupController(&wg, source, client, logger)
	_, closeAPIServer := setupAPIServer(&wg, board, inbox, logger)

	// Stop accepting requests before the loop, drain remote calls last.
	shutdownOrder := []shutdownFunc{
		closeAPIServer,
		closeController,
		closeSource,
		closeRemote,
		closeLogger,
	}

	level.Info(logger).Log(
		"msg", "kivimon started",
		"bind_addr", opts.RestAPI.BindAddr,
		"base_url", opts.Remote.BaseURL,
	)

	// Block until we receive a signal to shut down.
	<-interrupt
	level.Info(logger).Log("msg", "received interrupt signal, shutting down")

	for _, f := range shutdownOrder {
		if err := f(context.Background()); err != nil {
			level.Error(logger).Log("msg", "failed to shutdown component", "err", err)
		}
	}

	// Wait for all components to finish background tasks.
	wg.Wait()
}
