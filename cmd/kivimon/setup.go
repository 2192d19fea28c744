package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/kivimon/api"
	"github.com/maxpoletaev/kivimon/config"
	"github.com/maxpoletaev/kivimon/notify"
	"github.com/maxpoletaev/kivimon/poller"
	"github.com/maxpoletaev/kivimon/reconcile"
	"github.com/maxpoletaev/kivimon/remote"
	"github.com/maxpoletaev/kivimon/view"
)

type shutdownFunc func(ctx context.Context) error

var noopShutdown = func(ctx context.Context) error { return nil }

func setupLogger() (kitlog.Logger, shutdownFunc) {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	if !opts.Verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	return logger, noopShutdown
}

func setupNotifier(logger kitlog.Logger) (*notify.Inbox, notify.Notifier) {
	inbox := notify.NewInbox(opts.Notifications)
	return inbox, notify.Multi{inbox, notify.NewLogNotifier(logger)}
}

func setupRemote(notifier notify.Notifier, logger kitlog.Logger) (*remote.Client, shutdownFunc) {
	httpClient := &http.Client{Timeout: opts.Remote.Timeout}

	inv, err := remote.NewInvoker(
		opts.Remote.BaseURL,
		remote.WithHTTPClient(httpClient),
		remote.WithNotifier(notifier),
		remote.WithLogger(logger),
	)
	if err != nil {
		panic(fmt.Sprintf("failed to create remote invoker: %v", err))
	}

	shutdown := func(ctx context.Context) error {
		logger.Log("msg", "closing idle remote connections")
		httpClient.CloseIdleConnections()

		return nil
	}

	return remote.NewClient(inv, remote.DefaultEndpoints()), shutdown
}

func setupSource(logger kitlog.Logger) (config.Source, shutdownFunc) {
	if opts.Gossip.Enabled {
		list, err := config.StartGossip(config.GossipConfig{
			Name:     opts.Cluster.Hostname,
			ServerID: opts.Gossip.ServerID,
			BindAddr: opts.Gossip.BindAddr,
			BindPort: opts.Gossip.BindPort,
			Join:     parseAddrs(opts.Gossip.JoinAddrs),
			Logger:   logger,
		})
		if err != nil {
			panic(fmt.Sprintf("failed to start gossip: %v", err))
		}

		shutdown := func(ctx context.Context) error {
			logger.Log("msg", "leaving gossip cluster")
			return config.LeaveGossip(list, 5*time.Second)
		}

		return config.NewGossip(list), shutdown
	}

	static := config.Cluster{
		ServersSpec: opts.Cluster.ServersSpec,
		Hostname:    opts.Cluster.Hostname,
	}

	if opts.Cluster.ConfigFile != "" {
		return config.NewFile(opts.Cluster.ConfigFile, static), noopShutdown
	}

	return config.Static(static), noopShutdown
}

func setupController(
	wg *sync.WaitGroup,
	source config.Source,
	client *remote.Client,
	logger kitlog.Logger,
) (*view.Board, shutdownFunc) {
	board := view.NewBoard(
		client,
		view.WithBackups(opts.Cluster.Backups),
		view.WithLogger(logger),
	)

	statusPoller := poller.New(
		client,
		board,
		poller.WithLoopback(opts.Remote.Loopback),
		poller.WithRequestTimeout(opts.Remote.Timeout),
		poller.WithMaxInFlight(opts.Remote.MaxInFlight),
		poller.WithLogger(logger),
	)

	controller := reconcile.New(
		source,
		board,
		statusPoller,
		reconcile.WithInterval(opts.Refresh.Interval),
		reconcile.WithLogger(logger),
	)

	ctx, cancel := context.WithCancel(context.Background())

	wg.Add(1)

	go func() {
		defer wg.Done()
		controller.RunLoop(ctx)
	}()

	shutdown := func(context.Context) error {
		logger.Log("msg", "stopping refresh loop")
		cancel()

		return nil
	}

	return board, shutdown
}

func setupAPIServer(wg *sync.WaitGroup, board *view.Board, inbox *notify.Inbox, logger kitlog.Logger) (*http.Server, shutdownFunc) {
	restAPI := &http.Server{
		Addr:    opts.RestAPI.BindAddr,
		Handler: api.CreateRouter(board, inbox),
	}

	wg.Add(1)

	go func() {
		defer wg.Done()

		if err := restAPI.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				panic(fmt.Sprintf("failed to start REST API server: %v", err))
			}
		}
	}()

	shutdown := func(ctx context.Context) error {
		logger.Log("msg", "shutting down API server")

		if err := restAPI.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown REST API server: %w", err)
		}

		return nil
	}

	return restAPI, shutdown
}
