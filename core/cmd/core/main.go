package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/telhawk-systems/telhawk-audit/common/config"
	"github.com/telhawk-systems/telhawk-audit/common/dlq"
	"github.com/telhawk-systems/telhawk-audit/common/logging"
	"github.com/telhawk-systems/telhawk-audit/common/messaging"
	natsclient "github.com/telhawk-systems/telhawk-audit/common/messaging/nats"
	"github.com/telhawk-systems/telhawk-audit/common/signing"
	"github.com/telhawk-systems/telhawk-audit/core/internal/handlers"
	"github.com/telhawk-systems/telhawk-audit/core/internal/pipeline"
	"github.com/telhawk-systems/telhawk-audit/core/internal/relay"
	"github.com/telhawk-systems/telhawk-audit/core/internal/server"
	"github.com/telhawk-systems/telhawk-audit/core/internal/service"
	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	addr := flag.String("addr", "", "override listen address")
	flag.Parse()

	if err := run(*configPath, *addr); err != nil {
		fmt.Fprintf(os.Stderr, "audit decoder: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format).
		With(logging.Service("audit-decoder"))
	logging.SetDefault(logger)

	policy, err := cfg.Decoder.Policy()
	if err != nil {
		return err
	}

	tables := audit.DefaultTables()
	decoder := audit.NewDecoder(tables, policy)
	logger.Info("Decoder ready",
		"event_types", tables.EventCount(),
		"field_types", tables.FieldCount(),
		"unknown_field_policy", policy.String(),
	)

	var queue *dlq.Queue
	if cfg.DLQ.Enabled {
		queue, err = dlq.NewQueue(cfg.DLQ.BasePath, logger)
		if err != nil {
			logger.Warn("Failed to initialize DLQ, continuing without it", logging.Error(err))
		} else {
			logger.Info("DLQ enabled", logging.Path(cfg.DLQ.BasePath))
		}
	}

	var broker messaging.Client
	var natsConn *natsclient.Client
	if cfg.NATS.Enabled {
		natsCfg := natsclient.DefaultConfig()
		natsCfg.URL = cfg.NATS.URL
		natsCfg.MaxReconnects = cfg.NATS.MaxReconnects
		natsCfg.ReconnectWait = cfg.NATS.ReconnectWait
		natsCfg.Logger = logger

		natsConn, err = natsclient.NewClient(natsCfg)
		if err != nil {
			return err
		}
		broker = natsConn
		logger.Info("Connected to NATS", "url", cfg.NATS.URL)
	}

	pipe := pipeline.New(decoder, logger)
	processor := service.NewProcessor(pipe, broker, queue)

	var rel *relay.Relay
	if broker != nil {
		rel = relay.New(relay.Config{
			RawSubject:     cfg.NATS.RawSubject,
			DecodedSubject: cfg.NATS.DecodedSubject,
			QueueGroup:     cfg.NATS.QueueGroup,
			Signer:         signing.NewSigner(cfg.NATS.SigningKey),
		}, broker, processor, logger)
		if err := rel.Start(); err != nil {
			_ = natsConn.Close()
			return err
		}
	}

	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	if addr != "" {
		listenAddr = addr
	}

	routerOpts := server.Options{Logger: logger}
	if cfg.Metrics.Enabled {
		routerOpts.MetricsPath = cfg.Metrics.Path
	}

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      server.NewRouter(handlers.NewProcessorHandler(processor, decoder), routerOpts),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Audit decoder listening", "addr", listenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		logger.Error("Server error", logging.Error(err))
	}

	if rel != nil {
		if err := rel.Stop(); err != nil {
			logger.Warn("Relay unsubscribe failed", logging.Error(err))
		}
	}
	if natsConn != nil {
		if err := natsConn.Drain(); err != nil {
			logger.Warn("NATS drain failed", logging.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
