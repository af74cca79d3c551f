package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"deliveryscheduler/cmd"
	httpadapter "deliveryscheduler/internal/adapters/in/http"
	"deliveryscheduler/internal/adapters/out/kafka/ledger"
	"deliveryscheduler/internal/adapters/out/redis/couriercache"
	"deliveryscheduler/internal/core/ports"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	db, err := cmd.OpenDatabase(a.cfg.DB)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	var cache *couriercache.Cache
	if a.cfg.Redis.Enabled {
		client, redisErr := couriercache.NewClient(ctx, couriercache.Config{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
			TTL:      a.cfg.Redis.TTL,
		})
		if redisErr != nil {
			a.logger.Warn().Err(redisErr).Msg("courier cache disabled")
		} else {
			defer client.Close()
			cache = couriercache.New(client, a.cfg.Redis.TTL, a.logger)
		}
	}

	var paymentLedger ports.PaymentLedger = ledger.NewLogLedger(a.logger)
	if a.cfg.Kafka.Enabled {
		publisher := ledger.NewKafkaPublisher(a.cfg.Kafka.Brokers, a.cfg.Kafka.LedgerTopic)
		defer publisher.Close()
		paymentLedger = publisher
	}

	root := cmd.NewCompositionRoot(a.cfg, db, paymentLedger, cache, a.logger)

	e, err := httpadapter.NewRouter(root.CreateHTTPServer(), a.logger)
	if err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := fmt.Sprintf("0.0.0.0:%s", a.cfg.HTTPPort)
		a.logger.Info().Str("addr", addr).Msg("http server listening")
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info().Msg("shutting down")

		jobManager.StopAll()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
