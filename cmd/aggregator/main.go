package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	httpadapter "github.com/coastwatch/threat-aggregation-service/internal/adapter/http"
	kafkaadapter "github.com/coastwatch/threat-aggregation-service/internal/adapter/kafka"
	"github.com/coastwatch/threat-aggregation-service/internal/adapter/postgres"
	"github.com/coastwatch/threat-aggregation-service/internal/adapter/trendapi"
	"github.com/coastwatch/threat-aggregation-service/internal/aggregate"
	"github.com/coastwatch/threat-aggregation-service/internal/config"
	"github.com/coastwatch/threat-aggregation-service/internal/domain"
	"github.com/coastwatch/threat-aggregation-service/internal/observability"
)

func main() {
	// Local development convenience; absent .env files are fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	store, err := postgres.NewReportStore(cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open report store", "error", err)
		os.Exit(1)
	}

	trendClient := trendapi.NewClient(cfg.TrendAPIURL, cfg.TrendAPITimeout, logger)

	params := aggregate.Params{
		Clustering: domain.ClusterParams{
			RadiusKm:   cfg.ClusterRadiusKm,
			MinSignals: cfg.MinSignalsPerCluster,
		},
		Fusion: domain.FusionParams{
			CitizenWeight: cfg.CitizenWeight,
			SocialWeight:  cfg.SocialWeight,
		},
		ReportWindow:            cfg.ReportExpiry,
		RecommendationThreshold: cfg.RecommendationThreshold,
	}

	aggregator := aggregate.New(store, trendClient, domain.DefaultGazetteer(), params, logger, metrics)

	var publisher *kafkaadapter.Publisher
	if cfg.KafkaEnabled() {
		publisher = kafkaadapter.NewPublisher(cfg.KafkaBrokers, cfg.KafkaRecommendationTopic, logger)
		aggregator.SetPublisher(publisher)
		logger.Info("recommendation publishing enabled",
			"brokers", cfg.KafkaBrokers, "topic", cfg.KafkaRecommendationTopic)
	} else {
		logger.Info("recommendation publishing disabled")
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, aggregator, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Scheduled runs are optional; the API can always trigger one on demand.
	var scheduler *cron.Cron
	if cfg.AggregationSchedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.AggregationSchedule, func() {
			if _, err := aggregator.Run(ctx); err != nil {
				logger.Error("scheduled aggregation failed", "error", err)
			}
		})
		if err != nil {
			logger.Error("invalid AGGREGATION_SCHEDULE", "schedule", cfg.AggregationSchedule, "error", err)
			os.Exit(1)
		}
		scheduler.Start()
		logger.Info("aggregation scheduler started", "schedule", cfg.AggregationSchedule)
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Prime the snapshot so the read API is useful immediately. A failure
	// here is not fatal; readiness stays false until a run succeeds.
	if _, err := aggregator.Run(ctx); err != nil {
		logger.Warn("initial aggregation failed", "error", err)
	}

	<-ctx.Done()
	logger.Info("shutting down")

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}
	if err := store.Close(); err != nil {
		logger.Error("report store close error", "error", err)
	}

	logger.Info("shutdown complete")
}
