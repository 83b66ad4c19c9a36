package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DatabaseURL     string
	TrendAPIURL     string
	TrendAPITimeout time.Duration

	KafkaBrokers             []string
	KafkaRecommendationTopic string

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Aggregation tunables.
	ClusterRadiusKm         float64
	MinSignalsPerCluster    int
	ReportExpiry            time.Duration
	CitizenWeight           float64
	SocialWeight            float64
	RecommendationThreshold float64

	// Cron expression for periodic aggregation runs; empty disables scheduling.
	AggregationSchedule string
}

// KafkaEnabled reports whether recommendation publishing is configured.
// Without brokers the service still aggregates; recommendations are only
// exposed through the read API.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	trendTimeout, err := parseDuration("TREND_API_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	reportExpiry, err := parseDuration("REPORT_EXPIRY", "48h")
	if err != nil {
		return nil, err
	}

	radius, err := parseFloat("CLUSTER_RADIUS_KM", 10.0)
	if err != nil {
		return nil, err
	}
	citizenWeight, err := parseFloat("CITIZEN_WEIGHT", 0.7)
	if err != nil {
		return nil, err
	}
	socialWeight, err := parseFloat("SOCIAL_WEIGHT", 0.3)
	if err != nil {
		return nil, err
	}
	threshold, err := parseFloat("RECOMMENDATION_THRESHOLD", 0.7)
	if err != nil {
		return nil, err
	}
	minSignals, err := parseInt("MIN_SIGNALS_PER_CLUSTER", 2)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		TrendAPIURL:     envOrDefault("TREND_API_URL", "http://localhost:8090"),
		TrendAPITimeout: trendTimeout,

		KafkaBrokers:             parseBrokers(os.Getenv("KAFKA_BROKERS")),
		KafkaRecommendationTopic: envOrDefault("KAFKA_RECOMMENDATION_TOPIC", "authority-recommendations"),

		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		ClusterRadiusKm:         radius,
		MinSignalsPerCluster:    minSignals,
		ReportExpiry:            reportExpiry,
		CitizenWeight:           citizenWeight,
		SocialWeight:            socialWeight,
		RecommendationThreshold: threshold,

		AggregationSchedule: os.Getenv("AGGREGATION_SCHEDULE"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}
	if cfg.KafkaEnabled() && cfg.KafkaRecommendationTopic == "" {
		return nil, errors.New("KAFKA_RECOMMENDATION_TOPIC is required when brokers are set")
	}
	if cfg.ClusterRadiusKm <= 0 {
		return nil, errors.New("CLUSTER_RADIUS_KM must be positive")
	}
	if cfg.MinSignalsPerCluster < 1 {
		return nil, errors.New("MIN_SIGNALS_PER_CLUSTER must be at least 1")
	}
	if cfg.CitizenWeight < 0 || cfg.CitizenWeight > 1 {
		return nil, errors.New("CITIZEN_WEIGHT must be in [0, 1]")
	}
	if cfg.SocialWeight < 0 || cfg.SocialWeight > 1 {
		return nil, errors.New("SOCIAL_WEIGHT must be in [0, 1]")
	}
	if cfg.RecommendationThreshold < 0 || cfg.RecommendationThreshold > 1 {
		return nil, errors.New("RECOMMENDATION_THRESHOLD must be in [0, 1]")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBrokers(s string) []string {
	var brokers []string
	for _, part := range strings.Split(s, ",") {
		if b := strings.TrimSpace(part); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func parseDuration(key, fallback string) (time.Duration, error) {
	v := envOrDefault(key, fallback)
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}
