// Package aggregate runs the threat aggregation pipeline end to end:
// fetch both signal sources, normalize, cluster, fuse, derive regional risk
// and authority recommendations, and publish the result snapshot.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/coastwatch/threat-aggregation-service/internal/domain"
	"github.com/coastwatch/threat-aggregation-service/internal/observability"
)

// ReportSource yields citizen reports no older than the given window.
// The core applies no further time filtering.
type ReportSource interface {
	FetchRecent(ctx context.Context, window time.Duration) ([]domain.CitizenReport, error)
}

// TrendSource yields the current social media trend summaries for the
// analyzer's rolling window.
type TrendSource interface {
	FetchTrends(ctx context.Context) ([]domain.TrendSummary, error)
}

// RecommendationPublisher hands authority recommendations to the external
// notification dispatcher. Publishing is best effort; a failed publish does
// not fail the run.
type RecommendationPublisher interface {
	Publish(ctx context.Context, recs []domain.AuthorityRecommendation) error
}

// Params collects the tunables of one aggregation run.
type Params struct {
	Clustering              domain.ClusterParams
	Fusion                  domain.FusionParams
	ReportWindow            time.Duration
	RecommendationThreshold float64
}

// DefaultParams returns the operational defaults: 10 km clustering radius,
// 0.7/0.3 fusion weights, 48 h report window, 0.7 recommendation threshold.
func DefaultParams() Params {
	return Params{
		Clustering:              domain.DefaultClusterParams(),
		Fusion:                  domain.DefaultFusionParams(),
		ReportWindow:            48 * time.Hour,
		RecommendationThreshold: domain.DefaultRecommendationThreshold,
	}
}

// Aggregator owns the pipeline and the cache of the latest result. The cache
// is swapped wholesale on every successful run and never merged; concurrent
// runs are not serialized, so the last one to finish wins. Callers needing
// strict consistency must serialize runs themselves.
type Aggregator struct {
	reports   ReportSource
	trends    TrendSource
	gazetteer domain.Gazetteer
	params    Params
	logger    *slog.Logger
	metrics   *observability.Metrics
	publisher RecommendationPublisher
	clock     clockwork.Clock
	snapshot  atomic.Pointer[domain.AggregationResult]
}

// New creates an Aggregator over the given sources.
func New(reports ReportSource, trends TrendSource, gazetteer domain.Gazetteer, params Params, logger *slog.Logger, metrics *observability.Metrics) *Aggregator {
	return &Aggregator{
		reports:   reports,
		trends:    trends,
		gazetteer: gazetteer,
		params:    params,
		logger:    logger,
		metrics:   metrics,
		clock:     clockwork.NewRealClock(),
	}
}

// SetPublisher attaches a recommendation publisher. Without one,
// recommendations are only exposed through the snapshot.
func (a *Aggregator) SetPublisher(p RecommendationPublisher) {
	a.publisher = p
}

// SetClock swaps the time source. Pass nil to reset to real time.
func (a *Aggregator) SetClock(c clockwork.Clock) {
	if c == nil {
		a.clock = clockwork.NewRealClock()
		return
	}
	a.clock = c
}

// Run executes one full aggregation pass. The two source fetches run
// concurrently; if either fails the run fails as a whole and the cached
// snapshot is left untouched, so stale and fresh data never mix.
func (a *Aggregator) Run(ctx context.Context) (domain.AggregationResult, error) {
	start := a.clock.Now()
	a.metrics.RunsTotal.Inc()

	reports, trends, err := a.fetchSources(ctx)
	if err != nil {
		a.metrics.RunsFailed.Inc()
		return domain.AggregationResult{}, err
	}

	citizenSignals := domain.NormalizeReports(reports, a.logger)
	socialSignals := domain.NormalizeTrends(trends, a.gazetteer, a.logger)
	a.metrics.SignalsNormalized.WithLabelValues(string(domain.SourceCitizenReport)).Add(float64(len(citizenSignals)))
	a.metrics.SignalsNormalized.WithLabelValues(string(domain.SourceSocialMedia)).Add(float64(len(socialSignals)))

	// Citizen signals come first; clustering seeds follow input order.
	signals := make([]domain.Signal, 0, len(citizenSignals)+len(socialSignals))
	signals = append(signals, citizenSignals...)
	signals = append(signals, socialSignals...)

	groups := domain.ClusterSignals(signals, a.params.Clustering)
	clusters := domain.BuildThreatClusters(groups, a.params.Fusion)
	risk := domain.AssessRegionalRisk(clusters)
	recommendations := domain.RecommendAuthorities(clusters, a.params.RecommendationThreshold)

	result := domain.AggregationResult{
		Timestamp:                a.clock.Now().UTC(),
		TotalActiveThreats:       len(clusters),
		CitizenReportsAnalyzed:   len(reports),
		SocialSignalsAnalyzed:    len(socialSignals),
		ActiveThreats:            clusters,
		RiskAssessment:           risk,
		AuthorityRecommendations: recommendations,
	}
	a.snapshot.Store(&result)

	if a.publisher != nil && len(recommendations) > 0 {
		if err := a.publisher.Publish(ctx, recommendations); err != nil {
			a.logger.Error("recommendation publish failed", "error", err)
		}
	}

	a.metrics.ActiveThreats.Set(float64(len(clusters)))
	a.metrics.RecommendationsGenerated.Add(float64(len(recommendations)))
	a.metrics.RunDuration.Observe(a.clock.Since(start).Seconds())
	a.metrics.LastRunTimestamp.Set(float64(result.Timestamp.Unix()))

	a.logger.Info("aggregation run complete",
		"citizen_reports", len(reports),
		"social_signals", len(socialSignals),
		"clusters", len(clusters),
		"regions_at_risk", len(risk),
		"recommendations", len(recommendations),
	)
	return result, nil
}

// fetchSources pulls both collaborators concurrently and waits for both.
// Neither fetch depends on the other, but clustering needs both.
func (a *Aggregator) fetchSources(ctx context.Context) ([]domain.CitizenReport, []domain.TrendSummary, error) {
	var (
		wg         sync.WaitGroup
		reports    []domain.CitizenReport
		trends     []domain.TrendSummary
		reportsErr error
		trendsErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		reports, reportsErr = a.reports.FetchRecent(ctx, a.params.ReportWindow)
	}()
	go func() {
		defer wg.Done()
		trends, trendsErr = a.trends.FetchTrends(ctx)
	}()
	wg.Wait()

	if reportsErr != nil {
		return nil, nil, fmt.Errorf("fetch citizen reports: %w", reportsErr)
	}
	if trendsErr != nil {
		return nil, nil, fmt.Errorf("fetch social trends: %w", trendsErr)
	}
	return reports, trends, nil
}

// Snapshot returns the result of the most recent successful run, if any.
func (a *Aggregator) Snapshot() (domain.AggregationResult, bool) {
	if s := a.snapshot.Load(); s != nil {
		return *s, true
	}
	return domain.AggregationResult{}, false
}

// ActiveThreats returns the cached cluster set from the latest run.
func (a *Aggregator) ActiveThreats() []domain.ThreatCluster {
	if s := a.snapshot.Load(); s != nil {
		return s.ActiveThreats
	}
	return nil
}

// LastAggregation returns when the cached snapshot was produced.
func (a *Aggregator) LastAggregation() (time.Time, bool) {
	if s := a.snapshot.Load(); s != nil {
		return s.Timestamp, true
	}
	return time.Time{}, false
}

// CheckReadiness returns nil once at least one run has completed.
func (a *Aggregator) CheckReadiness(_ context.Context) error {
	if a.snapshot.Load() == nil {
		return errors.New("no aggregation run has completed yet")
	}
	return nil
}
