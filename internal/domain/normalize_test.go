package domain

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNormalizeReports(t *testing.T) {
	reportTime := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)

	t.Run("valid report", func(t *testing.T) {
		reports := []CitizenReport{{
			ID:                 "rep-1",
			HazardType:         "cyclone",
			Latitude:           13.0827,
			Longitude:          80.2707,
			Severity:           4,
			PriorityScore:      4.0,
			Timestamp:          reportTime,
			LocationName:       "Chennai",
			VerificationStatus: "verified",
		}}

		signals := NormalizeReports(reports, discardLogger())
		require.Len(t, signals, 1)

		s := signals[0]
		assert.Equal(t, SourceCitizenReport, s.Source)
		assert.Equal(t, HazardCyclone, s.Hazard)
		assert.Equal(t, Geo{Lat: 13.0827, Lon: 80.2707}, s.Location)
		assert.Equal(t, 4.0, s.Severity)
		assert.Equal(t, 0.8, s.Confidence)
		assert.Equal(t, reportTime, s.Timestamp)
		assert.Equal(t, "Chennai", s.LocationName)
		assert.Equal(t, VerificationVerified, s.Verification)
	})

	t.Run("confidence caps at one", func(t *testing.T) {
		reports := []CitizenReport{{
			ID: "rep-2", HazardType: "tsunami", Latitude: 9.9, Longitude: 76.2,
			Severity: 5, PriorityScore: 9.5, Timestamp: reportTime,
		}}

		signals := NormalizeReports(reports, discardLogger())
		require.Len(t, signals, 1)
		assert.Equal(t, 1.0, signals[0].Confidence)
	})

	t.Run("negative priority clamps to zero", func(t *testing.T) {
		reports := []CitizenReport{{
			ID: "rep-3", HazardType: "tsunami", Latitude: 9.9, Longitude: 76.2,
			Severity: 3, PriorityScore: -1, Timestamp: reportTime,
		}}

		signals := NormalizeReports(reports, discardLogger())
		require.Len(t, signals, 1)
		assert.Equal(t, 0.0, signals[0].Confidence)
	})

	t.Run("unknown hazard maps to other", func(t *testing.T) {
		reports := []CitizenReport{{
			ID: "rep-4", HazardType: "sharknado", Latitude: 9.9, Longitude: 76.2,
			Severity: 2, PriorityScore: 2, Timestamp: reportTime,
		}}

		signals := NormalizeReports(reports, discardLogger())
		require.Len(t, signals, 1)
		assert.Equal(t, HazardOther, signals[0].Hazard)
	})

	t.Run("unknown verification maps to unverified", func(t *testing.T) {
		reports := []CitizenReport{{
			ID: "rep-5", HazardType: "cyclone", Latitude: 9.9, Longitude: 76.2,
			Severity: 2, PriorityScore: 2, Timestamp: reportTime,
			VerificationStatus: "false_alarm",
		}}

		signals := NormalizeReports(reports, discardLogger())
		require.Len(t, signals, 1)
		assert.Equal(t, VerificationUnverified, signals[0].Verification)
	})

	t.Run("malformed rows skipped without aborting the batch", func(t *testing.T) {
		reports := []CitizenReport{
			{ID: "bad-coords", HazardType: "cyclone", Latitude: 95, Longitude: 80, Severity: 3, Timestamp: reportTime},
			{ID: "zero-coords", HazardType: "cyclone", Severity: 3, Timestamp: reportTime},
			{ID: "bad-severity", HazardType: "cyclone", Latitude: 13, Longitude: 80, Severity: 0, Timestamp: reportTime},
			{ID: "no-timestamp", HazardType: "cyclone", Latitude: 13, Longitude: 80, Severity: 3},
			{ID: "good", HazardType: "cyclone", Latitude: 13, Longitude: 80, Severity: 3, PriorityScore: 3, Timestamp: reportTime},
		}

		signals := NormalizeReports(reports, discardLogger())
		require.Len(t, signals, 1)
		assert.Equal(t, 3.0, signals[0].Severity)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, NormalizeReports(nil, discardLogger()))
	})
}

func TestNormalizeTrends(t *testing.T) {
	now := time.Date(2026, 8, 25, 16, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { SetClock(nil) })

	gaz := DefaultGazetteer()

	t.Run("one signal per resolvable area", func(t *testing.T) {
		trends := []TrendSummary{{
			HazardType:        "coastal_flooding",
			MentionCount:      127,
			ConfidenceAvg:     0.82,
			SentimentScore:    -0.72,
			UrgencyIndicators: 23,
			TopAffectedAreas:  []string{"Mumbai", "Thane", "Navi Mumbai"},
		}}

		signals := NormalizeTrends(trends, gaz, discardLogger())
		require.Len(t, signals, 3)

		for _, s := range signals {
			assert.Equal(t, SourceSocialMedia, s.Source)
			assert.Equal(t, HazardCoastalFlooding, s.Hazard)
			assert.Equal(t, 0.82, s.Confidence)
			assert.Equal(t, now, s.Timestamp)
			assert.Equal(t, VerificationSocialMedia, s.Verification)
		}
		assert.Equal(t, "Mumbai", signals[0].LocationName)
		mumbai, _ := gaz.Resolve("mumbai")
		assert.Equal(t, mumbai, signals[0].Location)

		// 127/50 + 2*0.72 + 23/10 = 6.28 → floors and caps at 5.
		assert.Equal(t, 5.0, signals[0].Severity)
	})

	t.Run("unresolvable areas dropped silently", func(t *testing.T) {
		trends := []TrendSummary{{
			HazardType:       "cyclone",
			MentionCount:     20,
			ConfidenceAvg:    0.6,
			TopAffectedAreas: []string{"Atlantis", "Chennai"},
		}}

		signals := NormalizeTrends(trends, gaz, discardLogger())
		require.Len(t, signals, 1)
		assert.Equal(t, "Chennai", signals[0].LocationName)
	})

	t.Run("case-insensitive gazetteer lookup", func(t *testing.T) {
		trends := []TrendSummary{{
			HazardType:       "high_waves",
			MentionCount:     10,
			ConfidenceAvg:    0.5,
			TopAffectedAreas: []string{"  CHENNAI "},
		}}

		signals := NormalizeTrends(trends, gaz, discardLogger())
		require.Len(t, signals, 1)
	})

	t.Run("quiet trend gets minimum severity", func(t *testing.T) {
		trends := []TrendSummary{{
			HazardType:       "rip_current",
			MentionCount:     3,
			ConfidenceAvg:    0.4,
			SentimentScore:   -0.1,
			TopAffectedAreas: []string{"Goa"},
		}}

		signals := NormalizeTrends(trends, gaz, discardLogger())
		require.Len(t, signals, 1)
		// 3/50 + 2*0.1 + 0 = 0.26 → floor 0 + 1.
		assert.Equal(t, 1.0, signals[0].Severity)
	})

	t.Run("confidence clamped to unit interval", func(t *testing.T) {
		trends := []TrendSummary{{
			HazardType:       "cyclone",
			MentionCount:     10,
			ConfidenceAvg:    1.4,
			TopAffectedAreas: []string{"Chennai"},
		}}

		signals := NormalizeTrends(trends, gaz, discardLogger())
		require.Len(t, signals, 1)
		assert.Equal(t, 1.0, signals[0].Confidence)
	})
}

func TestTrendSeverityBounds(t *testing.T) {
	tests := []struct {
		name     string
		trend    TrendSummary
		expected float64
	}{
		{"zero indicators", TrendSummary{}, 1},
		{"moderate activity", TrendSummary{MentionCount: 89, ConfidenceAvg: 0.76, SentimentScore: -0.65, UrgencyIndicators: 15}, 5},
		{"mid-range", TrendSummary{MentionCount: 50, SentimentScore: -0.4, UrgencyIndicators: 5}, 3},
		{"huge volume caps at five", TrendSummary{MentionCount: 10000}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, trendSeverity(tt.trend))
		})
	}
}
