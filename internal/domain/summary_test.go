package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	ts := time.Date(2026, 8, 25, 18, 0, 0, 0, time.UTC)
	result := AggregationResult{
		Timestamp:          ts,
		TotalActiveThreats: 3,
		ActiveThreats: []ThreatCluster{
			{Hazard: HazardCyclone, Severity: SeverityCritical, Confidence: 0.9, AffectedLocations: []string{"Chennai", "Cuddalore"}},
			{Hazard: HazardCyclone, Severity: SeverityMedium, Confidence: 0.5, AffectedLocations: []string{"Chennai"}},
			{Hazard: HazardCoastalFlooding, Severity: SeverityHigh, Confidence: 0.7, AffectedLocations: []string{"Mumbai"}},
		},
	}

	summary := Summarize(result)

	assert.Equal(t, 3, summary.TotalActiveThreats)
	assert.Equal(t, map[SeverityLevel]int{SeverityCritical: 1, SeverityMedium: 1, SeverityHigh: 1}, summary.SeverityBreakdown)
	assert.Equal(t, map[HazardType]int{HazardCyclone: 2, HazardCoastalFlooding: 1}, summary.HazardTypeBreakdown)
	assert.Equal(t, 2, summary.HighPriorityCount)
	assert.InDelta(t, 0.7, summary.AverageConfidence, 1e-9)
	assert.Equal(t, ts, summary.LastUpdated)

	require.Len(t, summary.TopAffectedRegions, 3)
	assert.Equal(t, RegionCount{Region: "Chennai", ThreatCount: 2}, summary.TopAffectedRegions[0])
	// Equal counts are ordered by name for determinism.
	assert.Equal(t, RegionCount{Region: "Cuddalore", ThreatCount: 1}, summary.TopAffectedRegions[1])
	assert.Equal(t, RegionCount{Region: "Mumbai", ThreatCount: 1}, summary.TopAffectedRegions[2])
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(AggregationResult{})

	assert.Zero(t, summary.TotalActiveThreats)
	assert.Zero(t, summary.HighPriorityCount)
	assert.Zero(t, summary.AverageConfidence)
	assert.Empty(t, summary.TopAffectedRegions)
}

func TestHotspots(t *testing.T) {
	clusters := []ThreatCluster{
		{ID: "a", CitizenReportCount: 3},
		{ID: "b", CitizenReportCount: 1},
		{ID: "c", CitizenReportCount: 2},
		{ID: "d", CitizenReportCount: 0},
	}

	hotspots := Hotspots(clusters)
	require.Len(t, hotspots, 2)
	assert.Equal(t, "a", hotspots[0].ID)
	assert.Equal(t, "c", hotspots[1].ID)
}
