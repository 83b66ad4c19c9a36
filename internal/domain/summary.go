package domain

import (
	"sort"
	"time"
)

// DashboardSummary condenses an aggregation result for overview displays.
type DashboardSummary struct {
	TotalActiveThreats  int                   `json:"total_active_threats"`
	SeverityBreakdown   map[SeverityLevel]int `json:"severity_breakdown"`
	HazardTypeBreakdown map[HazardType]int    `json:"hazard_type_breakdown"`
	TopAffectedRegions  []RegionCount         `json:"top_affected_regions"`
	HighPriorityCount   int                   `json:"high_priority_count"`
	AverageConfidence   float64               `json:"average_confidence"`
	LastUpdated         time.Time             `json:"last_updated"`
}

// RegionCount pairs a region with the number of clusters mentioning it.
type RegionCount struct {
	Region      string `json:"region"`
	ThreatCount int    `json:"threat_count"`
}

// Summarize computes dashboard statistics from a full aggregation result.
func Summarize(result AggregationResult) DashboardSummary {
	summary := DashboardSummary{
		TotalActiveThreats:  result.TotalActiveThreats,
		SeverityBreakdown:   make(map[SeverityLevel]int),
		HazardTypeBreakdown: make(map[HazardType]int),
		LastUpdated:         result.Timestamp,
	}

	regionCounts := make(map[string]int)
	confidenceSum := 0.0
	for _, threat := range result.ActiveThreats {
		summary.SeverityBreakdown[threat.Severity]++
		summary.HazardTypeBreakdown[threat.Hazard]++
		confidenceSum += threat.Confidence
		if severityEscalates(threat.Severity) {
			summary.HighPriorityCount++
		}
		for _, region := range threat.AffectedLocations {
			regionCounts[region]++
		}
	}
	if len(result.ActiveThreats) > 0 {
		summary.AverageConfidence = confidenceSum / float64(len(result.ActiveThreats))
	}
	summary.TopAffectedRegions = topRegions(regionCounts, 10)

	return summary
}

// topRegions returns the n most-mentioned regions, ordered by count then name
// so equal counts come out deterministically.
func topRegions(counts map[string]int, n int) []RegionCount {
	regions := make([]RegionCount, 0, len(counts))
	for region, count := range counts {
		regions = append(regions, RegionCount{Region: region, ThreatCount: count})
	}
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].ThreatCount != regions[j].ThreatCount {
			return regions[i].ThreatCount > regions[j].ThreatCount
		}
		return regions[i].Region < regions[j].Region
	})
	if len(regions) > n {
		regions = regions[:n]
	}
	return regions
}

// Hotspots filters clusters backed by at least two citizen reports. The input
// is already ordered by confidence × severity, so the filtered slice keeps
// that ranking.
func Hotspots(clusters []ThreatCluster) []ThreatCluster {
	hotspots := make([]ThreatCluster, 0, len(clusters))
	for _, cluster := range clusters {
		if cluster.CitizenReportCount >= 2 {
			hotspots = append(hotspots, cluster)
		}
	}
	return hotspots
}
