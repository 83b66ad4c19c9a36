package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessRegionalRisk(t *testing.T) {
	clusters := []ThreatCluster{
		{
			Hazard:            HazardCyclone,
			Severity:          SeverityCritical,
			AffectedLocations: []string{"Chennai", "Cuddalore"},
		},
		{
			Hazard:            HazardCoastalFlooding,
			Severity:          SeverityMedium,
			AffectedLocations: []string{"Chennai"},
		},
		{
			Hazard:            HazardHighWaves,
			Severity:          SeverityLow,
			AffectedLocations: []string{"Goa"},
		},
	}

	assessment := AssessRegionalRisk(clusters)
	require.Len(t, assessment, 3)

	chennai := assessment["Chennai"]
	assert.Equal(t, 2, chennai.ThreatCount)
	// Highest severity among clusters mentioning the region wins.
	assert.Equal(t, SeverityCritical, chennai.RiskLevel)
	assert.Equal(t, []HazardType{HazardCyclone, HazardCoastalFlooding}, chennai.HazardTypes)
	assert.Equal(t, "Immediate evacuation and emergency response required", chennai.Recommendation)

	cuddalore := assessment["Cuddalore"]
	assert.Equal(t, 1, cuddalore.ThreatCount)
	assert.Equal(t, SeverityCritical, cuddalore.RiskLevel)

	goa := assessment["Goa"]
	assert.Equal(t, SeverityLow, goa.RiskLevel)
	assert.Equal(t, "Continue routine monitoring", goa.Recommendation)
}

func TestAssessRegionalRisk_EmptyInput(t *testing.T) {
	assert.Empty(t, AssessRegionalRisk(nil))
}

func TestAssessRegionalRisk_DuplicateHazardsCollapse(t *testing.T) {
	clusters := []ThreatCluster{
		{Hazard: HazardCyclone, Severity: SeverityHigh, AffectedLocations: []string{"Puri"}},
		{Hazard: HazardCyclone, Severity: SeverityMedium, AffectedLocations: []string{"Puri"}},
	}

	assessment := AssessRegionalRisk(clusters)
	puri := assessment["Puri"]
	assert.Equal(t, 2, puri.ThreatCount)
	assert.Equal(t, []HazardType{HazardCyclone}, puri.HazardTypes)
	assert.Equal(t, SeverityHigh, puri.RiskLevel)
	assert.Equal(t, "Enhanced monitoring and preparation for potential evacuation", puri.Recommendation)
}

func TestRegionRecommendation(t *testing.T) {
	tests := []struct {
		severity float64
		expected string
	}{
		{4.0, "Immediate evacuation and emergency response required"},
		{3.0, "Enhanced monitoring and preparation for potential evacuation"},
		{2.0, "Increased vigilance and public awareness campaigns"},
		{1.0, "Continue routine monitoring"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, regionRecommendation(tt.severity))
	}
}
