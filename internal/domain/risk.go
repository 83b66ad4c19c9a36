package domain

// AssessRegionalRisk rolls cluster data up per affected location name. A
// region's risk level is the highest severity among all clusters mentioning
// it; hazard types are the union in first-mention order.
func AssessRegionalRisk(clusters []ThreatCluster) map[string]RegionalRisk {
	type rollup struct {
		threatCount int
		maxSeverity float64
		hazards     []HazardType
		seenHazards map[HazardType]bool
	}
	regions := make(map[string]*rollup)

	for _, cluster := range clusters {
		severity := SeverityNumeric(cluster.Severity)
		for _, location := range cluster.AffectedLocations {
			r := regions[location]
			if r == nil {
				r = &rollup{seenHazards: make(map[HazardType]bool)}
				regions[location] = r
			}
			r.threatCount++
			if !r.seenHazards[cluster.Hazard] {
				r.seenHazards[cluster.Hazard] = true
				r.hazards = append(r.hazards, cluster.Hazard)
			}
			if severity > r.maxSeverity {
				r.maxSeverity = severity
			}
		}
	}

	assessment := make(map[string]RegionalRisk, len(regions))
	for region, r := range regions {
		assessment[region] = RegionalRisk{
			ThreatCount:    r.threatCount,
			RiskLevel:      SeverityFromMean(r.maxSeverity),
			HazardTypes:    r.hazards,
			Recommendation: regionRecommendation(r.maxSeverity),
		}
	}
	return assessment
}

// regionRecommendation is a fixed four-way rule on the region's max severity.
func regionRecommendation(maxSeverity float64) string {
	switch {
	case maxSeverity >= 4.0:
		return "Immediate evacuation and emergency response required"
	case maxSeverity >= 3.0:
		return "Enhanced monitoring and preparation for potential evacuation"
	case maxSeverity >= 2.0:
		return "Increased vigilance and public awareness campaigns"
	default:
		return "Continue routine monitoring"
	}
}
