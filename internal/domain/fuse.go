package domain

import (
	"sort"

	"github.com/google/uuid"
)

// FusionParams sets the relative trust given to each source when combining
// confidences into one score.
type FusionParams struct {
	CitizenWeight float64
	SocialWeight  float64
}

// DefaultFusionParams weights citizen reports 0.7 and social media 0.3.
func DefaultFusionParams() FusionParams {
	return FusionParams{CitizenWeight: 0.7, SocialWeight: 0.3}
}

// severityThresholds maps the categorical levels onto the numeric severity
// scale. The same table drives both directions of the conversion.
var severityThresholds = map[SeverityLevel]float64{
	SeverityCritical: 4.0,
	SeverityHigh:     3.0,
	SeverityMedium:   2.0,
	SeverityLow:      1.0,
}

// SeverityNumeric returns the numeric value of a categorical severity level.
// Unknown levels count as 1.0 (low).
func SeverityNumeric(level SeverityLevel) float64 {
	if v, ok := severityThresholds[level]; ok {
		return v
	}
	return 1.0
}

// SeverityFromMean maps a mean numeric severity onto the categorical scale:
// >=4 critical, >=3 high, >=2 medium, else low.
func SeverityFromMean(mean float64) SeverityLevel {
	switch {
	case mean >= 4.0:
		return SeverityCritical
	case mean >= 3.0:
		return SeverityHigh
	case mean >= 2.0:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// BuildThreatClusters fuses each signal group into a ThreatCluster and sorts
// the result by confidence × numeric severity, highest first. The sort is
// stable so equally scored clusters keep their input order.
func BuildThreatClusters(groups [][]Signal, params FusionParams) []ThreatCluster {
	clusters := make([]ThreatCluster, 0, len(groups))
	for _, members := range groups {
		clusters = append(clusters, fuseCluster(members, params))
	}
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Confidence*SeverityNumeric(clusters[i].Severity) >
			clusters[j].Confidence*SeverityNumeric(clusters[j].Severity)
	})
	return clusters
}

// fuseCluster combines one group of member signals into a single assessment.
// Confidence is a weighted sum of the per-source means; the weights are not
// renormalized when one source is absent, so a social-only cluster caps at
// SocialWeight. Social-only signals are trusted less on purpose.
func fuseCluster(members []Signal, params FusionParams) ThreatCluster {
	var sumLat, sumLon float64
	for _, m := range members {
		sumLat += m.Location.Lat
		sumLon += m.Location.Lon
	}
	n := float64(len(members))
	center := Geo{Lat: sumLat / n, Lon: sumLon / n}

	// Radius is the max center-to-member distance, floored at 1 km so a
	// single-point cluster still covers a meaningful area.
	radius := 0.0
	for _, m := range members {
		if d := DistanceKm(center, m.Location); d > radius {
			radius = d
		}
	}
	if radius < 1.0 {
		radius = 1.0
	}

	var (
		citizenConf, socialConf   float64
		citizenCount, socialCount int
		severitySum               float64
		severityCount             int
	)
	for _, m := range members {
		switch m.Source {
		case SourceCitizenReport:
			citizenConf += m.Confidence
			citizenCount++
		case SourceSocialMedia:
			socialConf += m.Confidence
			socialCount++
		}
		if m.Severity > 0 {
			severitySum += m.Severity
			severityCount++
		}
	}
	if citizenCount > 0 {
		citizenConf /= float64(citizenCount)
	}
	if socialCount > 0 {
		socialConf /= float64(socialCount)
	}

	// 2.0 (medium) when no member carries a severity, avoiding division by zero.
	meanSeverity := 2.0
	if severityCount > 0 {
		meanSeverity = severitySum / float64(severityCount)
	}

	first, last := members[0].Timestamp, members[0].Timestamp
	for _, m := range members[1:] {
		if m.Timestamp.Before(first) {
			first = m.Timestamp
		}
		if m.Timestamp.After(last) {
			last = m.Timestamp
		}
	}

	var affected []string
	seen := make(map[string]bool)
	for _, m := range members {
		if m.LocationName != "" && !seen[m.LocationName] {
			seen[m.LocationName] = true
			affected = append(affected, m.LocationName)
		}
	}

	return ThreatCluster{
		ID:                 uuid.NewString(),
		Hazard:             modalHazard(members),
		Severity:           SeverityFromMean(meanSeverity),
		Confidence:         citizenConf*params.CitizenWeight + socialConf*params.SocialWeight,
		Center:             center,
		RadiusKm:           radius,
		CitizenReportCount: citizenCount,
		SocialMediaCount:   socialCount,
		FirstDetected:      first,
		LastUpdated:        last,
		AffectedLocations:  affected,
		// TODO: derive from run-over-run comparison once aggregation history
		// is retained; there is no temporal baseline to compare against yet.
		Trend:        TrendIncreasing,
		Verification: fusedVerification(members),
	}
}

// modalHazard returns the most frequent hazard type among members. Ties go to
// the hazard that appears first in input order.
func modalHazard(members []Signal) HazardType {
	counts := make(map[HazardType]int)
	for _, m := range members {
		counts[m.Hazard]++
	}
	mode := members[0].Hazard
	best := counts[mode]
	visited := map[HazardType]bool{mode: true}
	for _, m := range members {
		if visited[m.Hazard] {
			continue
		}
		visited[m.Hazard] = true
		if counts[m.Hazard] > best {
			best = counts[m.Hazard]
			mode = m.Hazard
		}
	}
	return mode
}

// fusedVerification picks the highest-priority member status:
// verified > partially_verified > everything else.
func fusedVerification(members []Signal) VerificationStatus {
	status := VerificationUnverified
	for _, m := range members {
		switch m.Verification {
		case VerificationVerified:
			return VerificationVerified
		case VerificationPartiallyVerified:
			status = VerificationPartiallyVerified
		}
	}
	return status
}
