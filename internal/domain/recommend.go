package domain

import (
	"fmt"
	"strings"
)

// DefaultRecommendationThreshold is the minimum confidence at which a cluster
// triggers authority recommendations regardless of severity.
const DefaultRecommendationThreshold = 0.7

// RecommendAuthorities produces notification recommendations for every
// cluster that qualifies: confidence at or above the threshold, or severity
// high/critical. One recommendation is emitted per selected authority.
func RecommendAuthorities(clusters []ThreatCluster, confidenceThreshold float64) []AuthorityRecommendation {
	var recommendations []AuthorityRecommendation
	for _, cluster := range clusters {
		if cluster.Confidence < confidenceThreshold && !severityEscalates(cluster.Severity) {
			continue
		}
		message := alertMessage(cluster)
		for _, authority := range selectAuthorities(cluster) {
			recommendations = append(recommendations, AuthorityRecommendation{
				ThreatID:           cluster.ID,
				Authority:          authority,
				Urgency:            cluster.Severity,
				Message:            message,
				RecommendedActions: recommendedActions(authority),
			})
		}
	}
	return recommendations
}

func severityEscalates(level SeverityLevel) bool {
	return level == SeverityHigh || level == SeverityCritical
}

// selectAuthorities maps the hazard type to its base agencies and escalates
// with police and medical for high/critical clusters. The result is
// deduplicated in selection order.
func selectAuthorities(cluster ThreatCluster) []AuthorityType {
	var selected []AuthorityType
	switch cluster.Hazard {
	case HazardTsunami, HazardStormSurge:
		selected = append(selected, AuthorityCoastGuard, AuthorityDisasterManagement, AuthorityNavy)
	case HazardCyclone, HazardHighWaves:
		selected = append(selected, AuthorityCoastGuard, AuthorityDisasterManagement)
	case HazardCoastalFlooding:
		selected = append(selected, AuthorityDisasterManagement, AuthorityFireDept)
	}
	if severityEscalates(cluster.Severity) {
		selected = append(selected, AuthorityPolice, AuthorityMedicalEmergency)
	}

	seen := make(map[AuthorityType]bool, len(selected))
	unique := selected[:0]
	for _, a := range selected {
		if !seen[a] {
			seen[a] = true
			unique = append(unique, a)
		}
	}
	return unique
}

// alertMessage renders the deterministic alert text shared by every
// recommendation for a cluster.
func alertMessage(cluster ThreatCluster) string {
	locations := strings.Join(truncateLocations(cluster.AffectedLocations, 3), ", ")
	if extra := len(cluster.AffectedLocations) - 3; extra > 0 {
		locations += fmt.Sprintf(" and %d other areas", extra)
	}
	return fmt.Sprintf(
		"%s %s alert for %s. Confidence: %.2f. Based on %d citizen reports and %d social media mentions. Affected radius: %.1fkm.",
		strings.ToUpper(string(cluster.Severity)),
		hazardTitle(cluster.Hazard),
		locations,
		cluster.Confidence,
		cluster.CitizenReportCount,
		cluster.SocialMediaCount,
		cluster.RadiusKm,
	)
}

func truncateLocations(locations []string, n int) []string {
	if len(locations) > n {
		return locations[:n]
	}
	return locations
}

// hazardTitle renders a hazard type for display: "storm_surge" → "Storm Surge".
func hazardTitle(hazard HazardType) string {
	words := strings.Split(string(hazard), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// recommendedActions is a static playbook per authority. Authorities without
// a playbook get a single generic action.
func recommendedActions(authority AuthorityType) []string {
	switch authority {
	case AuthorityCoastGuard:
		return []string{
			"Deploy patrol vessels to affected areas",
			"Issue marine weather warnings",
			"Coordinate with fishing vessels for safe harbor",
		}
	case AuthorityDisasterManagement:
		return []string{
			"Activate emergency response protocols",
			"Prepare evacuation plans",
			"Coordinate with local authorities",
		}
	case AuthorityPolice:
		return []string{
			"Secure affected areas",
			"Assist with evacuations",
			"Manage traffic and crowd control",
		}
	case AuthorityFireDept:
		return []string{
			"Pre-position rescue teams",
			"Prepare flood rescue equipment",
			"Coordinate with emergency medical services",
		}
	default:
		return []string{"Monitor situation and provide assistance as needed"}
	}
}
