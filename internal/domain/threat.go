package domain

import "time"

// SeverityLevel is the categorical severity of a fused threat cluster.
type SeverityLevel string

const (
	SeverityLow      SeverityLevel = "low"
	SeverityMedium   SeverityLevel = "medium"
	SeverityHigh     SeverityLevel = "high"
	SeverityCritical SeverityLevel = "critical"
)

// TrendDirection describes how a threat is evolving between runs.
type TrendDirection string

const (
	TrendIncreasing TrendDirection = "increasing"
	TrendStable     TrendDirection = "stable"
	TrendDecreasing TrendDirection = "decreasing"
)

// ThreatCluster is a geographically grouped, fused assessment of one or more
// signals judged to describe the same physical event. Clusters are rebuilt
// from scratch every aggregation run; IDs are not stable across runs and must
// not be used for long-lived tracking.
type ThreatCluster struct {
	ID                 string             `json:"id"`
	Hazard             HazardType         `json:"hazard_type"`
	Severity           SeverityLevel      `json:"severity_level"`
	Confidence         float64            `json:"confidence_score"`
	Center             Geo                `json:"center"`
	RadiusKm           float64            `json:"radius_km"`
	CitizenReportCount int                `json:"citizen_report_count"`
	SocialMediaCount   int                `json:"social_media_count"`
	FirstDetected      time.Time          `json:"first_detected"`
	LastUpdated        time.Time          `json:"last_updated"`
	AffectedLocations  []string           `json:"affected_locations"`
	Trend              TrendDirection     `json:"trend_direction"`
	Verification       VerificationStatus `json:"verification_status"`
}

// RegionalRisk is the per-region rollup of all clusters mentioning a
// location name.
type RegionalRisk struct {
	ThreatCount    int           `json:"threat_count"`
	RiskLevel      SeverityLevel `json:"risk_level"`
	HazardTypes    []HazardType  `json:"hazard_types"`
	Recommendation string        `json:"recommendation"`
}

// AuthorityType names an agency that can be notified about a threat.
type AuthorityType string

const (
	AuthorityCoastGuard         AuthorityType = "coast_guard"
	AuthorityDisasterManagement AuthorityType = "disaster_management"
	AuthorityNavy               AuthorityType = "navy"
	AuthorityPolice             AuthorityType = "police"
	AuthorityFireDept           AuthorityType = "fire_dept"
	AuthorityMedicalEmergency   AuthorityType = "medical_emergency"
)

// AuthorityRecommendation is a single notify-this-agency recommendation for a
// qualifying threat. Delivery is owned by the external dispatcher.
type AuthorityRecommendation struct {
	ThreatID           string        `json:"threat_id"`
	Authority          AuthorityType `json:"authority_type"`
	Urgency            SeverityLevel `json:"urgency"`
	Message            string        `json:"message"`
	RecommendedActions []string      `json:"recommended_actions"`
}

// AggregationResult is the full output of one aggregation run.
type AggregationResult struct {
	Timestamp                time.Time                 `json:"timestamp"`
	TotalActiveThreats       int                       `json:"total_active_threats"`
	CitizenReportsAnalyzed   int                       `json:"citizen_reports_analyzed"`
	SocialSignalsAnalyzed    int                       `json:"social_signals_analyzed"`
	ActiveThreats            []ThreatCluster           `json:"active_threats"`
	RiskAssessment           map[string]RegionalRisk   `json:"risk_assessment"`
	AuthorityRecommendations []AuthorityRecommendation `json:"authority_recommendations"`
}
