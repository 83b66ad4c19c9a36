package domain

import "time"

// SourceKind identifies which ingestion path produced a signal.
type SourceKind string

const (
	SourceCitizenReport SourceKind = "citizen_report"
	SourceSocialMedia   SourceKind = "social_media"
)

// HazardType is the fixed taxonomy of coastal hazards. Values outside the
// taxonomy normalize to HazardOther.
type HazardType string

const (
	HazardTsunami         HazardType = "tsunami"
	HazardStormSurge      HazardType = "storm_surge"
	HazardCyclone         HazardType = "cyclone"
	HazardCoastalFlooding HazardType = "coastal_flooding"
	HazardHighWaves       HazardType = "high_waves"
	HazardRipCurrent      HazardType = "rip_current"
	HazardCoastalErosion  HazardType = "coastal_erosion"
	HazardOther           HazardType = "other"
)

// NormalizeHazardType maps a raw hazard string onto the taxonomy.
func NormalizeHazardType(value string) HazardType {
	switch HazardType(value) {
	case HazardTsunami, HazardStormSurge, HazardCyclone, HazardCoastalFlooding,
		HazardHighWaves, HazardRipCurrent, HazardCoastalErosion:
		return HazardType(value)
	default:
		return HazardOther
	}
}

// VerificationStatus tracks how much human confirmation a signal has received.
// Social media signals carry their own status; they never count as verified.
type VerificationStatus string

const (
	VerificationUnverified        VerificationStatus = "unverified"
	VerificationPartiallyVerified VerificationStatus = "partially_verified"
	VerificationVerified          VerificationStatus = "verified"
	VerificationSocialMedia       VerificationStatus = "social_media"
)

// Signal is one normalized hazard observation from either source.
// Severity is in [1,5] and Confidence in [0,1] after normalization; a Signal
// is never mutated once created.
type Signal struct {
	Source       SourceKind         `json:"source"`
	Hazard       HazardType         `json:"hazard_type"`
	Location     Geo                `json:"location"`
	Severity     float64            `json:"severity"`
	Confidence   float64            `json:"confidence"`
	Timestamp    time.Time          `json:"timestamp"`
	LocationName string             `json:"location_name,omitempty"`
	Verification VerificationStatus `json:"verification_status"`
}

// CitizenReport is a raw report row as stored by the reporting API.
// The source yields only rows within the configured expiry window; no further
// time filtering happens here.
type CitizenReport struct {
	ID                 string    `json:"id"`
	HazardType         string    `json:"hazard_type"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Severity           int       `json:"severity"`
	PriorityScore      float64   `json:"priority_score"`
	Timestamp          time.Time `json:"timestamp"`
	LocationName       string    `json:"location_name"`
	VerificationStatus string    `json:"verification_status"`
}

// TrendSummary is a per-hazard social media trend produced by the NLP
// analysis service over its rolling window.
type TrendSummary struct {
	HazardType        string   `json:"hazard_type"`
	MentionCount      int      `json:"mention_count"`
	ConfidenceAvg     float64  `json:"confidence_avg"`
	SentimentScore    float64  `json:"sentiment_score"`
	UrgencyIndicators int      `json:"urgency_indicators"`
	TopAffectedAreas  []string `json:"top_affected_areas"`
}
