package domain

import (
	"log/slog"
	"math"
)

// NormalizeReports converts citizen report rows into signals. A malformed row
// (invalid coordinates, severity out of range, zero timestamp) is skipped with
// a warning; it never aborts the batch.
func NormalizeReports(reports []CitizenReport, logger *slog.Logger) []Signal {
	signals := make([]Signal, 0, len(reports))
	for _, r := range reports {
		loc := Geo{Lat: r.Latitude, Lon: r.Longitude}
		if !loc.Valid() {
			logger.Warn("skipping report with invalid coordinates",
				"report_id", r.ID, "lat", r.Latitude, "lon", r.Longitude)
			continue
		}
		if r.Severity < 1 || r.Severity > 5 {
			logger.Warn("skipping report with out-of-range severity",
				"report_id", r.ID, "severity", r.Severity)
			continue
		}
		if r.Timestamp.IsZero() {
			logger.Warn("skipping report with missing timestamp", "report_id", r.ID)
			continue
		}

		signals = append(signals, Signal{
			Source:       SourceCitizenReport,
			Hazard:       NormalizeHazardType(r.HazardType),
			Location:     loc,
			Severity:     float64(r.Severity),
			Confidence:   reportConfidence(r.PriorityScore),
			Timestamp:    r.Timestamp,
			LocationName: r.LocationName,
			Verification: reportVerification(r.VerificationStatus),
		})
	}
	return signals
}

// NormalizeTrends expands each (trend, affected area) pair into a signal
// positioned through the gazetteer. Areas the gazetteer cannot resolve are
// dropped silently; geocoding arbitrary place names is out of scope.
func NormalizeTrends(trends []TrendSummary, gazetteer Gazetteer, logger *slog.Logger) []Signal {
	var signals []Signal
	now := clock.Now()
	for _, trend := range trends {
		severity := trendSeverity(trend)
		confidence := clamp01(trend.ConfidenceAvg)
		for _, area := range trend.TopAffectedAreas {
			coords, ok := gazetteer.Resolve(area)
			if !ok {
				logger.Debug("dropping trend area not in gazetteer",
					"area", area, "hazard_type", trend.HazardType)
				continue
			}
			signals = append(signals, Signal{
				Source:       SourceSocialMedia,
				Hazard:       NormalizeHazardType(trend.HazardType),
				Location:     coords,
				Severity:     severity,
				Confidence:   confidence,
				Timestamp:    now,
				LocationName: area,
				Verification: VerificationSocialMedia,
			})
		}
	}
	return signals
}

// reportConfidence maps the intake priority score (0-5) onto [0,1].
func reportConfidence(priorityScore float64) float64 {
	return clamp01(priorityScore / 5.0)
}

// trendSeverity estimates a 1-5 severity from social media indicators:
// mention volume, sentiment intensity, and urgency keyword hits.
func trendSeverity(trend TrendSummary) float64 {
	score := float64(trend.MentionCount)/50.0 +
		2.0*math.Abs(trend.SentimentScore) +
		float64(trend.UrgencyIndicators)/10.0
	return math.Min(math.Floor(score)+1, 5)
}

func reportVerification(status string) VerificationStatus {
	switch VerificationStatus(status) {
	case VerificationPartiallyVerified, VerificationVerified:
		return VerificationStatus(status)
	default:
		return VerificationUnverified
	}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
