// Package domain models coastal hazard signals and their aggregation into
// threat clusters.
//
// # Data Sources
//
// Two heterogeneous sources feed the aggregation:
//
//   - Citizen reports: discrete, geotagged observations submitted through the
//     reporting API and stored in Postgres. Each carries a 1-5 severity set by
//     the reporter and a priority score assigned at intake.
//   - Social media trends: per-hazard summaries produced by the NLP analysis
//     service over a rolling window (mention counts, average classifier
//     confidence, sentiment, urgency indicators, top affected areas).
//
// Both are normalized into the uniform Signal representation before
// clustering. Social trends are positioned through the static Gazetteer of
// known coastal cities; areas the gazetteer cannot resolve produce no signal.
//
// # Aggregation
//
// Signals are grouped by a greedy seed-based spatial pass: each unprocessed
// signal seeds a cluster and absorbs every later unprocessed signal within the
// clustering radius of the seed. Distance is measured seed-to-member only, not
// pairwise between members, so membership depends on input order. Downstream
// consumers rely on this exact semantics; do not replace it with transitive
// closure.
//
// Each cluster is fused into a ThreatCluster: modal hazard type, mean center,
// max-distance radius, source-weighted confidence, and a categorical severity
// derived from the mean numeric severity via fixed thresholds
// (>=4 critical, >=3 high, >=2 medium, else low).
package domain
