package domain

// ClusterParams controls the spatial grouping pass.
type ClusterParams struct {
	// RadiusKm is the maximum seed-to-member distance.
	RadiusKm float64
	// MinSignals is the minimum member count for a cluster with no citizen
	// report. A cluster containing any citizen report is always emitted.
	MinSignals int
}

// DefaultClusterParams matches the operational defaults: 10 km radius,
// two corroborating signals for social-only clusters.
func DefaultClusterParams() ClusterParams {
	return ClusterParams{RadiusKm: 10.0, MinSignals: 2}
}

// ClusterSignals partitions signals into geographic groups with a greedy
// seed-based single pass over input order. Each unprocessed signal becomes a
// seed and absorbs every later unprocessed signal within RadiusKm of the
// seed's location.
//
// Distance is checked against the seed only: two members can be further than
// RadiusKm apart, and a signal just outside the seed's radius is never
// re-tested against other members. Output parity with existing consumers
// depends on this order-dependent, non-transitive behavior.
//
// A group is emitted only if it has at least MinSignals members or contains a
// citizen report; an isolated citizen report always forms its own cluster.
func ClusterSignals(signals []Signal, params ClusterParams) [][]Signal {
	var groups [][]Signal
	processed := make([]bool, len(signals))

	for i := range signals {
		if processed[i] {
			continue
		}
		seed := signals[i].Location
		members := []Signal{signals[i]}

		for j := i + 1; j < len(signals); j++ {
			if processed[j] {
				continue
			}
			if DistanceKm(seed, signals[j].Location) <= params.RadiusKm {
				members = append(members, signals[j])
				processed[j] = true
			}
		}
		processed[i] = true

		if len(members) >= params.MinSignals || containsCitizenReport(members) {
			groups = append(groups, members)
		}
	}
	return groups
}

func containsCitizenReport(signals []Signal) bool {
	for _, s := range signals {
		if s.Source == SourceCitizenReport {
			return true
		}
	}
	return false
}
