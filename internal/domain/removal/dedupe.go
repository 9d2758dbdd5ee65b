package removal

import "time"

// ClusterWindow is the maximum removed-at distance between entries that
// are judged to describe the same real-world removal event.
const ClusterWindow = time.Second

// Dedupe collapses near-duplicate history entries for display. Pure,
// order-preserving and idempotent; stored rows are never touched.
//
// Entries are clustered greedily in input order: each entry is compared
// against the first entry of every open cluster, and joins the first
// cluster whose anchor is within ClusterWindow. Within a cluster, the
// earliest-encountered entry stands as the representative unless a later
// member carries both restoration fields while the representative has
// neither; then the later entry replaces it whole. Fields are never
// spliced across entries.
func Dedupe(entries []HistoryEntry) []HistoryEntry {
	if len(entries) == 0 {
		return nil
	}

	type cluster struct {
		anchor time.Time // removed-at of the first entry seen
		rep    HistoryEntry
	}
	var clusters []cluster

	for _, e := range entries {
		joined := false
		for i := range clusters {
			if absDelta(e.RemovedAt, clusters[i].anchor) < ClusterWindow {
				rep := &clusters[i].rep
				if e.HasRestoration() && rep.RestoredAt.IsZero() && rep.RestorationReason == "" {
					*rep = e
				}
				joined = true
				break
			}
		}
		if !joined {
			clusters = append(clusters, cluster{anchor: e.RemovedAt, rep: e})
		}
	}

	out := make([]HistoryEntry, len(clusters))
	for i := range clusters {
		out[i] = clusters[i].rep
	}
	return out
}

func absDelta(a, b time.Time) time.Duration {
	d := a.Sub(b)
	if d < 0 {
		return -d
	}
	return d
}
