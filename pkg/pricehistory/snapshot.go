package pricehistory

import "sort"

const (
	// MaxSnapshots caps how much history we keep per product
	MaxSnapshots = 90
	// RecentWindow is the number of trailing observations treated as "recent"
	// when looking for a pre-discount inflation bump
	RecentWindow = 30
)

// Snapshot is one (date, price) observation from the tracking site.
// Dates are ISO strings as delivered, so lexicographic order is chronological.
type Snapshot struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// SortAndCap orders snapshots chronologically and keeps the most recent MaxSnapshots.
// The tracker does not guarantee arrival order.
func SortAndCap(snapshots []Snapshot) []Snapshot {
	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].Date < snapshots[j].Date
	})
	if len(snapshots) > MaxSnapshots {
		return snapshots[len(snapshots)-MaxSnapshots:]
	}
	return snapshots
}
