package report

import (
	"sort"

	"github.com/SM0HANTY/System-Monitor-Tool/pkg/types"
)

// MoreResident reports whether a outranks b by resident memory. Processes
// with equal RSS have no defined relative order.
func MoreResident(a, b types.ProcessSnapshot) bool {
	return a.ResidentKB > b.ResidentKB
}

// TopByResident returns up to limit snapshots ordered by resident memory
// descending. The input slice is left untouched; callers keep len(snaps) as
// the true process count for the summary line.
func TopByResident(snaps []types.ProcessSnapshot, limit int) []types.ProcessSnapshot {
	ordered := make([]types.ProcessSnapshot, len(snaps))
	copy(ordered, snaps)

	sort.Slice(ordered, func(i, j int) bool {
		return MoreResident(ordered[i], ordered[j])
	})

	if limit < 0 {
		limit = 0
	}
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}
