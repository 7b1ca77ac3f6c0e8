package attribution

// baseOrder is the fixed 5-bucket order every summary emits; Summarize
// always emits these five rows, plus a sixth DataLoading row only when at
// least one input Row actually classified into that bucket.
var baseOrder = []BoundBy{CPUBound, GPUKernel, LaunchDelay, KernelKernel, SyncStall}

// Summarize aggregates total critical time and edge count per BoundBy
// bucket.
func Summarize(rows []Row) []SummaryRow {
	totals := make(map[BoundBy]int64, len(baseOrder)+1)
	counts := make(map[BoundBy]int, len(baseOrder)+1)
	sawDataLoading := false

	for _, r := range rows {
		totals[r.BoundBy] += r.Weight
		counts[r.BoundBy]++
		if r.BoundBy == DataLoading {
			sawDataLoading = true
		}
	}

	order := baseOrder
	if sawDataLoading {
		order = append(append([]BoundBy{}, baseOrder...), DataLoading)
	}

	out := make([]SummaryRow, 0, len(order))
	for _, b := range order {
		out = append(out, SummaryRow{BoundBy: b, TotalNS: totals[b], EdgeCount: counts[b]})
	}
	return out
}
