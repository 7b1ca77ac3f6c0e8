package attribution

import "fmt"

// BoundBy classifies which resource limited progress across one critical
// edge.
type BoundBy uint8

const (
	CPUBound BoundBy = iota
	GPUKernel
	LaunchDelay
	KernelKernel
	SyncStall
	DataLoading
)

func (b BoundBy) String() string {
	switch b {
	case CPUBound:
		return "cpu_bound"
	case GPUKernel:
		return "gpu_kernel"
	case LaunchDelay:
		return "launch_delay"
	case KernelKernel:
		return "kernel_kernel"
	case SyncStall:
		return "sync_stall"
	case DataLoading:
		return "data_loading"
	default:
		return fmt.Sprintf("bound_by(%d)", uint8(b))
	}
}

// Row is one line of the per-edge critical-path breakdown.
type Row struct {
	EventName string
	Category  string // the edge's core.EdgeCategory, rendered
	Weight    int64
	BoundBy   BoundBy
}

// SummaryRow is one aggregated line of the summary: total critical time
// attributed to one BoundBy bucket.
type SummaryRow struct {
	BoundBy   BoundBy
	TotalNS   int64
	EdgeCount int
}
