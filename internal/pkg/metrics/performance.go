package metrics

import (
	"runtime"
	"time"
)

type PerformanceMetrics struct {
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	MemoryUsage  uint64
	AllocObjects uint64
	GCCycles     uint32
}

// CapturePerformance runs fn and measures its wall time and allocation
// footprint. Used to attribute per-analysis cost in the session metrics.
func CapturePerformance(fn func()) *PerformanceMetrics {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)
	startAlloc := stats.TotalAlloc
	startGC := stats.NumGC

	perf := &PerformanceMetrics{
		StartTime: time.Now(),
	}

	fn()

	runtime.ReadMemStats(&stats)
	perf.EndTime = time.Now()
	perf.Duration = perf.EndTime.Sub(perf.StartTime)
	perf.MemoryUsage = stats.TotalAlloc - startAlloc
	perf.AllocObjects = stats.Mallocs - stats.Frees
	perf.GCCycles = stats.NumGC - startGC

	return perf
}
