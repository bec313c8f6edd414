package metrics

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/cpu"

	"crackTimeBackend/internal/core/domain"
)

// Collector samples process resource usage and analysis throughput for a
// serve session. Passwords never pass through here; only counts do.
type Collector struct {
	mu             sync.RWMutex
	sessions       map[string]*domain.SessionMetrics
	updateInterval time.Duration
}

func NewCollector(interval time.Duration) *Collector {
	return &Collector{
		sessions:       make(map[string]*domain.SessionMetrics),
		updateInterval: interval,
	}
}

func (c *Collector) StartCollection(sessionID string) {
	c.mu.Lock()
	c.sessions[sessionID] = &domain.SessionMetrics{
		LastUpdated: time.Now(),
	}
	c.mu.Unlock()

	go c.collect(sessionID)
}

func (c *Collector) StopCollection(sessionID string) {
	c.mu.Lock()
	delete(c.sessions, sessionID)
	c.mu.Unlock()
}

func (c *Collector) GetMetrics(sessionID string) domain.SessionMetrics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if metrics, exists := c.sessions[sessionID]; exists {
		return *metrics
	}
	return domain.SessionMetrics{}
}

// RecordAnalysis bumps the throughput counters after one completed analysis.
func (c *Collector) RecordAnalysis(sessionID string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	metrics, exists := c.sessions[sessionID]
	if !exists {
		return
	}

	metrics.TotalAnalyses++
	if seconds := duration.Seconds(); seconds > 0 {
		metrics.AnalysesPerSec = int64(1 / seconds)
	}
}

func (c *Collector) collect(sessionID string) {
	ticker := time.NewTicker(c.updateInterval)
	defer ticker.Stop()

	for {
		c.mu.RLock()
		_, exists := c.sessions[sessionID]
		c.mu.RUnlock()
		if !exists {
			return
		}

		cpuUsage, _ := cpu.Percent(c.updateInterval, false)

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		c.mu.Lock()
		if metrics, ok := c.sessions[sessionID]; ok {
			if len(cpuUsage) > 0 {
				metrics.CPUUsage = cpuUsage[0]
			}
			metrics.MemoryUsageMB = int64(m.Alloc / 1024 / 1024)
			metrics.LastUpdated = time.Now()
		}
		c.mu.Unlock()

		<-ticker.C
	}
}
