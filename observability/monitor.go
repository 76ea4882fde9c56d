// Package observability reports delivery and process health over slog.
package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"

	"duochat/pubsub"
)

// StatsProvider yields a delivery counter snapshot. The bus implements it.
type StatsProvider interface {
	Stats() pubsub.Stats
}

// Monitor periodically logs bus delivery counters together with process
// CPU and memory usage. It observes only; it never mutates engine state.
type Monitor struct {
	log      *slog.Logger
	stats    StatsProvider
	interval time.Duration
}

func NewMonitor(log *slog.Logger, stats StatsProvider, interval time.Duration) *Monitor {
	return &Monitor{log: log, stats: stats, interval: interval}
}

// Run blocks until the context ends, emitting one report per interval.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.report(proc)
		}
	}
}

func (m *Monitor) report(proc *process.Process) {
	stats := m.stats.Stats()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	var cpuPercent float64
	var rss uint64
	if cpu, err := proc.CPUPercent(); err == nil {
		cpuPercent = cpu
	}
	if memInfo, err := proc.MemoryInfo(); err == nil && memInfo != nil {
		rss = memInfo.RSS
	}

	m.log.Info("delivery report",
		"published", stats.Published,
		"delivered", stats.Delivered,
		"dropped", stats.Dropped,
		"goroutines", runtime.NumGoroutine(),
		"alloc_mb", memStats.Alloc/1024/1024,
		"rss_mb", rss/1024/1024,
		"cpu_percent", cpuPercent,
	)
}
