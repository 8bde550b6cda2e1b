package debug

// Runtime stats logger enabled when config.Debug is true. Emits goroutine
// count and heap figures at a fixed interval to correlate memory growth with
// repeated preview recomputes, which allocate a full image clone each time.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// StartStatsLogger launches a ticker that logs goroutine count and memory
// stats. It is lightweight; disable by running without the debug flag.
func StartStatsLogger(interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for range t.C {
			metrics.Read(samples)
			goroutines := samples[0].Value.Uint64()
			var ms runtime.MemStats
			runtime.ReadMemStats(&ms)
			logger.Info("runtime-stats",
				slog.Uint64("goroutines", goroutines),
				slog.Uint64("heap_alloc", ms.HeapAlloc),
				slog.Uint64("heap_inuse", ms.HeapInuse),
				slog.Uint64("heap_sys", ms.HeapSys),
				slog.Uint64("next_gc", ms.NextGC),
				slog.Uint64("num_gc", uint64(ms.NumGC)),
			)
		}
	}()
}
