package debug

import (
	"runtime/metrics"
)

// goroutineCount reads the live goroutine count from runtime metrics.
func goroutineCount() uint64 {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	if samples[0].Value.Kind() != metrics.KindUint64 {
		return 0
	}
	return samples[0].Value.Uint64()
}
