package debug

// Memory/RSS logging enabled when config.Debug is true.
// Logs resident set size along with Go heap stats so native OpenCV and Tk
// allocations can be told apart from heap growth.

import (
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

var (
	procOnce sync.Once
	proc     *process.Process
	procErr  error
)

func self() (*process.Process, error) {
	procOnce.Do(func() {
		proc, procErr = process.NewProcess(int32(os.Getpid()))
	})
	return proc, procErr
}

// Snapshot holds one memory sample.
type Snapshot struct {
	Goroutines uint64
	HeapAlloc  uint64
	HeapInuse  uint64
	HeapSys    uint64
	NumGC      uint32
	RSS        uint64 // zero when the OS query failed
	VMS        uint64
}

// Sample reads Go runtime and process memory statistics.
func Sample() (Snapshot, error) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := Snapshot{
		Goroutines: goroutineCount(),
		HeapAlloc:  ms.HeapAlloc,
		HeapInuse:  ms.HeapInuse,
		HeapSys:    ms.HeapSys,
		NumGC:      ms.NumGC,
	}
	p, err := self()
	if err != nil {
		return s, err
	}
	mi, err := p.MemoryInfo()
	if err != nil {
		return s, err
	}
	s.RSS, s.VMS = mi.RSS, mi.VMS
	return s, nil
}

// LogStage logs a single memory sample tagged with a pipeline stage.
func LogStage(logger *slog.Logger, stage string) {
	if logger == nil {
		return
	}
	s, err := Sample()
	if err != nil {
		logger.Warn("memlog: process memory query failed", slog.String("err", err.Error()))
	}
	logger.Debug("memstats",
		slog.String("stage", stage),
		slog.Uint64("goroutines", s.Goroutines),
		slog.Uint64("heap_alloc", s.HeapAlloc),
		slog.Uint64("heap_inuse", s.HeapInuse),
		slog.Uint64("heap_sys", s.HeapSys),
		slog.Uint64("num_gc", uint64(s.NumGC)),
		slog.Uint64("rss", s.RSS),
		slog.Uint64("vms", s.VMS),
	)
}

// StartMemLogger launches a goroutine that logs memory stats every interval
// until the returned stop function is called. Query failures are logged once.
func StartMemLogger(interval time.Duration, logger *slog.Logger) (stop func()) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		var errLogged bool
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}
			s, err := Sample()
			if err != nil && !errLogged {
				logger.Warn("memlog: process memory query failed", slog.String("err", err.Error()))
				errLogged = true
			}
			logger.Info("memstats",
				slog.Uint64("goroutines", s.Goroutines),
				slog.Uint64("heap_alloc", s.HeapAlloc),
				slog.Uint64("heap_inuse", s.HeapInuse),
				slog.Uint64("rss", s.RSS),
				slog.Uint64("num_gc", uint64(s.NumGC)),
			)
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
