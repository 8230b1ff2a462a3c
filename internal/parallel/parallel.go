// Package parallel runs element-wise array work on several goroutines. It
// splits an array into disjoint sub-views and hands each to its own worker.
package parallel

import (
	"sync"

	"github.com/born-ml/ndarray/internal/envconfig"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum elements per goroutine to avoid overhead.
}

// DefaultConfig reads NDARRAY_NUM_THREADS and NDARRAY_MIN_CHUNK.
func DefaultConfig() Config {
	n := envconfig.NumThreads()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: envconfig.MinChunk(),
	}
}

// Sequential runs everything on the calling goroutine.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

func (c Config) workers() int {
	return max(c.NumWorkers, 1)
}

// Ranges splits [0, n) into consecutive half-open ranges, one per worker,
// none shorter than MinChunkSize except the last. Disabled configs and small
// n give a single range.
func Ranges(n int, cfg Config) [][2]int {
	if n <= 0 {
		return nil
	}
	size := n
	if cfg.Enabled && n >= cfg.MinChunkSize {
		w := cfg.workers()
		size = max((n+w-1)/w, cfg.MinChunkSize, 1)
	}
	out := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		out = append(out, [2]int{start, min(start+size, n)})
	}
	return out
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ranges := Ranges(n, cfg)
	if len(ranges) <= 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	for _, r := range ranges {
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(r[0], r[1])
	}
	wg.Wait()
}
