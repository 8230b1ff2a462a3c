package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/envconfig"
)

func testConfig() Config {
	return Config{Enabled: true, NumWorkers: 4, MinChunkSize: 2}
}

func TestFor(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 1000
	hits := make([]int32, n)
	For(n, func(i int) {
		atomic.AddInt32(&hits[i], 1)
	}, cfg)

	for i, h := range hits {
		require.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, Config{Enabled: false})
	assert.Equal(t, int64(100), counter)
}

func TestFor_SmallChunk(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 8, MinChunkSize: 64}

	var counter int64
	n := cfg.MinChunkSize - 1
	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)
	assert.Equal(t, int64(n), counter)
	assert.Len(t, Ranges(n, cfg), 1)
}

func TestRanges(t *testing.T) {
	cases := map[string]struct {
		n      int
		cfg    Config
		expect [][2]int
	}{
		"empty":        {n: 0, cfg: testConfig(), expect: nil},
		"disabled":     {n: 10, cfg: Config{NumWorkers: 4}, expect: [][2]int{{0, 10}}},
		"below chunk":  {n: 3, cfg: Config{Enabled: true, NumWorkers: 4, MinChunkSize: 4}, expect: [][2]int{{0, 3}}},
		"even":         {n: 100, cfg: Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}, expect: [][2]int{{0, 25}, {25, 50}, {50, 75}, {75, 100}}},
		"chunk floor":  {n: 10, cfg: Config{Enabled: true, NumWorkers: 4, MinChunkSize: 4}, expect: [][2]int{{0, 4}, {4, 8}, {8, 10}}},
		"zero workers": {n: 5, cfg: Config{Enabled: true, MinChunkSize: 1}, expect: [][2]int{{0, 5}}},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Ranges(tc.n, tc.cfg))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Cleanup(envconfig.LoadConfig)
	t.Setenv("NDARRAY_NUM_THREADS", "3")
	t.Setenv("NDARRAY_MIN_CHUNK", "16")
	envconfig.LoadConfig()

	assert.Equal(t, Config{Enabled: true, NumWorkers: 3, MinChunkSize: 16}, DefaultConfig())

	t.Setenv("NDARRAY_NUM_THREADS", "1")
	envconfig.LoadConfig()
	assert.False(t, DefaultConfig().Enabled)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
