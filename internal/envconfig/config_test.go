package envconfig

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/logutil"
)

func TestConfig(t *testing.T) {
	t.Setenv("NDARRAY_DEBUG", "")
	LoadConfig()
	require.False(t, Debug())
	t.Setenv("NDARRAY_DEBUG", "false")
	LoadConfig()
	require.False(t, Debug())
	t.Setenv("NDARRAY_DEBUG", "1")
	LoadConfig()
	require.True(t, Debug())
	t.Setenv("NDARRAY_DEBUG", "yes please")
	LoadConfig()
	require.True(t, Debug())
}

func TestLogLevel(t *testing.T) {
	cases := map[string]struct {
		debug, trace string
		expect       slog.Level
	}{
		"default":     {expect: slog.LevelInfo},
		"debug":       {debug: "1", expect: slog.LevelDebug},
		"trace":       {trace: "true", expect: logutil.LevelTrace},
		"both":        {debug: "1", trace: "1", expect: logutil.LevelTrace},
		"trace false": {debug: "1", trace: "0", expect: slog.LevelDebug},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("NDARRAY_DEBUG", tc.debug)
			t.Setenv("NDARRAY_TRACE", tc.trace)
			LoadConfig()
			assert.Equal(t, tc.expect, LogLevel())
		})
	}
}

func TestNumThreads(t *testing.T) {
	cases := map[string]struct {
		value  string
		expect int
	}{
		"empty":         {value: "", expect: runtime.NumCPU()},
		"set":           {value: "3", expect: 3},
		"quoted":        {value: "\"5\"", expect: 5},
		"extra space":   {value: " 2 ", expect: 2},
		"zero":          {value: "0", expect: runtime.NumCPU()},
		"negative":      {value: "-4", expect: runtime.NumCPU()},
		"not a number":  {value: "many", expect: runtime.NumCPU()},
		"single quotes": {value: "'7'", expect: 7},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("NDARRAY_NUM_THREADS", tc.value)
			LoadConfig()
			assert.Equal(t, tc.expect, NumThreads())
		})
	}
}

func TestMinChunk(t *testing.T) {
	t.Setenv("NDARRAY_MIN_CHUNK", "")
	LoadConfig()
	assert.Equal(t, defaultMinChunk, MinChunk())

	t.Setenv("NDARRAY_MIN_CHUNK", "1024")
	LoadConfig()
	assert.Equal(t, 1024, MinChunk())

	t.Setenv("NDARRAY_MIN_CHUNK", "-1")
	LoadConfig()
	assert.Equal(t, defaultMinChunk, MinChunk())
}

func TestValues(t *testing.T) {
	t.Setenv("NDARRAY_NUM_THREADS", "6")
	t.Setenv("NDARRAY_DEBUG", "1")
	LoadConfig()

	vals := Values()
	assert.Equal(t, "6", vals["NDARRAY_NUM_THREADS"])
	assert.Equal(t, "true", vals["NDARRAY_DEBUG"])
	assert.Len(t, vals, len(AsMap()))
	for k, v := range AsMap() {
		assert.Equal(t, k, v.Name)
		assert.NotEmpty(t, v.Description)
	}
}
