// Package envconfig reads the NDARRAY_* environment variables that tune
// logging and the parallel worker pool.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/born-ml/ndarray/internal/logutil"
)

const defaultMinChunk = 64

var (
	// Set via NDARRAY_DEBUG in the environment
	debug bool
	// Set via NDARRAY_TRACE in the environment
	trace bool
	// Set via NDARRAY_NUM_THREADS in the environment
	numThreads int
	// Set via NDARRAY_MIN_CHUNK in the environment
	minChunk int
)

// Debug reports whether debug logging is enabled.
func Debug() bool { return debug }

// NumThreads is the worker count for parallel operations. Zero or less is
// never returned.
func NumThreads() int { return numThreads }

// MinChunk is the smallest number of elements handed to one worker.
func MinChunk() int { return minChunk }

// LogLevel maps NDARRAY_TRACE and NDARRAY_DEBUG to a slog level.
func LogLevel() slog.Level {
	switch {
	case trace:
		return logutil.LevelTrace
	case debug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"NDARRAY_DEBUG":       {"NDARRAY_DEBUG", debug, "Show additional debug information (e.g. NDARRAY_DEBUG=1)"},
		"NDARRAY_TRACE":       {"NDARRAY_TRACE", trace, "Log how parallel work is partitioned"},
		"NDARRAY_NUM_THREADS": {"NDARRAY_NUM_THREADS", numThreads, "Maximum number of parallel workers (default number of CPUs)"},
		"NDARRAY_MIN_CHUNK":   {"NDARRAY_MIN_CHUNK", minChunk, fmt.Sprintf("Minimum elements per worker (default %d)", defaultMinChunk)},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// Clean quotes and spaces from the value
func clean(key string) string {
	return strings.Trim(os.Getenv(key), "\"' ")
}

func init() {
	LoadConfig()
}

// LoadConfig rereads the environment. Invalid numbers are logged and the
// default is kept.
func LoadConfig() {
	debug = false
	if v := clean("NDARRAY_DEBUG"); v != "" {
		d, err := strconv.ParseBool(v)
		debug = err != nil || d
	}

	trace = false
	if v := clean("NDARRAY_TRACE"); v != "" {
		d, err := strconv.ParseBool(v)
		trace = err != nil || d
	}

	numThreads = runtime.NumCPU()
	if v := clean("NDARRAY_NUM_THREADS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			slog.Error("invalid setting must be greater than zero", "NDARRAY_NUM_THREADS", v, "error", err)
		} else {
			numThreads = n
		}
	}

	minChunk = defaultMinChunk
	if v := clean("NDARRAY_MIN_CHUNK"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			slog.Error("invalid setting must be greater than zero", "NDARRAY_MIN_CHUNK", v, "error", err)
		} else {
			minChunk = n
		}
	}
}
