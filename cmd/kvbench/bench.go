package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/gostonefire/kvengine"
	"github.com/gostonefire/kvengine/crt"
	"github.com/gostonefire/kvengine/internal/conf"
	"go.uber.org/zap"
)

// benchResult - Timings of one backend run
type benchResult struct {
	Backend       string
	Inserts       time.Duration
	Lookups       time.Duration
	Removals      time.Duration
	FailedLookups time.Duration
}

// shuffledKeys - Returns 0..n-1 in an order given by seed
func shuffledKeys(n int, seed int64) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	rnd := rand.New(rand.NewSource(seed))
	rnd.Shuffle(n, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	return keys
}

// newBenchMap - Creates the map for the named backend
func newBenchMap(backend string, benchConf conf.BenchConf, logger *zap.Logger) (*kvengine.Map[int, int], error) {
	switch backend {
	case "hash":
		return kvengine.NewMap[int, int](kvengine.Conf[int]{
			Backend:     crt.HashTable,
			InitialBins: benchConf.InitialBins,
			Logger:      logger,
		})
	case "tree":
		return kvengine.NewTreeMap[int, int](), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

// runBackend - Inserts all keys, looks them all up, erases the second half and looks the erased half up again.
// Every lookup is verified, a mismatch is returned as an error.
func runBackend(backend string, keys []int, benchConf conf.BenchConf, w io.Writer, logger *zap.Logger) (result benchResult, err error) {
	m, err := newBenchMap(backend, benchConf, logger)
	if err != nil {
		return
	}
	result.Backend = crt.BackendName(m.Backend())

	start := time.Now()
	for i, k := range keys {
		m.Insert(k, i)
	}
	result.Inserts = time.Since(start)

	if backend == "hash" && benchConf.Histogram || backend == "tree" && benchConf.Diagnose {
		if err = m.Diagnose(w); err != nil {
			return
		}
	}

	start = time.Now()
	for i, k := range keys {
		var v int
		if v, err = m.At(k); err != nil {
			return
		}
		if v != i {
			err = fmt.Errorf("lookup of key %d in %s returned %d, expected %d", k, backend, v, i)
			return
		}
	}
	result.Lookups = time.Since(start)

	half := len(keys) / 2
	start = time.Now()
	for _, k := range keys[half:] {
		if err = m.Erase(k); err != nil {
			return
		}
	}
	result.Removals = time.Since(start)

	start = time.Now()
	for _, k := range keys[half:] {
		if m.Contains(k) {
			err = fmt.Errorf("erased key %d still present in %s", k, backend)
			return
		}
	}
	result.FailedLookups = time.Since(start)

	if m.Size() != half {
		err = fmt.Errorf("%s holds %d entries after removals, expected %d", backend, m.Size(), half)
	}

	return
}

// runBench - Runs all configured backends and logs their timings
func runBench(benchConf conf.BenchConf, w io.Writer, logger *zap.Logger) (results []benchResult, err error) {
	keys := shuffledKeys(benchConf.Keys, benchConf.Seed)
	for _, backend := range benchConf.Backends {
		var result benchResult
		if result, err = runBackend(backend, keys, benchConf, w, logger); err != nil {
			err = fmt.Errorf("error while running %s backend: %w", backend, err)
			return
		}
		logger.Info("backend done",
			zap.String("backend", result.Backend),
			zap.Int("keys", len(keys)),
			zap.Duration("inserts", result.Inserts),
			zap.Duration("lookups", result.Lookups),
			zap.Duration("removals", result.Removals),
			zap.Duration("failedLookups", result.FailedLookups),
		)
		results = append(results, result)
	}

	return
}
