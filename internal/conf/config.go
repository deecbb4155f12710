package conf

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

// LogConf - Logging section of the benchmark configuration
type LogConf struct {
	Level string `toml:"level"`
}

// BenchConf - Configuration of the kvbench command
//   - Keys is the number of distinct keys inserted, looked up and erased per backend
//   - Seed seeds the shuffle of the keys
//   - Backends lists the backends to run, "hash" and/or "tree"
//   - InitialBins is the initial bin count of the hash table backend
//   - Histogram prints the hash table chain length histogram after the insert phase
//   - Diagnose prints the binary tree path length statistics after the insert phase
//   - Log holds the log level, one of debug, info, warn or error
type BenchConf struct {
	Keys        int      `toml:"keys"`
	Seed        int64    `toml:"seed"`
	Backends    []string `toml:"backends"`
	InitialBins int      `toml:"initial_bins"`
	Histogram   bool     `toml:"histogram"`
	Diagnose    bool     `toml:"diagnose"`
	Log         LogConf  `toml:"log"`
}

// DefaultBenchConf - Returns the configuration used when no file is given
func DefaultBenchConf() BenchConf {
	return BenchConf{
		Keys:        100000,
		Seed:        1,
		Backends:    []string{"hash", "tree"},
		InitialBins: InitialBins,
		Log:         LogConf{Level: "info"},
	}
}

// LoadBenchConf - Reads a TOML file on top of the defaults and validates the result. An empty fileName returns the
// defaults.
func LoadBenchConf(fileName string) (benchConf BenchConf, err error) {
	benchConf = DefaultBenchConf()
	if fileName != "" {
		if _, err = toml.DecodeFile(fileName, &benchConf); err != nil {
			err = fmt.Errorf("error while decoding config file %s: %w", fileName, err)
			return
		}
	}

	err = benchConf.Validate()
	return
}

// Validate - Checks that all values are usable
func (B BenchConf) Validate() error {
	if B.Keys < 1 {
		return fmt.Errorf("keys must be at least 1, got %d", B.Keys)
	}
	if B.InitialBins < 1 {
		return fmt.Errorf("initial_bins must be at least 1, got %d", B.InitialBins)
	}
	if len(B.Backends) == 0 {
		return fmt.Errorf("at least one backend must be given")
	}
	for _, b := range B.Backends {
		if b != "hash" && b != "tree" {
			return fmt.Errorf("unknown backend %q, use hash or tree", b)
		}
	}
	if _, err := B.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel - Parses the configured log level
func (B BenchConf) LogLevel() (level zapcore.Level, err error) {
	if err = level.UnmarshalText([]byte(B.Log.Level)); err != nil {
		err = fmt.Errorf("invalid log level %q: %w", B.Log.Level, err)
	}
	return
}
