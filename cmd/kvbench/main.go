package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gostonefire/kvengine/internal/conf"
	"go.uber.org/zap"
)

func main() {
	configFile := flag.String("config", "", "path to a TOML configuration file")
	keys := flag.Int("keys", 0, "number of keys, overrides the configuration file")
	flag.Parse()

	benchConf, err := conf.LoadBenchConf(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *keys > 0 {
		benchConf.Keys = *keys
	}

	level, _ := benchConf.LogLevel()
	logConf := zap.NewProductionConfig()
	logConf.Level = zap.NewAtomicLevelAt(level)
	logger, err := logConf.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error while creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if _, err = runBench(benchConf, os.Stdout, logger); err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		os.Exit(1)
	}
}
