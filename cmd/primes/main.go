package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/jedisct1/dlog"
)

const AppName = "primes"

func main() {
	dlog.Init(AppName, dlog.SeverityNotice, "DAEMON")
	configFile := flag.String("config", "", "path to the configuration file (built-in reference table when empty)")
	rounds := flag.Int("rounds", 0, "number of timing rounds per check (overrides the configuration)")
	parallel := flag.Bool("parallel", false, "run independent checks concurrently")
	flag.Parse()

	config, err := LoadConfig(*configFile)
	if err != nil {
		dlog.Fatal(err)
	}
	if *rounds > 0 {
		config.Rounds = *rounds
	}
	if *parallel {
		config.Parallel = true
	}
	configureLogging(config)

	os.Exit(run(config))
}

func configureLogging(config Config) {
	dlog.SetLogLevel(dlog.Severity(config.LogLevel))
	if config.LogFile != "" {
		dlog.UseLogFile(config.LogFile)
	}
}

func run(config Config) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out := reportWriter(config)
	defer out.Close()

	start := time.Now()
	passed, err := Run(ctx, config, out)
	if err != nil {
		dlog.Error(err)
		return 2
	}
	if !passed {
		dlog.Error("Verification failed")
		return 1
	}
	dlog.Noticef("All checks passed in %v", time.Since(start).Round(time.Millisecond))
	return 0
}
