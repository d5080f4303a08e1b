package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/jedisct1/dlog"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Run executes every configured check and writes the outcome to out. It
// reports whether all checks passed; reporting stops at the first failure.
func Run(ctx context.Context, config Config, out io.Writer) (bool, error) {
	checks := buildChecks(config)
	dlog.Debugf("Running %d checks, %d round(s) each", len(checks), config.Rounds)

	results := make([]Result, 0, len(checks))
	if config.Parallel {
		// Each check builds its own sequences, so they can run side by side.
		results = results[:len(checks)]
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, check := range checks {
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				results[i] = measure(check, config.Rounds)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return false, err
		}
	} else {
		for _, check := range checks {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			result := measure(check, config.Rounds)
			results = append(results, result)
			if !result.Passed {
				break
			}
		}
	}

	return writeReport(out, results)
}

func writeReport(out io.Writer, results []Result) (bool, error) {
	for _, result := range results {
		dlog.Debugf("[%s] passed=%t elapsed=%v", result.Name, result.Passed, result.Elapsed)
		if !result.Passed {
			if _, err := fmt.Fprintf(out, "%s failed\n%s\n", result.Name, result.Detail); err != nil {
				return false, err
			}
			return false, nil
		}
		ms := float64(result.Elapsed.Nanoseconds()) / 1e6
		if _, err := fmt.Fprintf(out, "%s passed in %.3fms\n", result.Name, ms); err != nil {
			return false, err
		}
	}
	return true, nil
}

// reportWriter returns where the report goes: stdout, or a rotated file.
func reportWriter(config Config) io.WriteCloser {
	if config.ReportFile == "" || config.ReportFile == "/dev/stdout" {
		return nopCloser{os.Stdout}
	}
	return &lumberjack.Logger{
		LocalTime:  true,
		MaxSize:    config.ReportMaxSize,
		MaxAge:     config.ReportMaxAge,
		MaxBackups: config.ReportMaxBackups,
		Filename:   config.ReportFile,
		Compress:   true,
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
