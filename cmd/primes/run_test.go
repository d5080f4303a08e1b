package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	config := newConfig()
	config.WindowWidth = 8
	config.First = []uint64{2, 3, 5, 7, 11, 13}
	config.Nth = []NthCase{{N: 5, Want: 11}, {N: 100, Want: 541}}
	config.Divisors = []DivisorsCase{
		{N: 504, Want: [][]uint64{{2, 3}, {3, 2}, {7, 1}}},
		{N: 1, Want: [][]uint64{}},
	}
	config.IsPrime = []IsPrimeCase{{N: 53, Want: true}, {N: 51, Want: false}}
	return config
}

func TestRun(t *testing.T) {
	var out bytes.Buffer
	passed, err := Run(context.Background(), smallConfig(), &out)
	require.NoError(t, err)
	assert.True(t, passed)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "First passed in "))
	assert.True(t, strings.HasPrefix(lines[1], "Below passed in "))
	assert.True(t, strings.HasPrefix(lines[3], "100th passed in "))
	assert.True(t, strings.HasPrefix(lines[7], "IsPrime 51 passed in "))
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	config := smallConfig()
	config.Nth = []NthCase{{N: 5, Want: 11}, {N: 10, Want: 31}, {N: 100, Want: 541}}

	for _, parallel := range []bool{false, true} {
		config.Parallel = parallel

		var out bytes.Buffer
		passed, err := Run(context.Background(), config, &out)
		require.NoError(t, err)
		assert.False(t, passed)

		report := out.String()
		assert.Contains(t, report, "10th failed\nExpected: 31\nGot: 29\n")
		assert.NotContains(t, report, "100th")
		assert.NotContains(t, report, "Divisors")
	}
}

func TestRunParallel(t *testing.T) {
	config := smallConfig()
	config.Parallel = true
	config.Rounds = 3

	var sequential, parallel bytes.Buffer
	passed, err := Run(context.Background(), config, &parallel)
	require.NoError(t, err)
	assert.True(t, passed)

	config.Parallel = false
	_, err = Run(context.Background(), config, &sequential)
	require.NoError(t, err)

	assert.Equal(t, checkNames(sequential.String()), checkNames(parallel.String()))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := Run(ctx, smallConfig(), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestFirstCheckDetectsMismatch(t *testing.T) {
	check := firstCheck([]uint64{2, 3, 4}, nil)
	passed, detail := check.run()
	assert.False(t, passed)
	assert.Equal(t, "First 3 failed\nExpected: [2 3 4]\nGot: [2 3 5]", detail)
}

func TestBelowCheckDetectsMismatch(t *testing.T) {
	check := belowCheck([]uint64{2, 3, 7}, nil)
	passed, detail := check.run()
	assert.False(t, passed)
	assert.Equal(t, "Below 5 failed\nExpected: [2 3]\nGot: [2 3 5]", detail)
}

func TestNthCheckNone(t *testing.T) {
	passed, detail := nthCheck(NthCase{N: 0, Want: 2}, nil).run()
	assert.False(t, passed)
	assert.Equal(t, "Expected: 2\nGot: none", detail)
}

func TestReportWriterDefaultsToStdout(t *testing.T) {
	w := reportWriter(newConfig())
	_, ok := w.(nopCloser)
	assert.True(t, ok)
	assert.NoError(t, w.Close())
}

func checkNames(report string) []string {
	var names []string
	for _, line := range strings.Split(strings.TrimSpace(report), "\n") {
		name, _, _ := strings.Cut(line, " passed in ")
		names = append(names, name)
	}
	return names
}
