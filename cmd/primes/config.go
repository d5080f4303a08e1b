package main

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jedisct1/dlog"

	"primes"
)

//go:embed primes.toml
var defaultConfig string

var errInvalidConfig = errors.New("invalid configuration")

type Config struct {
	WindowWidth      int            `toml:"window_width"`
	Rounds           int            `toml:"rounds"`
	Parallel         bool           `toml:"parallel"`
	LogLevel         int            `toml:"log_level"`
	LogFile          string         `toml:"log_file"`
	ReportFile       string         `toml:"report_file"`
	ReportMaxSize    int            `toml:"report_max_size"`
	ReportMaxBackups int            `toml:"report_max_backups"`
	ReportMaxAge     int            `toml:"report_max_age"`
	First            []uint64       `toml:"first"`
	Nth              []NthCase      `toml:"nth"`
	Divisors         []DivisorsCase `toml:"divisors"`
	IsPrime          []IsPrimeCase  `toml:"is_prime"`
}

type NthCase struct {
	N    uint64 `toml:"n"`
	Want uint64 `toml:"want"`
}

type DivisorsCase struct {
	N    uint64     `toml:"n"`
	Want [][]uint64 `toml:"want"`
}

type IsPrimeCase struct {
	N    uint64 `toml:"n"`
	Want bool   `toml:"want"`
}

func newConfig() Config {
	return Config{
		WindowWidth:      primes.DefaultConfig().WindowWidth,
		Rounds:           1,
		LogLevel:         int(dlog.SeverityNotice),
		ReportMaxSize:    10,
		ReportMaxBackups: 3,
		ReportMaxAge:     7,
	}
}

// LoadConfig reads the configuration file at path, or the built-in reference
// table when path is empty.
func LoadConfig(path string) (Config, error) {
	config := newConfig()
	var (
		md  toml.MetaData
		err error
	)
	if path == "" {
		md, err = toml.Decode(defaultConfig, &config)
	} else {
		md, err = toml.DecodeFile(path, &config)
	}
	if err != nil {
		return Config{}, fmt.Errorf("unable to load the configuration: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("%w: unsupported keys [%s]", errInvalidConfig, strings.Join(keys, ", "))
	}
	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (config *Config) validate() error {
	if config.WindowWidth < 1 || config.WindowWidth > primes.MaxWindowWidth {
		return fmt.Errorf("%w: window_width must be between 1 and %d", errInvalidConfig, primes.MaxWindowWidth)
	}
	if config.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1", errInvalidConfig)
	}
	if config.LogLevel < int(dlog.SeverityDebug) || config.LogLevel > int(dlog.SeverityFatal) {
		return fmt.Errorf("%w: log_level must be between %d and %d", errInvalidConfig, dlog.SeverityDebug, dlog.SeverityFatal)
	}
	for i := 1; i < len(config.First); i++ {
		if config.First[i] <= config.First[i-1] {
			return fmt.Errorf("%w: first must be strictly increasing", errInvalidConfig)
		}
	}
	for _, c := range config.Divisors {
		for _, pair := range c.Want {
			if len(pair) != 2 {
				return fmt.Errorf("%w: divisors of %d must be [prime, exponent] pairs", errInvalidConfig, c.N)
			}
		}
	}
	return nil
}
