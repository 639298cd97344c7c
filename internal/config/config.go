package config

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	EnvSeed  = "PONG_SEED"
	EnvDebug = "PONG_DEBUG"
)

// Config holds host settings shared by the binaries. Game rules are fixed
// and not part of it.
type Config struct {
	Seed  int64
	Debug bool
}

// FromEnv returns defaults overridden by PONG_SEED and PONG_DEBUG.
func FromEnv() (Config, error) {
	cfg := Config{Seed: time.Now().UnixNano()}

	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, s, err)
		}
		cfg.Seed = seed
	}

	if s := os.Getenv(EnvDebug); s != "" {
		debug, err := strconv.ParseBool(s)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvDebug, s, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

// RegisterFlags binds the settings to fs, using the current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for launches and paddle spin")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

func (c Config) Rand() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed))
}

func (c Config) Logger(out io.Writer) *logrus.Logger {
	lg := logrus.New()
	lg.Out = out
	lg.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	lg.Level = logrus.InfoLevel
	if c.Debug {
		lg.Level = logrus.DebugLevel
	}
	return lg
}
