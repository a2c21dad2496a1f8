package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
	defaultBenchCount  = 100000
	defaultBenchRange  = 1000000
	defaultBenchDelete = 0.3
	defaultBenchSeed   = 1
)

// LogConfig selects the zap logger.
type LogConfig struct {
	Level  string `toml:"level" json:"level"`
	Format string `toml:"format" json:"format"`
}

// BenchConfig drives the random insert/delete workload.
type BenchConfig struct {
	Count       int     `toml:"count" json:"count"`
	Range       int     `toml:"range" json:"range"`
	DeleteRatio float64 `toml:"delete-ratio" json:"delete-ratio"`
	Seed        int64   `toml:"seed" json:"seed"`
}

// Config is the bst command configuration. Values given on the command line override
// the ones read from the config file.
type Config struct {
	configFile string

	Log    LogConfig   `toml:"log" json:"log"`
	Values []int       `toml:"values" json:"values"`
	Delete []int       `toml:"delete" json:"delete"`
	Bench  BenchConfig `toml:"bench" json:"bench"`
}

// NewConfig returns an empty config; call Parse to fill it.
func NewConfig() *Config {
	return &Config{}
}

// RegisterFlags adds the flags backing the config to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.configFile, "config", "", "config file")
	fs.StringVar(&c.Log.Level, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&c.Log.Format, "log-format", "", "log format: console or json")
	fs.IntSliceVar(&c.Delete, "delete", nil, "values to delete after building the tree")
	fs.IntVar(&c.Bench.Count, "count", 0, "number of operations of the bench workload")
	fs.IntVar(&c.Bench.Range, "range", 0, "values of the bench workload are drawn from [0, range)")
	fs.Float64Var(&c.Bench.DeleteRatio, "delete-ratio", 0, "share of deletions in the bench workload")
	fs.Int64Var(&c.Bench.Seed, "seed", 0, "random seed of the bench workload")
}

// Parse loads the config file if one was given on fs, then reapplies the flags that were
// set explicitly so they take precedence, and fills in the defaults.
func (c *Config) Parse(fs *flag.FlagSet) error {
	var meta *toml.MetaData
	if c.configFile != "" {
		// remember what the command line said before the file overwrites it
		cmdline := *c
		cmdline.Delete = append([]int(nil), c.Delete...)
		m, err := toml.DecodeFile(c.configFile, c)
		if err != nil {
			return errors.Annotatef(err, "failed to load config file %s", c.configFile)
		}
		if undecoded := m.Undecoded(); len(undecoded) > 0 {
			return errors.Errorf("config file %s contains unknown items %v", c.configFile, undecoded)
		}
		meta = &m
		c.override(fs, &cmdline)
	}
	return c.Adjust(meta)
}

func (c *Config) override(fs *flag.FlagSet, cmdline *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			c.Log.Level = cmdline.Log.Level
		case "log-format":
			c.Log.Format = cmdline.Log.Format
		case "delete":
			c.Delete = cmdline.Delete
		case "count":
			c.Bench.Count = cmdline.Bench.Count
		case "range":
			c.Bench.Range = cmdline.Bench.Range
		case "delete-ratio":
			c.Bench.DeleteRatio = cmdline.Bench.DeleteRatio
		case "seed":
			c.Bench.Seed = cmdline.Bench.Seed
		}
	})
}

func isDefined(meta *toml.MetaData, key ...string) bool {
	return meta != nil && meta.IsDefined(key...)
}

// Adjust fills in defaults for the items neither the file nor the flags set, and validates
// the result.
func (c *Config) Adjust(meta *toml.MetaData) error {
	if c.Log.Level == "" {
		c.Log.Level = defaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = defaultLogFormat
	}
	if c.Bench.Count == 0 && !isDefined(meta, "bench", "count") {
		c.Bench.Count = defaultBenchCount
	}
	if c.Bench.Range == 0 && !isDefined(meta, "bench", "range") {
		c.Bench.Range = defaultBenchRange
	}
	if c.Bench.DeleteRatio == 0 && !isDefined(meta, "bench", "delete-ratio") {
		c.Bench.DeleteRatio = defaultBenchDelete
	}
	if c.Bench.Seed == 0 && !isDefined(meta, "bench", "seed") {
		c.Bench.Seed = defaultBenchSeed
	}

	if c.Log.Format != "console" && c.Log.Format != "json" {
		return errors.Errorf("unknown log format %q", c.Log.Format)
	}
	if c.Bench.Count < 0 || c.Bench.Range <= 0 {
		return errors.Errorf("bench count must be >= 0 and range > 0, got %d and %d", c.Bench.Count, c.Bench.Range)
	}
	if c.Bench.DeleteRatio < 0 || c.Bench.DeleteRatio > 1 {
		return errors.Errorf("delete-ratio must be within [0, 1], got %v", c.Bench.DeleteRatio)
	}
	return nil
}

// NewLogger builds the zap logger described by c.Log.
func (c *Config) NewLogger() (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return nil, errors.Annotatef(err, "invalid log level %q", c.Log.Level)
	}
	zc := zap.NewProductionConfig()
	if c.Log.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	lg, err := zc.Build()
	return lg, errors.WithStack(err)
}
