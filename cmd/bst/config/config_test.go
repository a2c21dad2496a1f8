package config

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, cfg.Parse(fs)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	f := filepath.Join(t.TempDir(), "bst.toml")
	require.NoError(t, os.WriteFile(f, []byte(content), 0o644))
	return f
}

func TestDefaults(t *testing.T) {
	re := require.New(t)
	cfg, err := parse(t)
	re.NoError(err)
	re.Equal(defaultLogLevel, cfg.Log.Level)
	re.Equal(defaultLogFormat, cfg.Log.Format)
	re.Equal(defaultBenchCount, cfg.Bench.Count)
	re.Equal(defaultBenchRange, cfg.Bench.Range)
	re.Equal(defaultBenchDelete, cfg.Bench.DeleteRatio)
	re.Equal(int64(defaultBenchSeed), cfg.Bench.Seed)
	re.Empty(cfg.Values)
}

func TestConfigFile(t *testing.T) {
	re := require.New(t)
	f := writeConfig(t, `
values = [5, 2, 8]
delete = [2]

[log]
level = "warn"
format = "json"

[bench]
count = 10
delete-ratio = 0.0
`)
	cfg, err := parse(t, "--config", f, "--log-level", "debug", "--range", "50")
	re.NoError(err)
	re.Equal([]int{5, 2, 8}, cfg.Values)
	re.Equal([]int{2}, cfg.Delete)
	re.Equal("debug", cfg.Log.Level) // flag wins over file
	re.Equal("json", cfg.Log.Format)
	re.Equal(10, cfg.Bench.Count)
	re.Equal(50, cfg.Bench.Range)
	re.Equal(0.0, cfg.Bench.DeleteRatio) // explicitly set in file, no default
}

func TestConfigFile_Errors(t *testing.T) {
	_, err := parse(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)

	_, err = parse(t, "--config", writeConfig(t, "unknown = 1\n"))
	require.ErrorContains(t, err, "unknown items")

	_, err = parse(t, "--log-format", "xml")
	require.ErrorContains(t, err, "unknown log format")

	_, err = parse(t, "--delete-ratio", "1.5")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg, err := parse(t, "--log-format", "json", "--log-level", "warn")
	require.NoError(t, err)
	lg, err := cfg.NewLogger()
	require.NoError(t, err)
	require.NotNil(t, lg)

	cfg.Log.Level = "loud"
	_, err = cfg.NewLogger()
	require.ErrorContains(t, err, "invalid log level")
}
