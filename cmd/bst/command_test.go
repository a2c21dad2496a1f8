package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/g-m-twostay/bst/cmd/bst/config"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildCommand(t *testing.T) {
	re := require.New(t)
	out, err := execute(t, "build", "--log-level", "error", "50", "30", "70", "20", "40", "60", "80")
	re.NoError(err)
	re.Contains(out, "size: 7\n")
	re.Contains(out, "height: 2\n")
	re.Contains(out, "inorder: [20 30 40 50 60 70 80]\n")
	re.Contains(out, "levelorder: [50 30 70 20 40 60 80]\n")
	re.Contains(out, "leaves: 4, one child: 0, two children: 3\n")
	re.Contains(out, "min: 20, max: 80\n")
}

func TestBuildCommand_Delete(t *testing.T) {
	re := require.New(t)
	out, err := execute(t, "build", "--log-level", "error", "--delete", "30,99", "50", "30", "70", "20", "40", "60", "80")
	re.NoError(err)
	re.Contains(out, "size: 6\n")
	re.Contains(out, "preorder: [50 40 20 70 60 80]\n")
}

func TestBuildCommand_ConfigFile(t *testing.T) {
	re := require.New(t)
	f := filepath.Join(t.TempDir(), "bst.toml")
	re.NoError(os.WriteFile(f, []byte("values = [3, 1, 2]\n[log]\nlevel = \"error\"\n"), 0o644))
	out, err := execute(t, "build", "--config", f)
	re.NoError(err)
	re.Contains(out, "preorder: [3 1 2]\n")
	re.Contains(out, "balanced: false, valid: true\n")
}

func TestBuildCommand_Empty(t *testing.T) {
	out, err := execute(t, "build", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "size: 0\n")
	require.NotContains(t, out, "min:")
}

func TestBuildCommand_InvalidValue(t *testing.T) {
	_, err := execute(t, "build", "--log-level", "error", "1", "x")
	require.ErrorContains(t, err, `invalid value "x"`)
}

func TestDisplayCommand(t *testing.T) {
	out, err := execute(t, "display", "--log-level", "error", "2", "1", "3")
	require.NoError(t, err)
	require.Equal(t, "└── 2\n    ├── 3\n    └── 1\n", out)
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--log-level", "error", "--count", "2000", "--range", "500")
	require.NoError(t, err)
	require.Contains(t, out, "size: ")
}

func TestRunBench(t *testing.T) {
	re := require.New(t)
	res, err := runBench(config.BenchConfig{Count: 5000, Range: 1000, DeleteRatio: 0.5, Seed: 7})
	re.NoError(err)
	re.LessOrEqual(res.size, uint(1000))
	re.GreaterOrEqual(res.height, 0)

	res, err = runBench(config.BenchConfig{Count: 1000, Range: 10, DeleteRatio: 0, Seed: 1})
	re.NoError(err)
	re.Equal(uint(10), res.size)
}
