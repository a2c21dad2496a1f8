package main

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/g-m-twostay/bst/Trees"
	"github.com/g-m-twostay/bst/cmd/bst/config"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseValues returns the values given as arguments, or the ones from the config when
// there are none.
func parseValues(cfg *config.Config, args []string) ([]int, error) {
	if len(args) == 0 {
		return cfg.Values, nil
	}
	vs := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Annotatef(err, "invalid value %q", a)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// buildTree inserts vs in order, then deletes cfg.Delete, logging every no-op.
func buildTree(lg *zap.Logger, cfg *config.Config, vs []int) *Trees.BST[int] {
	tree := Trees.New[int]()
	for _, v := range vs {
		if !tree.Insert(v) {
			lg.Info("duplicate value ignored", zap.Int("value", v))
		}
	}
	for _, v := range cfg.Delete {
		if !tree.Delete(v) {
			lg.Info("value to delete not found", zap.Int("value", v))
		}
	}
	lg.Debug("tree built", zap.Uint("size", tree.Size()), zap.Int("height", tree.Height()))
	return tree
}

func withTree(cfg *config.Config, f func(io.Writer, *Trees.BST[int])) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		lg, err := cfg.NewLogger()
		if err != nil {
			return err
		}
		defer lg.Sync()
		vs, err := parseValues(cfg, args)
		if err != nil {
			return err
		}
		f(cmd.OutOrStdout(), buildTree(lg, cfg, vs))
		return nil
	}
}

// NewBuildCommand returns the build subcommand, which prints the traversals and the
// structural properties of the tree.
func NewBuildCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "build [values...]",
		Short: "insert values into a tree and show its traversals and properties",
		RunE: withTree(cfg, func(w io.Writer, tree *Trees.BST[int]) {
			fmt.Fprintf(w, "size: %d\n", tree.Size())
			fmt.Fprintf(w, "height: %d\n", tree.Height())
			fmt.Fprintf(w, "inorder: %v\n", tree.Inorder())
			fmt.Fprintf(w, "preorder: %v\n", tree.Preorder())
			fmt.Fprintf(w, "postorder: %v\n", tree.Postorder())
			fmt.Fprintf(w, "levelorder: %v\n", tree.Levelorder())
			l, o, t := tree.NodeCounts()
			fmt.Fprintf(w, "leaves: %d, one child: %d, two children: %d\n", l, o, t)
			fmt.Fprintf(w, "balanced: %v, valid: %v\n", tree.IsBalanced(), tree.IsValid())
			if !tree.IsEmpty() {
				fmt.Fprintf(w, "min: %d, max: %d\n", tree.Min(), tree.Max())
			}
		}),
	}
}

// NewDisplayCommand returns the display subcommand, which draws the tree.
func NewDisplayCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "display [values...]",
		Short: "insert values into a tree and draw it",
		RunE: withTree(cfg, func(w io.Writer, tree *Trees.BST[int]) {
			tree.Print(w)
		}),
	}
}

// NewBenchCommand returns the bench subcommand. It runs a random workload of inserts and
// deletes and checks the tree against a map after every operation.
func NewBenchCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "run a random insert/delete workload and verify the tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lg, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			defer lg.Sync()
			res, err := runBench(cfg.Bench)
			if err != nil {
				lg.Error("bench failed", zap.Error(err))
				return err
			}
			lg.Info("bench finished",
				zap.Int("operations", cfg.Bench.Count),
				zap.Uint("size", res.size),
				zap.Int("height", res.height),
				zap.Float64("average-depth", res.averageDepth),
				zap.Duration("elapsed", res.elapsed))
			fmt.Fprintf(cmd.OutOrStdout(), "size: %d, height: %d, average depth: %.2f\n", res.size, res.height, res.averageDepth)
			return nil
		},
	}
}

type benchResult struct {
	size         uint
	height       int
	averageDepth float64
	elapsed      time.Duration
}

func runBench(bc config.BenchConfig) (benchResult, error) {
	rg := rand.New(rand.NewSource(bc.Seed))
	tree := Trees.New[int]()
	content := make(map[int]struct{})
	start := time.Now()
	for i := 0; i < bc.Count; i++ {
		v := rg.Intn(bc.Range)
		_, in := content[v]
		if rg.Float64() < bc.DeleteRatio {
			if tree.Delete(v) != in {
				return benchResult{}, errors.Errorf("operation %d: Delete(%d) disagrees with the reference", i, v)
			}
			delete(content, v)
		} else {
			if tree.Insert(v) == in {
				return benchResult{}, errors.Errorf("operation %d: Insert(%d) disagrees with the reference", i, v)
			}
			content[v] = struct{}{}
		}
		if int(tree.Size()) != len(content) {
			return benchResult{}, errors.Errorf("operation %d: size %d, reference has %d", i, tree.Size(), len(content))
		}
	}
	elapsed := time.Since(start)
	if !tree.IsValid() {
		return benchResult{}, errors.New("tree is invalid after the workload")
	}
	if tree.Count() != tree.Size() {
		return benchResult{}, errors.Errorf("tree count %d differs from size %d", tree.Count(), tree.Size())
	}
	return benchResult{tree.Size(), tree.Height(), tree.AverageDepth(), elapsed}, nil
}
