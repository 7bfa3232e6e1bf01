package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/derdrodt/absgen/diag"
	"github.com/derdrodt/absgen/module"
	"github.com/derdrodt/absgen/rnd"
	"github.com/derdrodt/absgen/synth"
	"github.com/spf13/cobra"
)

var (
	genNumClasses      uint32
	genMaxDepth        uint8
	genBranchRate      float64
	genDeclareToAssign float64
	genElseRatio       float64
	genAvgMethBody     uint32
	genAvgBlockSize    uint32
	genTarget          string
	genSeed            int64
	genNumModules      uint32
	genOutDir          string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a corpus of random ABS modules",
	Long: `Generate clears --out and writes --num-modules .abs files into it,
each a MockABS module with a random number of synthesised classes.

The number of classes scales linearly across the batch: module i gets
i * step classes, where step = 1 + num-classes / num-modules (integer
division), so module 0 has no random classes and the last module has
(num-modules - 1) * step, which can exceed --num-classes.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.Uint32Var(&genNumClasses, "num-classes", 100, "sets the class-count step: module i gets i*(1+num-classes/num-modules) random classes")
	flags.Uint8Var(&genMaxDepth, "max-depth", 3, "maximum nesting depth for generated if-statements")
	flags.Float64Var(&genBranchRate, "branch-rate", 0.2, "probability of emitting an if-statement over a straight-line statement")
	flags.Float64Var(&genDeclareToAssign, "declare-to-assign", 0.3, "probability of a variable declaration over a plain assignment")
	flags.Float64Var(&genElseRatio, "else-ratio", 0.7, "probability that a generated if-statement carries an else branch")
	flags.Uint32Var(&genAvgMethBody, "avg-method-body-size", 10, "mean number of statements per method body")
	flags.Uint32Var(&genAvgBlockSize, "avg-block-size", 4, "mean number of statements per nested block")
	flags.StringVar(&genTarget, "target", "nullable-extension", "annotation style: crowbar, nullable-extension, or location")
	flags.Int64Var(&genSeed, "seed", 0, "base RNG seed; module i is seeded with seed+int64(i)")
	flags.Uint32Var(&genNumModules, "num-modules", 100, "number of .abs files to write")
	flags.StringVar(&genOutDir, "out", "./out", "output directory; cleared before writing")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	target, ok := synth.ParseTarget(genTarget)
	if !ok {
		return fmt.Errorf("invalid --target %q: want crowbar, nullable-extension, or location", genTarget)
	}

	if err := clearOut(genOutDir); err != nil {
		return fmt.Errorf("clearing --out %s: %w", genOutDir, err)
	}

	if genNumModules == 0 {
		return fmt.Errorf("--num-modules must be greater than 0")
	}
	step := 1 + genNumClasses/genNumModules

	defer func() {
		if r := recover(); r != nil {
			if v, ok := r.(*diag.Violation); ok {
				err = fmt.Errorf("generation aborted: %w", v)
				return
			}
			panic(r)
		}
	}()

	for i := uint32(0); i < genNumModules; i++ {
		opts := synth.Options{
			NumRandClasses:     i * step,
			MaxDepth:           genMaxDepth,
			BranchRate:         genBranchRate,
			DeclareToAssign:    genDeclareToAssign,
			ElseRatio:          genElseRatio,
			AvgMethBodySize:    genAvgMethBody,
			AvgBlockSize:       genAvgBlockSize,
			Target:             target,
			BuggyBoolOperators: true,
			EnableUnaryMinus:   false,
		}

		rng := rnd.NewSource(genSeed + int64(i))
		mod := module.Build(opts, rng)

		path := filepath.Join(genOutDir, fmt.Sprintf("generated-%d.abs", i))
		if err := os.WriteFile(path, []byte(mod.String()), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "wrote %s (%d classes)\n", path, opts.NumRandClasses)
		}
	}

	fmt.Printf("generated %d module(s) in %s\n", genNumModules, genOutDir)
	return nil
}

// clearOut creates dir if absent, otherwise removes its regular file
// entries so each run starts from a clean output directory.
func clearOut(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
