// dustbench runs dustsort (and, for comparison, the standard library's
// slices.SortFunc) over generated datasets and writes a JSON report.
//
// Usage:
//
//	dustbench [flags]
//
// Flags:
//
//	-c, --config       Path to a hujson scenario file
//	-n, --sizes        Comma-separated list of element counts
//	-k, --kinds        Comma-separated list of dataset kinds (default: all)
//	-s, --seed         Base seed for dataset generation
//	-o, --out          Report output path
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	atomicfile "github.com/natefinch/atomic"
	"github.com/spf13/pflag"
	"github.com/tailscale/hujson"

	"github.com/bzyjin/dustsort"
	"github.com/bzyjin/dustsort/internal/bench"
	"github.com/bzyjin/dustsort/internal/lockfile"
)

// scenarioConfig is the shape of an optional hujson scenario file; fields
// left unset fall back to the flag defaults, which in turn fall back to the
// hardcoded defaults below: flag > config file > default.
type scenarioConfig struct {
	Sizes []int        `json:"sizes,omitempty"`
	Kinds []bench.Kind `json:"kinds,omitempty"`
	Seed  *uint64      `json:"seed,omitempty"`
}

func loadScenarioConfig(path string) (scenarioConfig, error) {
	var cfg scenarioConfig
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	std, err := hujson.Standardize(raw)
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := json.Unmarshal(std, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshaling config %s: %w", path, err)
	}

	return cfg, nil
}

func parseIntList(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}

	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", field, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseKindList(s string) []bench.Kind {
	if s == "" {
		return bench.AllKinds()
	}

	var out []bench.Kind
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field != "" {
			out = append(out, bench.Kind(field))
		}
	}
	return out
}

func run(compares *int, data []int) {
	slices.SortFunc(data, func(a, b int) int {
		*compares++
		if a < b {
			return -1
		}
		if a > b {
			return 1
		}
		return 0
	})
}

func main() {
	var (
		configPath string
		sizesFlag  string
		kindsFlag  string
		seed       uint64
		outPath    string
		useStdlib  bool
	)

	pflag.StringVarP(&configPath, "config", "c", "", "path to a hujson scenario file")
	pflag.StringVarP(&sizesFlag, "sizes", "n", "1000,100000", "comma-separated list of element counts")
	pflag.StringVarP(&kindsFlag, "kinds", "k", "", "comma-separated list of dataset kinds (default: all)")
	pflag.Uint64VarP(&seed, "seed", "s", 1, "base seed for dataset generation")
	pflag.StringVarP(&outPath, "out", "o", "dustbench-report.json", "report output path")
	pflag.BoolVar(&useStdlib, "stdlib", false, "benchmark slices.SortFunc instead of dustsort")
	pflag.Parse()

	cfg, err := loadScenarioConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dustbench: %v\n", err)
		os.Exit(1)
	}

	sizes := cfg.Sizes
	if sizes == nil || pflag.CommandLine.Changed("sizes") {
		sizes, err = parseIntList(sizesFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dustbench: %v\n", err)
			os.Exit(1)
		}
	}

	kinds := cfg.Kinds
	if kinds == nil || pflag.CommandLine.Changed("kinds") {
		kinds = parseKindList(kindsFlag)
	}

	if cfg.Seed != nil && !pflag.CommandLine.Changed("seed") {
		seed = *cfg.Seed
	}

	var results []bench.Result

	for _, kind := range kinds {
		for _, n := range sizes {
			fmt.Fprintf(os.Stderr, "dustbench: running kind=%s n=%d\n", kind, n)

			data := bench.Generate(kind, n, seed)
			compares := 0
			start := time.Now()

			if useStdlib {
				run(&compares, data)
			} else {
				dustsort.SortFunc(data, func(a, b int) bool {
					compares++
					return a < b
				})
			}

			elapsed := time.Since(start)
			result := bench.Result{Kind: kind, N: n, Seed: seed, Compares: compares, Elapsed: elapsed}
			result.Finalize()
			results = append(results, result)
		}
	}

	lock, err := lockfile.Acquire(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dustbench: acquiring report lock: %v\n", err)
		os.Exit(1)
	}
	defer lock.Close()

	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "dustbench: marshaling report: %v\n", err)
		os.Exit(1)
	}

	if err := atomicfile.WriteFile(outPath, strings.NewReader(string(payload))); err != nil {
		fmt.Fprintf(os.Stderr, "dustbench: writing report: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "dustbench: wrote %s\n", outPath)
}
