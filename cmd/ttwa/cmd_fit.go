package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/jwhandley/ttwa/area"
	"github.com/jwhandley/ttwa/graph"
	"github.com/jwhandley/ttwa/ingest"
	"github.com/jwhandley/ttwa/report"
)

func newFitCmd() *cobra.Command {
	var maxIter int
	var watch bool

	cmd := &cobra.Command{
		Use:   "fit <input.csv> [output.csv] [max_iter]",
		Short: "Partition a commuting matrix into travel-to-work areas",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			outputPath := ""
			if len(args) >= 2 {
				outputPath = args[1]
			}
			if len(args) == 3 {
				n, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("ttwa: parsing max_iter %q: %w", args[2], err)
				}
				maxIter = n
			}

			run := func() error { return runFit(inputPath, outputPath, maxIter) }

			if !watch {
				return run()
			}
			return watchAndRun(inputPath, run)
		},
	}

	cmd.Flags().IntVar(&maxIter, "max-iter", 1<<30, "maximum dissolution rounds")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run fit whenever input.csv changes")

	return cmd
}

func runFit(inputPath, outputPath string, maxIter int) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("ttwa: opening %s: %w", inputPath, err)
	}
	defer f.Close()

	codes, matrix, err := ingest.ReadAdjacencyMatrix(f)
	if err != nil {
		return fmt.Errorf("ttwa: reading %s: %w", inputPath, err)
	}

	g, err := graph.FromAdjacencyMatrix(matrix)
	if err != nil {
		return fmt.Errorf("ttwa: building graph: %w", err)
	}

	ac := area.NewAreaCollection(g)
	partition, err := ac.Fit(maxIter)
	if err != nil {
		return fmt.Errorf("ttwa: fit: %w", err)
	}
	if partition.IterLimitReached {
		fmt.Fprintf(os.Stderr, "ttwa: max-iter reached after %d rounds; partition may not be fully settled\n", partition.Iterations)
	}

	out := os.Stdout
	if outputPath != "" {
		of, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("ttwa: creating %s: %w", outputPath, err)
		}
		defer of.Close()
		out = of
	}

	return report.WriteAssignments(out, codes, ac)
}

// watchAndRun runs fn once immediately, then again each time the watcher
// on inputPath reports a write or create event, until the process is
// interrupted or the watcher's channels close.
func watchAndRun(inputPath string, fn func() error) error {
	if err := fn(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("ttwa: starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(inputPath); err != nil {
		return fmt.Errorf("ttwa: watching %s: %w", inputPath, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := fn(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, "ttwa: watch error:", err)
		}
	}
}
