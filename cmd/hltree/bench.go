package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"hltree/highlight"
	"hltree/internal/lang"
	"hltree/internal/readfile"
	"hltree/tsadapt"
)

var benchCfg struct {
	iterations int
}

var benchCmd = &cobra.Command{
	Use:   "bench <dir>",
	Short: "Time HighlightTree over every recognized source file under dir",
	Long:  "bench walks dir, highlights every file whose extension resolves to a known grammar, and reports per-file timings, modeled on the teacher's own bench_test.go timings.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&benchCfg.iterations, "n", 5, "iterations per file")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	root := args[0]
	var total time.Duration
	var files, spanCount int

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		id := lang.Detect(path)
		if id == lang.Plain {
			return nil
		}
		grammar, ok := tsadapt.Lookup(id)
		if !ok {
			return nil
		}

		src, err := readfile.ReadSource(path)
		if err != nil {
			return err
		}

		var fileTotal time.Duration
		var lastSpans int
		for i := 0; i < benchCfg.iterations; i++ {
			start := time.Now()
			tree, err := tsadapt.Parse(context.Background(), grammar, src.Data)
			if err != nil {
				return err
			}
			lastSpans = 0
			highlight.HighlightAll(tree, highlight.DefaultPreset.Match, func(from, to int, classes string) {
				lastSpans++
			})
			tree.Close()
			fileTotal += time.Since(start)
		}

		avg := fileTotal / time.Duration(benchCfg.iterations)
		fmt.Printf("%-60s %-10s %8s/%d bytes  %6d spans\n", path, id, avg, len(src.Data), lastSpans)

		total += fileTotal
		files++
		spanCount += lastSpans
		return nil
	})
	if err != nil {
		return err
	}

	if files == 0 {
		fmt.Println("no recognized source files found")
		return nil
	}
	fmt.Printf("\n%d files, %d iterations each, %s total, %d spans on the last pass\n", files, benchCfg.iterations, total, spanCount)
	return nil
}
