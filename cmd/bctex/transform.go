package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/deepteams/bctex/builder"
	"github.com/deepteams/bctex/estimator"
	"github.com/deepteams/bctex/fileformat"
	"github.com/deepteams/bctex/fileformat/dds"
)

func runTransform(args []string) error {
	input, output, preset, ext, verbose, err := transformFlags(args)
	if err != nil {
		return err
	}
	if input == "" || output == "" {
		return fmt.Errorf("--input and --output are required")
	}

	files, err := listFiles(input, ext)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return err
	}

	switch preset {
	case "low":
		manual := builder.NewManualBC1Builder()
		manual2 := builder.NewManualBC2Builder()
		manual3 := builder.NewManualBC3Builder()
		return runPool(files, input, output, verbose, func(data []byte) ([]byte, error) {
			h := dds.NewHandler[estimator.Correlation]()
			bundle := &fileformat.TransformBundle[estimator.Correlation]{
				BC1Manual: manual, BC2Manual: manual2, BC3Manual: manual3,
			}
			out := make([]byte, len(data))
			if err := h.TransformBundle(data, out, bundle); err != nil {
				return nil, err
			}
			return out, nil
		})
	case "medium":
		return runPool(files, input, output, verbose, func(data []byte) ([]byte, error) {
			h := dds.NewHandler[estimator.Correlation]()
			auto := builder.NewAutoTransformBuilder[estimator.Correlation](estimator.Correlation{})
			bundle := &fileformat.TransformBundle[estimator.Correlation]{
				BC1Auto: auto, BC2Auto: auto, BC3Auto: auto,
			}
			out := make([]byte, len(data))
			if err := h.TransformBundle(data, out, bundle); err != nil {
				return nil, err
			}
			return out, nil
		})
	case "optimal", "max":
		return runPool(files, input, output, verbose, func(data []byte) ([]byte, error) {
			z, err := estimator.NewZstd()
			if err != nil {
				return nil, err
			}
			h := dds.NewHandler[*estimator.Zstd]()
			var auto *builder.AutoTransformBuilder[*estimator.Zstd]
			if preset == "max" {
				auto = builder.NewAutoTransformBuilderUltra[*estimator.Zstd](z)
			} else {
				auto = builder.NewAutoTransformBuilder[*estimator.Zstd](z)
			}
			bundle := &fileformat.TransformBundle[*estimator.Zstd]{
				BC1Auto: auto, BC2Auto: auto, BC3Auto: auto,
			}
			out := make([]byte, len(data))
			if err := h.TransformBundle(data, out, bundle); err != nil {
				return nil, err
			}
			return out, nil
		})
	default:
		return fmt.Errorf("unknown preset %q", preset)
	}
}

func runUntransform(args []string) error {
	input, output, ext, verbose, err := untransformFlags(args)
	if err != nil {
		return err
	}
	if input == "" || output == "" {
		return fmt.Errorf("--input and --output are required")
	}

	files, err := listFiles(input, ext)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return err
	}

	h := dds.NewHandler[estimator.Correlation]()
	return runPool(files, input, output, verbose, func(data []byte) ([]byte, error) {
		out := make([]byte, len(data))
		if err := h.Untransform(data, out); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func listFiles(dir, ext string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext == "" || strings.EqualFold(filepath.Ext(path), ext) {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

// runPool processes files concurrently with a worker pool sized to
// runtime.GOMAXPROCS(0), grounded on the teacher's
// internal/lossy/encode_parallel.go row-worker pool shape: a bounded set
// of goroutines pulling from a shared channel of work items. The CLI
// prints the first error per file and continues (spec §7's propagation
// policy for the CLI layer).
func runPool(files []string, inputDir, outputDir string, verbose bool, process func([]byte) ([]byte, error)) error {
	paths := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	workers := runtime.GOMAXPROCS(0)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				if err := processOne(path, inputDir, outputDir, process); err != nil {
					fmt.Fprintf(os.Stderr, "bctex: %s: %v\n", path, err)
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()
					continue
				}
				if verbose {
					fmt.Fprintf(os.Stdout, "bctex: processed %s\n", path)
				}
			}
		}()
	}

	for _, p := range files {
		paths <- p
	}
	close(paths)
	wg.Wait()

	return firstErr
}

func processOne(path, inputDir, outputDir string, process func([]byte) ([]byte, error)) error {
	rel, err := filepath.Rel(inputDir, path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := process(data)
	if err != nil {
		return err
	}
	dest := filepath.Join(outputDir, rel)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dest, out, 0o644)
}
