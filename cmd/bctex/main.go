// Command bctex applies the lossless pre-compression transform to DDS
// texture files.
//
// Usage:
//
//	bctex transform --input <dir> --output <dir> --preset {low|medium|optimal|max} [--ext .dds] [-v]
//	bctex untransform --input <dir> --output <dir> [--ext .dds] [-v]
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "transform":
		err = runTransform(os.Args[2:])
	case "untransform":
		err = runUntransform(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "bctex: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "bctex: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:
  bctex transform --input <dir> --output <dir> --preset {low|medium|optimal|max} [--ext .dds] [-v]
  bctex untransform --input <dir> --output <dir> [--ext .dds] [-v]

Presets:
  low      manual builder, no decorrelation or splitting
  medium   auto builder, fast correlation estimator, standard breadth
  optimal  auto builder, ZStandard level 1 estimator, standard breadth
  max      auto builder, ZStandard level 1 estimator, ultra breadth
`)
}

func transformFlags(args []string) (input, output, preset, ext string, verbose bool, err error) {
	fs := flag.NewFlagSet("transform", flag.ContinueOnError)
	fs.StringVar(&input, "input", "", "input directory")
	fs.StringVar(&output, "output", "", "output directory")
	fs.StringVar(&preset, "preset", "medium", "low|medium|optimal|max")
	fs.StringVar(&ext, "ext", ".dds", "file extension filter")
	fs.BoolVar(&verbose, "v", false, "verbose output")
	err = fs.Parse(args)
	return
}

func untransformFlags(args []string) (input, output, ext string, verbose bool, err error) {
	fs := flag.NewFlagSet("untransform", flag.ContinueOnError)
	fs.StringVar(&input, "input", "", "input directory")
	fs.StringVar(&output, "output", "", "output directory")
	fs.StringVar(&ext, "ext", ".dds", "file extension filter")
	fs.BoolVar(&verbose, "v", false, "verbose output")
	err = fs.Parse(args)
	return
}
