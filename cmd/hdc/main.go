package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/rgonek/html-doc-converter/htmlconverter"
)

const (
	presetBalanced = "balanced"
	presetCompat   = "compat"
	presetRich     = "rich"
	presetStrict   = "strict"
)

func presetConfig(preset string) (htmlconverter.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return htmlconverter.Config{}, nil
	case presetCompat:
		// Original decoder behavior: late flush, one-level formatting.
		// Whitespace-only text between blocks is still ignored; it never
		// starts an inline buffer under any policy.
		return htmlconverter.Config{
			FlushPolicy:   htmlconverter.FlushAtWalkEnd,
			InlineNesting: htmlconverter.NestingShallow,
			ListItemStyle: htmlconverter.ListItemFlatten,
		}, nil
	case presetRich:
		return htmlconverter.Config{
			InlineNesting: htmlconverter.NestingDeep,
			ListItemStyle: htmlconverter.ListItemRich,
		}, nil
	case presetStrict:
		return htmlconverter.Config{
			UnknownBlocks: htmlconverter.UnknownError,
		}, nil
	default:
		return htmlconverter.Config{}, fmt.Errorf("unknown preset %q (allowed: balanced, compat, rich, strict)", preset)
	}
}

func resolveConfig(preset string, strict bool, logger *zap.Logger) (htmlconverter.Config, error) {
	cfg, err := presetConfig(preset)
	if err != nil {
		return htmlconverter.Config{}, err
	}

	if strict {
		cfg.UnknownBlocks = htmlconverter.UnknownError
	}
	cfg.Logger = logger

	return cfg, nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func main() {
	preset := flag.String("preset", presetBalanced, "Preset: balanced|compat|rich|strict")
	strict := flag.Bool("strict", false, "Return error on unknown elements")
	sanitize := flag.Bool("sanitize", false, "Sanitize input HTML (UGC policy) before decoding")
	pretty := flag.Bool("pretty", false, "Indent JSON output")
	warnings := flag.Bool("warnings", false, "Print conversion warnings to stderr")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hdc [options] [input-file]\n")
		fmt.Fprintf(os.Stderr, "Reads HTML from input-file (or stdin) and prints document JSON.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	inputFile := ""
	if args := flag.Args(); len(args) > 0 {
		inputFile = args[0]
	}

	logger := zap.NewNop()
	if *verbose {
		devLogger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
		defer devLogger.Sync()
		logger = devLogger
	}

	cfg, err := resolveConfig(*preset, *strict, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid preset: %v\n", err)
		os.Exit(1)
	}

	conv, err := htmlconverter.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	data, err := readInput(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	if *sanitize {
		data = bluemonday.UGCPolicy().SanitizeBytes(data)
	}

	result, err := conv.Convert(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting input: %v\n", err)
		os.Exit(1)
	}

	if *warnings {
		for _, warning := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s (%s): %s\n", warning.Type, warning.Tag, warning.Message)
		}
	}

	var output []byte
	if *pretty {
		output, err = json.MarshalIndent(result.Document, "", "  ")
	} else {
		output, err = json.Marshal(result.Document)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding document JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))
}
