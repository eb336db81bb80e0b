package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/spacesedan/hnparser/internal/logging"
	"github.com/spacesedan/hnparser/internal/parser"
	"github.com/spacesedan/hnparser/internal/summary"
)

func main() {
	version := flag.String("version", "2", "parser generation to use (1 or 2)")
	dataFile := flag.String("data-file", "", "path to the JSON feed snapshot to parse")
	flag.Parse()

	logging.InitLogger()

	if *dataFile == "" {
		fmt.Fprintln(os.Stderr, "-data-file is required")
		flag.Usage()
		os.Exit(2)
	}

	switch *version {
	case "1":
		fmt.Println("Running HackerNews Parser V1...")
		data, err := parser.NewV1FromFile(*dataFile).Parse(nil)
		if err != nil {
			slog.Error("[CLI] Parse failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		summary.PrintDataset(os.Stdout, data)
	case "2":
		fmt.Println("Running HackerNews Parser V2...")
		data, err := parser.NewV2FromFile(*dataFile).Parse(nil)
		if err != nil {
			slog.Error("[CLI] Parse failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		summary.PrintDatasetV2(os.Stdout, data)
	default:
		fmt.Fprintf(os.Stderr, "invalid -version %q: must be 1 or 2\n", *version)
		os.Exit(2)
	}
}
