// Command swingparse converts exported match statistics files into analysis
// records and prints them as JSON, one object per file.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/JonMunkholm/swingimport/internal/core"
	_ "github.com/JonMunkholm/swingimport/internal/core/shapes" // Register all shapes
	"github.com/JonMunkholm/swingimport/internal/logging"
)

func main() {
	var (
		maxSize  = flag.Int64("max-size", core.DefaultMaxFileSize, "maximum file size in bytes")
		logLevel = flag.String("log-level", "warn", "log level: debug, info, warn, error")
		pretty   = flag.Bool("pretty", false, "indent JSON output")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] FILE...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// stdout carries the JSON records
	slog.SetDefault(logging.New(os.Stderr, *logLevel, "text"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	service := core.NewService(core.WithMaxFileSize(*maxSize))

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}

	failed := 0
	for _, path := range flag.Args() {
		res, err := service.ParseFile(ctx, path)
		if err != nil {
			failed++
			slog.Error("parse failed", "file", path, "error", err, "code", core.MapError(err).Code)
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, core.FormatUserError(err))
			continue
		}
		if err := enc.Encode(res); err != nil {
			slog.Error("write output", "error", err)
			os.Exit(1)
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
