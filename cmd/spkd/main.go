// SPDX-License-Identifier: MIT

// Command spkd runs a spike-train decoding analysis described by a job file.
//
// For every cost value q of the job it computes the pairwise spike-time
// distances of all trials, decodes each trial into a stimulus class by
// leave-one-out nearest-class voting and reports the confusion matrix with
// the transinformation it carries.
//
// Usage:
//
//	spkd -job analysis.toml [-out report.json] [-log-level info] [-log-format text]
//
// Job files may be TOML, YAML or JSON (chosen by extension).
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/metricspace/internal/config"
	"github.com/katalvlaran/metricspace/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the job and writes the report. It returns the
// process exit code: 0 on success, 1 on analysis errors, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("spkd", flag.ContinueOnError)
	fs.SetOutput(stderr)

	jobPath := fs.String("job", "", "analysis job file (.toml, .yaml, .json)")
	outPath := fs.String("out", "", "report file (default: stdout)")
	levelStr := fs.String("log-level", "info", "log level: debug, info, warn, error")
	formatStr := fs.String("log-format", "text", "log format: text, json")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "spkd - spike-train distance decoding\n\n")
		fmt.Fprintf(stderr, "Usage: spkd -job <file> [flags]\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *jobPath == "" {
		fmt.Fprintf(stderr, "Error: -job is required\n\n")
		fs.Usage()
		return 2
	}

	level, err := logging.ParseLevel(*levelStr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	format, err := logging.ParseFormat(*formatStr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	logger, err := logging.New(&logging.Config{
		Level:     level,
		Format:    format,
		Writer:    stderr,
		Component: "spkd",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	job, err := config.Load(*jobPath)
	if err != nil {
		logger.Error("load job", "path", *jobPath, "error", err)
		return 1
	}
	logger.Info("job loaded", "path", *jobPath, "classes", len(job.Classes), "costs", len(job.Costs))

	report, err := analyze(job, logger)
	if err != nil {
		logger.Error("analysis failed", "error", err)
		return 1
	}

	if err = writeReport(report, *outPath, stdout); err != nil {
		logger.Error("write report", "error", err)
		return 1
	}
	logger.Info("done", "results", len(report.Results))

	return 0
}

// writeReport encodes report as indented JSON to path, or to stdout if path is empty.
func writeReport(report *Report, path string, stdout io.Writer) error {
	w := stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create report: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}
