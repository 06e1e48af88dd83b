// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Command pulpinfo prints the feature catalog, the features detected on the
// running CPU and the backend pulp selects for it.
//
// Usage:
//
//	pulpinfo
//	pulpinfo features --format yaml
//	pulpinfo arch --verbose
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	format  string
	verbose bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "pulpinfo",
		Short:         "Show SIMD capabilities and the backend pulp selects",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseFormat(opts.format); err != nil {
				return err
			}
			setupLogger(stderr, opts.verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return write(stdout, opts.format, buildReport(sectionAll))
		},
	}

	features := &cobra.Command{
		Use:   "features",
		Short: "List the feature catalog with detected and compile-time flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			return write(stdout, opts.format, buildReport(sectionFeatures))
		},
	}

	arch := &cobra.Command{
		Use:   "arch",
		Short: "Show the selected backend and the availability of every backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return write(stdout, opts.format, buildReport(sectionArch))
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&opts.format, "format", "f", envOrDefault("PULPINFO_FORMAT", "text"),
		"Output format: text, yaml or json")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug messages to stderr")

	root.AddCommand(features, arch)
	return root
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
