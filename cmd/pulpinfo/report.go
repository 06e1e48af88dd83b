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


package main

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"
	"text/tabwriter"
	"unsafe"

	"github.com/klauspost/cpuid/v2"
	"github.com/samber/lo"
	"github.com/viterin/vek/vek32"
	"golang.org/x/sys/cpu"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-pulp/pulp/arch"
	"github.com/ajroetker/go-pulp/pulp/feature"
)

type section uint8

const (
	sectionFeatures section = 1 << iota
	sectionArch

	sectionAll = sectionFeatures | sectionArch
)

type format string

const (
	formatText format = "text"
	formatYAML format = "yaml"
	formatJSON format = "json"
)

func parseFormat(s string) (format, error) {
	switch f := format(strings.ToLower(strings.TrimSpace(s))); f {
	case formatText, formatYAML, formatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, yaml or json)", s)
	}
}

type report struct {
	Host     hostInfo     `json:"host" yaml:"host"`
	Features []featureRow `json:"features,omitempty" yaml:"features,omitempty"`
	Arch     *archInfo    `json:"arch,omitempty" yaml:"arch,omitempty"`
}

type hostInfo struct {
	GOOS          string   `json:"goos" yaml:"goos"`
	GOARCH        string   `json:"goarch" yaml:"goarch"`
	NumCPU        int      `json:"num_cpu" yaml:"num_cpu"`
	Vendor        string   `json:"vendor,omitempty" yaml:"vendor,omitempty"`
	Brand         string   `json:"brand,omitempty" yaml:"brand,omitempty"`
	X64Level      int      `json:"x64_level,omitempty" yaml:"x64_level,omitempty"`
	CacheLine     int      `json:"cache_line" yaml:"cache_line"`
	VekAccelerate bool     `json:"vek_accelerated" yaml:"vek_accelerated"`
	VekFeatures   []string `json:"vek_features,omitempty" yaml:"vek_features,omitempty"`
}

type featureRow struct {
	Name     string `json:"name" yaml:"name"`
	Index    int    `json:"index" yaml:"index"`
	Detected bool   `json:"detected" yaml:"detected"`
	Static   bool   `json:"static" yaml:"static"`
}

type archInfo struct {
	Selected string       `json:"selected" yaml:"selected"`
	Width    int          `json:"width" yaml:"width"`
	Features []string     `json:"features" yaml:"features"`
	Backends []backendRow `json:"backends" yaml:"backends"`
}

type backendRow struct {
	Name      string `json:"name" yaml:"name"`
	Width     int    `json:"width" yaml:"width"`
	Available bool   `json:"available" yaml:"available"`
	Preferred bool   `json:"preferred" yaml:"preferred"`
}

func buildReport(s section) report {
	r := report{Host: buildHost()}
	if s&sectionFeatures != 0 {
		r.Features = buildFeatures(feature.Detected(), feature.Static())
	}
	if s&sectionArch != 0 {
		a := buildArch(arch.New())
		r.Arch = &a
	}
	return r
}

func buildHost() hostInfo {
	info := vek32.Info()
	h := hostInfo{
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		NumCPU:        runtime.NumCPU(),
		Vendor:        cpuid.CPU.VendorString,
		Brand:         strings.TrimSpace(cpuid.CPU.BrandName),
		CacheLine:     int(unsafe.Sizeof(cpu.CacheLinePad{})),
		VekAccelerate: info.Acceleration,
		VekFeatures:   info.CPUFeatures,
	}
	if runtime.GOARCH == "amd64" {
		h.X64Level = cpuid.CPU.X64Level()
	}
	return h
}

func buildFeatures(detected, static feature.Bitmap) []featureRow {
	return lo.Map(feature.All(), func(f feature.Feature, _ int) featureRow {
		return featureRow{
			Name:     f.String(),
			Index:    int(f),
			Detected: detected.Has(f),
			Static:   static.Has(f),
		}
	})
}

func buildArch(a arch.Arch) archInfo {
	preferred := lo.Associate(arch.Preference(runtime.GOARCH), func(k arch.Kind) (arch.Kind, bool) {
		return k, true
	})
	info := archInfo{
		Selected: a.String(),
		Width:    a.Width(),
		Features: featureNames(a.Features()),
	}
	for _, k := range arch.Kinds() {
		info.Backends = append(info.Backends, backendRow{
			Name:      k.String(),
			Width:     k.Width(),
			Available: k.Available(),
			Preferred: preferred[k],
		})
	}
	return info
}

func featureNames(fs []feature.Feature) []string {
	return lo.Map(fs, func(f feature.Feature, _ int) string { return f.String() })
}

func write(w io.Writer, name string, r report) error {
	f, err := parseFormat(name)
	if err != nil {
		return err
	}
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		if err := writeText(w, r); err != nil {
			return fmt.Errorf("write text: %w", err)
		}
	}
	return nil
}

func writeText(w io.Writer, r report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	h := r.Host
	fmt.Fprintf(tw, "Platform:\t%s/%s (%d CPUs)\n", h.GOOS, h.GOARCH, h.NumCPU)
	if h.Brand != "" {
		fmt.Fprintf(tw, "CPU:\t%s (%s)\n", h.Brand, h.Vendor)
	}
	if h.X64Level > 0 {
		fmt.Fprintf(tw, "x86-64 level:\tv%d\n", h.X64Level)
	}
	fmt.Fprintf(tw, "Cache line:\t%d bytes\n", h.CacheLine)
	fmt.Fprintf(tw, "vek:\taccelerated=%t %s\n", h.VekAccelerate, strings.Join(h.VekFeatures, ","))

	if r.Features != nil {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "FEATURE\tINDEX\tDETECTED\tSTATIC")
		for _, row := range r.Features {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", row.Name, row.Index, mark(row.Detected), mark(row.Static))
		}
	}

	if a := r.Arch; a != nil {
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "Selected:\t%s (%d bytes)\n", a.Selected, a.Width)
		fmt.Fprintf(tw, "Certifies:\t%s\n", strings.Join(a.Features, ","))
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "BACKEND\tWIDTH\tAVAILABLE\tPREFERRED")
		for _, b := range a.Backends {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", b.Name, b.Width, mark(b.Available), mark(b.Preferred))
		}
	}
	return tw.Flush()
}

func mark(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
