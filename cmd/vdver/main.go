/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command vdver is the thin CLI adapter around vdcore: it wires
// vdcore/repoview (a real Git working directory) and vdcore/versioner
// together and prints the computed version to stdout.
//
// It is explicitly outside the core per spec.md §1 ("the command-line
// front-end" is named there as a thin adapter) and carries none of the
// core's test or invariant obligations — it is flag parsing and wiring
// only, in the style of mantyr/git-semver's main.go.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"verdepth.dev/vdcore/repoview"
	vdsemver "verdepth.dev/vdcore/semver"
	"verdepth.dev/vdcore/versioner"
)

// fileConfig is the on-disk shape of the optional --config YAML file. Flags
// always win over file values when both are set; this mirrors the
// teacher's Model contract being YAML-first for on-disk configuration
// (see SPEC_FULL.md §1).
type fileConfig struct {
	TagPrefix                    string   `yaml:"tag_prefix"`
	MinMajorMinor                string   `yaml:"min_major_minor"`
	BuildMetadata                string   `yaml:"build_metadata"`
	AutoIncrement                string   `yaml:"auto_increment"`
	DefaultPreReleaseIdentifiers []string `yaml:"default_pre_release_identifiers"`
	IgnoreHeight                 bool     `yaml:"ignore_height"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("vdver", flag.ContinueOnError)

	workDir := fs.String("C", ".", "working directory to compute the version for")
	configPath := fs.String("config", "", "optional YAML configuration file (flags override its values)")
	tagPrefix := fs.String("tag-prefix", "", "prefix stripped from tag names before parsing")
	minMajorMinor := fs.String("min", "", "minimum major.minor floor applied to the selected version, e.g. 2.0")
	buildMetadata := fs.String("build-metadata", "", "build metadata appended to the final version")
	autoIncrement := fs.String("auto-increment", "patch", "component bumped when height is applied: major, minor, or patch")
	ignoreHeight := fs.Bool("ignore-height", false, "do not incorporate commit height into the final version")
	verbose := fs.Bool("v", false, "enable debug logging on stderr")
	trace := fs.Bool("vv", false, "enable trace logging on stderr")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [opts]\n\nComputes a SemVer 2.0 version from Git history and prints it to stdout.\n\nOptions:\n", os.Args[0])
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := versioner.Configuration{
		AutoIncrement: vdsemver.AutoIncrementPatch,
	}

	if *configPath != "" {
		loaded, err := loadFileConfig(*configPath)
		if err != nil {
			return fmt.Errorf("vdver: %w", err)
		}
		applyFileConfig(&cfg, loaded)
	}

	applyFlags(&cfg, fs, tagPrefix, minMajorMinor, buildMetadata, autoIncrement, ignoreHeight)

	level := slog.LevelWarn
	switch {
	case *trace:
		level = versioner.LevelTrace
	case *verbose:
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	log := versioner.NewSlogLogger(slog.New(handler))

	view, err := repoview.Open(*workDir)
	if err != nil {
		return fmt.Errorf("vdver: %w", err)
	}

	v, err := versioner.GetVersion(view, cfg, log)
	if err != nil {
		return fmt.Errorf("vdver: %w", err)
	}

	fmt.Println(v.String())
	return nil
}

func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

func applyFileConfig(cfg *versioner.Configuration, fc fileConfig) {
	cfg.TagPrefix = fc.TagPrefix
	cfg.BuildMetadata = fc.BuildMetadata
	cfg.IgnoreHeight = fc.IgnoreHeight
	cfg.DefaultPreReleaseIdentifiers = fc.DefaultPreReleaseIdentifiers

	if fc.MinMajorMinor != "" {
		if mm, err := vdsemver.ParseMajorMinor(fc.MinMajorMinor); err == nil {
			cfg.MinMajorMinor = mm
		}
	}
	if fc.AutoIncrement != "" {
		if ai, err := vdsemver.ParseAutoIncrement(fc.AutoIncrement); err == nil {
			cfg.AutoIncrement = ai
		}
	}
}

// applyFlags overlays every flag the user actually passed onto cfg. Using
// fs.Visit (not fs.VisitAll) means a --config value survives whenever the
// corresponding flag was left at its default — auto-increment's default of
// "patch" would otherwise silently clobber a file-configured "minor" on
// every run.
func applyFlags(cfg *versioner.Configuration, fs *flag.FlagSet, tagPrefix, minMajorMinor, buildMetadata, autoIncrement *string, ignoreHeight *bool) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tag-prefix":
			cfg.TagPrefix = *tagPrefix
		case "min":
			if mm, err := vdsemver.ParseMajorMinor(*minMajorMinor); err == nil {
				cfg.MinMajorMinor = mm
			}
		case "build-metadata":
			cfg.BuildMetadata = *buildMetadata
		case "auto-increment":
			if ai, err := vdsemver.ParseAutoIncrement(*autoIncrement); err == nil {
				cfg.AutoIncrement = ai
			}
		case "ignore-height":
			cfg.IgnoreHeight = *ignoreHeight
		}
	})
}
