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

package versioner

import (
	"sort"
	"strings"

	vdgit "verdepth.dev/vdcore/git"
	vdsemver "verdepth.dev/vdcore/semver"

	vderrors "verdepth.dev/vdcore/errors"
)

// taggedVersion is a tag that survived intake: it parsed as a SemVer 2.0
// version once tagPrefix was stripped.
type taggedVersion struct {
	name    string
	sha     vdgit.Hash
	version vdsemver.Version
}

// stackItem is one entry of the walk's LIFO worklist.
type stackItem struct {
	hash   vdgit.Hash
	height int
}

// GetVersion is the Versioner's single operation (spec.md §6). It walks the
// commit graph reachable from HEAD, classifies tags against tagPrefix,
// selects the winning candidate per spec.md §4.3, and returns the resulting
// Version. log may be NopLogger{} if the caller does not want log output.
//
// GetVersion never panics on well-formed input. It returns a
// *vderrors.GitUnavailableError if the GitView fails unrecoverably, or a
// *vderrors.InvalidConfigurationError if cfg itself is malformed; every
// other adverse condition degrades to a valid Version plus a log event.
func GetVersion(view GitView, cfg Configuration, log Logger) (vdsemver.Version, error) {
	if log == nil {
		log = NopLogger{}
	}

	if err := cfg.Validate(); err != nil {
		return vdsemver.Version{}, err
	}

	defaultPre := cfg.effectiveDefaultPreReleaseIdentifiers()

	// Step 1 — guards.
	if !view.IsWorkingDirectory() {
		log.Warn("not a Git working directory, falling back to default version", WarnNotAWorkingDirectory)
		return defaultVersion(defaultPre, cfg.BuildMetadata)
	}

	head, ok := view.TryGetHead()
	if !ok {
		log.Info("repository has no commits yet, falling back to default version")
		return defaultVersion(defaultPre, cfg.BuildMetadata)
	}

	// Step 2 — tag intake.
	tags, err := view.GetTags()
	if err != nil {
		return vdsemver.Version{}, &vderrors.GitUnavailableError{Op: "GetTags", Reason: err}
	}

	kept := make([]taggedVersion, 0, len(tags))
	for _, t := range tags {
		name := t.Name.String()
		if vdsemver.QuickReject(name, cfg.TagPrefix) {
			if log.IsDebug() {
				log.Debug("ignoring tag that cannot possibly be a version", "tag", name)
			}
			continue
		}
		v, ok := vdsemver.Parse(name, cfg.TagPrefix)
		if !ok {
			if log.IsDebug() {
				log.Debug("ignoring tag that does not parse as a SemVer 2.0 version", "tag", name)
			}
			continue
		}
		kept = append(kept, taggedVersion{name: name, sha: t.TargetSha, version: v})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if c := kept[i].version.Compare(kept[j].version); c != 0 {
			return c < 0
		}
		return kept[i].name < kept[j].name
	})

	tagsBySha := make(map[vdgit.Hash][]taggedVersion, len(kept))
	for _, tv := range kept {
		tagsBySha[tv.sha] = append(tagsBySha[tv.sha], tv)
	}

	// Step 3 — reverse DFS from HEAD.
	stack := []stackItem{{hash: head.Hash, height: 0}}
	visited := make(map[vdgit.Hash]bool)
	var candidates []Candidate

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[item.hash] {
			continue
		}
		visited[item.hash] = true

		var commit vdgit.Commit
		if item.hash == head.Hash {
			commit = head
		} else {
			commit, err = view.GetCommit(item.hash)
			if err != nil {
				return vdsemver.Version{}, &vderrors.GitUnavailableError{Op: "GetCommit", Reason: err}
			}
		}

		if log.IsTrace() {
			log.Trace("visiting commit", "sha", commit.ShortSha(), "height", item.height)
		}

		anyRelease := false
		for _, tv := range tagsBySha[item.hash] {
			candidates = append(candidates, Candidate{
				Commit:  commit,
				Height:  item.height,
				Tag:     tv.name,
				Version: tv.version,
				Index:   len(candidates),
			})
			if !tv.version.IsPrerelease() {
				anyRelease = true
			}
		}

		if anyRelease {
			// A release tag on this commit truncates the path: do not
			// descend into its parents.
			continue
		}

		if len(commit.Parents) == 0 {
			// The synthetic root sits one edge past the root commit
			// itself: there is no ancestor tag to measure from, so height
			// is counted from a virtual point before the very first
			// commit rather than from the root commit's own position.
			candidates = append(candidates, Candidate{
				Commit:  commit,
				Height:  item.height + 1,
				Tag:     "",
				Version: vdsemver.Version{Prerelease: strings.Join(defaultPre, ".")},
				Index:   len(candidates),
			})
			continue
		}

		for i := len(commit.Parents) - 1; i >= 0; i-- {
			stack = append(stack, stackItem{hash: commit.Parents[i], height: item.height + 1})
		}
	}

	// Step 4 — ordering candidates.
	sort.SliceStable(candidates, func(i, j int) bool {
		if c := candidates[i].Version.Compare(candidates[j].Version); c != 0 {
			return c < 0
		}
		return candidates[i].Index > candidates[j].Index
	})

	if log.IsDebug() {
		for _, c := range candidates {
			log.Debug(c.String())
		}
	}

	// Step 5 — selection.
	selectedIdx := -1
	preReleaseIdx := -1
	for i := len(candidates) - 1; i >= 0; i-- {
		if selectedIdx == -1 && !candidates[i].Version.IsPrerelease() {
			selectedIdx = i
		}
		if preReleaseIdx == -1 && candidates[i].Version.IsPrerelease() {
			preReleaseIdx = i
		}
		if selectedIdx != -1 && preReleaseIdx != -1 {
			break
		}
	}

	if selectedIdx == -1 {
		// No release tag was discovered; the last pre-release/synthetic
		// candidate serves as selected too.
		selectedIdx = preReleaseIdx
	}

	selected := candidates[selectedIdx]

	if log.IsDebug() {
		for i, c := range candidates {
			if i != selectedIdx {
				log.Debug(c.String())
			}
		}
	}

	var preReleaseVersion vdsemver.Version
	if preReleaseIdx == -1 {
		preReleaseVersion = selected.Version
	} else {
		preReleaseVersion = candidates[preReleaseIdx].Version
	}

	if log.IsInfo() {
		log.Info("selected candidate", "tag", selected.Tag, "version", selected.Version.String(), "height", selected.Height)
	}

	preReleaseMajorMinor := vdsemver.MajorMinor{Major: preReleaseVersion.Major, Minor: preReleaseVersion.Minor}

	// Step 6 — min-(major,minor) reconciliation.
	effective := effectiveMajorMinor(preReleaseMajorMinor, cfg.MinMajorMinor)

	result := selected.Version.Satisfying(effective, defaultPre)
	if log.IsInfo() && !result.Equal(selected.Version) {
		log.Info("bumped version to satisfy configured minimum", "from", selected.Version.String(), "to", result.String())
	}

	// Step 7 — height application.
	if !cfg.IgnoreHeight {
		result = result.WithHeight(selected.Height, cfg.AutoIncrement, defaultPre)
	}

	// Step 8 — build metadata.
	result, err = result.AddBuildMetadata(cfg.BuildMetadata)
	if err != nil {
		return vdsemver.Version{}, err
	}

	if log.IsInfo() {
		log.Info("computed version", "version", result.String())
	}

	// Step 9 — return.
	return result, nil
}

// effectiveMajorMinor implements spec.md §4.3 Step 6's three-way rule for
// combining the pre-release candidate's (major, minor) with the configured
// floor.
func effectiveMajorMinor(pm, mm vdsemver.MajorMinor) vdsemver.MajorMinor {
	switch {
	case mm.Major == pm.Major:
		minor := pm.Minor
		if mm.Minor > minor {
			minor = mm.Minor
		}
		return vdsemver.MajorMinor{Major: pm.Major, Minor: minor}
	case mm.Major > pm.Major:
		return mm
	default:
		return pm
	}
}

// defaultVersion builds the fallback Version used by both Step 1 guards:
// 0.0.0 with the configured default pre-release identifiers, with build
// metadata applied.
func defaultVersion(defaultPre []string, buildMetadata string) (vdsemver.Version, error) {
	v := vdsemver.Version{Prerelease: strings.Join(defaultPre, ".")}
	return v.AddBuildMetadata(buildMetadata)
}
