package tabs

import (
	"path/filepath"
	"strings"
)

// Collapse maps each path to the shortest trailing run of path segments that
// distinguishes it from the other paths sharing its basename. Paths whose
// basename is unique collapse to just the basename. Pure function of the
// input; paths are assumed distinct within one window.
func Collapse(paths []string) map[string]string {
	byBase := make(map[string][]string)
	for _, p := range paths {
		base := filepath.Base(p)
		byBase[base] = append(byBase[base], p)
	}

	labels := make(map[string]string, len(paths))
	for base, group := range byBase {
		if len(group) == 1 {
			labels[group[0]] = base
			continue
		}
		for _, p := range group {
			labels[p] = uniqueSuffix(p, group)
		}
	}
	return labels
}

// uniqueSuffix extends a path's segment suffix one segment at a time until
// no other path in the conflict group ends with it.
func uniqueSuffix(path string, group []string) string {
	segments := splitSegments(path)
	for n := 1; n < len(segments); n++ {
		suffix := segments[len(segments)-n:]
		if suffixUnique(path, suffix, group) {
			return strings.Join(suffix, "/")
		}
	}
	return strings.Join(segments, "/")
}

func suffixUnique(path string, suffix []string, group []string) bool {
	for _, other := range group {
		if other == path {
			continue
		}
		if endsWithSegments(splitSegments(other), suffix) {
			return false
		}
	}
	return true
}

func endsWithSegments(segments, suffix []string) bool {
	if len(suffix) > len(segments) {
		return false
	}
	offset := len(segments) - len(suffix)
	for i, s := range suffix {
		if segments[offset+i] != s {
			return false
		}
	}
	return true
}

// splitSegments splits a path into its non-empty segments, tolerating both
// separators so labels stay stable across platforms.
func splitSegments(path string) []string {
	normalized := filepath.ToSlash(path)
	var segments []string
	for _, s := range strings.Split(normalized, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
