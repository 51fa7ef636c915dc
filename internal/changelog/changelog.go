// Package changelog reads the release notes shipped inside the binary and
// picks out the ones a user has not seen yet.
package changelog

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

//go:embed CHANGELOG.md
var Content string

// Entry is one release in the changelog
type Entry struct {
	Version string
	Date    string
	Changes []string
}

// headerRegex matches release headers like "## v0.3.0 (2026-09-28)" or "## 0.3.0"
var headerRegex = regexp.MustCompile(`^##\s+v?(\d+\.\d+\.\d+)(?:\s+\(([^)]+)\))?`)

// Parse extracts the releases from markdown content, in file order.
// Bullets before the first release header are ignored.
func Parse(content string) []Entry {
	var entries []Entry
	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(line)

		if m := headerRegex.FindStringSubmatch(line); m != nil {
			entries = append(entries, Entry{Version: m[1], Date: m[2], Changes: []string{}})
			continue
		}

		if len(entries) == 0 {
			continue
		}
		last := &entries[len(entries)-1]
		switch {
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "):
			last.Changes = append(last.Changes, strings.TrimSpace(line[2:]))
		case line != "" && !strings.HasPrefix(line, "#") && len(last.Changes) > 0:
			// Wrapped bullet text
			last.Changes[len(last.Changes)-1] += " " + line
		}
	}
	return entries
}

// Since returns the entries newer than lastSeen and no newer than current,
// keeping their order. An empty lastSeen means a fresh install, which has
// nothing to catch up on.
func Since(lastSeen, current string, entries []Entry) []Entry {
	if lastSeen == "" || !IsRelease(current) {
		return nil
	}

	var result []Entry
	for _, e := range entries {
		if CompareVersions(e.Version, lastSeen) > 0 && CompareVersions(e.Version, current) <= 0 {
			result = append(result, e)
		}
	}
	return result
}

// IsRelease reports whether v looks like a tagged release rather than a dev build
func IsRelease(v string) bool {
	_, ok := parseVersion(v)
	return ok
}

// CompareVersions compares two semantic versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b. Unparseable parts count as 0.
func CompareVersions(a, b string) int {
	aParts, _ := parseVersion(a)
	bParts, _ := parseVersion(b)

	for i := range aParts {
		switch {
		case aParts[i] < bParts[i]:
			return -1
		case aParts[i] > bParts[i]:
			return 1
		}
	}
	return 0
}

// parseVersion extracts [major, minor, patch] from a version string. Anything
// after the patch number, such as "-rc1", is ignored.
func parseVersion(v string) ([3]int, bool) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if i := strings.IndexAny(v, "-+ "); i >= 0 {
		v = v[:i]
	}

	var result [3]int
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return result, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return [3]int{}, false
		}
		result[i] = n
	}
	return result, true
}
