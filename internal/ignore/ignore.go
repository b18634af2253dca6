// Package ignore hides keymap entries with gitignore-style patterns.
//
// Every binding is addressed as the two-component path "group/key", where
// key is one of the binding's key specs (e.g. "ctrl+s") or its display
// text. Patterns use go-git's gitignore matcher, so "debug/" hides a whole
// group, "*/ctrl+*" hides every ctrl chord and a leading "!" re-includes
// what an earlier pattern hid.
package ignore

import (
	"strings"
	"sync"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// Matcher checks groups and bindings against hide patterns.
type Matcher struct {
	patterns []string
	matcher  gitignore.Matcher
	cache    sync.Map // path (string) -> bool
}

// NewMatcher compiles patterns. Blank lines and "#" comments are skipped.
func NewMatcher(patterns []string) *Matcher {
	return &Matcher{
		patterns: patterns,
		matcher:  gitignore.NewMatcher(parsePatterns(patterns)),
	}
}

// Empty reports whether the matcher has no effective patterns.
func (m *Matcher) Empty() bool {
	return len(parsePatterns(m.patterns)) == 0
}

// Match reports whether the whole group is hidden.
func (m *Matcher) Match(group string) bool {
	return m.match([]string{escapeComponent(group)}, true)
}

// MatchBinding reports whether a single binding is hidden, either by its
// own path or because its group is.
func (m *Matcher) MatchBinding(group, key string) bool {
	if m.Match(group) {
		return true
	}
	return m.match([]string{escapeComponent(group), escapeComponent(key)}, false)
}

func (m *Matcher) match(components []string, isDir bool) bool {
	cacheKey := strings.Join(components, "/")
	if isDir {
		cacheKey += "/"
	}

	if v, ok := m.cache.Load(cacheKey); ok {
		hidden, _ := v.(bool)
		return hidden
	}

	hidden := m.matcher.Match(components, isDir)
	m.cache.Store(cacheKey, hidden)

	return hidden
}

// parsePatterns converts pattern lines into gitignore patterns rooted at the
// keymap.
func parsePatterns(lines []string) []gitignore.Pattern {
	var patterns []gitignore.Pattern

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return patterns
}

// escapeComponent keeps a "/" inside a key (e.g. "j/↓") from splitting the
// path.
func escapeComponent(s string) string {
	return strings.ReplaceAll(s, "/", "∕")
}
