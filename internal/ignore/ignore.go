// Package ignore loads .secretauditignore files: one glob or path prefix per
// line, # comments and blank lines skipped.
package ignore

import (
	"bufio"
	"os"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher reports whether a relative path is ignored.
type Matcher struct {
	patterns []string
}

// Load reads an ignore file. A missing file yields an empty matcher and no
// error is treated as fatal by callers.
func Load(path string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(path)
	if err != nil {
		return m, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, line)
	}
	return m, sc.Err()
}

// Match reports whether rel matches any ignore pattern. A pattern ending in
// "/" ignores the whole directory subtree; bare names match the basename or
// any path component; globs use doublestar semantics.
func (m Matcher) Match(rel string) bool {
	rel = strings.ReplaceAll(rel, "\\", "/")
	for _, p := range m.patterns {
		if strings.HasSuffix(p, "/") {
			prefix := strings.TrimSuffix(p, "/")
			if rel == prefix || strings.HasPrefix(rel, prefix+"/") {
				return true
			}
			continue
		}
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		base := rel
		if i := strings.LastIndex(rel, "/"); i >= 0 {
			base = rel[i+1:]
		}
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}
