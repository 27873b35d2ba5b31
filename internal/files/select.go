// Package files decides which tracked files are eligible for scanning.
package files

import (
	"bytes"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode"
)

// scannableExtensions is the fixed allow-list of text/source extensions.
var scannableExtensions = map[string]bool{
	".js": true, ".ts": true, ".jsx": true, ".tsx": true, ".json": true,
	".env": true, ".yaml": true, ".yml": true,
	".py": true, ".cs": true, ".java": true, ".go": true, ".php": true,
	".rb": true, ".sh": true, ".bash": true,
	".config": true, ".xml": true, ".properties": true, ".ini": true,
	".conf": true, ".cfg": true,
	".md": true, ".txt": true, ".sql": true, ".html": true, ".css": true,
	".scss": true,
}

// Directories that hold dependencies or build output, never source to audit.
var excludedDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"__pycache__":  true,
}

const lockfileName = "package-lock.json"

const sniffBytes = 1024

// Eligible reports whether the tracked file at rel (relative to root) should
// be scanned. Dot-prefixed path components and dependency/build directories
// are skipped, as is package-lock.json (too many false positives). Files with
// an extension must be on the allow-list; extensionless files are sniffed:
// their first 1KB must decode to printable text.
func Eligible(root, rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, part := range strings.Split(rel, "/") {
		if strings.HasPrefix(part, ".") || excludedDirs[part] {
			return false
		}
	}
	base := path.Base(rel)
	if base == lockfileName {
		return false
	}
	if ext := strings.ToLower(path.Ext(base)); ext != "" {
		return scannableExtensions[ext]
	}
	return looksPrintableText(filepath.Join(root, filepath.FromSlash(rel)))
}

// looksPrintableText reads the first 1KB of the file and checks that, after
// dropping undecodable byte sequences, it contains only printable runes and
// ordinary whitespace.
func looksPrintableText(p string) bool {
	f, err := os.Open(p)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffBytes)
	n, err := f.Read(buf)
	if n == 0 {
		return err == nil
	}
	for _, r := range string(bytes.ToValidUTF8(buf[:n], nil)) {
		if unicode.IsPrint(r) {
			continue
		}
		switch r {
		case '\n', '\r', '\t':
			continue
		}
		return false
	}
	return true
}
