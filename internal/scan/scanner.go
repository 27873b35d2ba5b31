package scan

import (
	"bytes"
	"strings"

	"github.com/secretaudit/secretaudit/internal/rules"
	"github.com/secretaudit/secretaudit/internal/types"
)

const maxContextLen = 200

// File applies every rule in the registry to the given content, line by line,
// and returns the matches that survive false-positive filtering. Findings are
// ordered by rule (registry order), then line. Category is left unset.
//
// Content that is not valid UTF-8 is decoded lossily: undecodable byte
// sequences are dropped rather than failing the file. Matches never span
// lines, so multi-line secrets (PEM blocks) are only caught when begin/end
// markers land on one line; that limitation is inherent to the line-oriented
// design.
func File(path string, data []byte, reg *rules.Registry) []types.Finding {
	var out []types.Finding
	lines := strings.Split(string(bytes.ToValidUTF8(data, nil)), "\n")
	for _, r := range reg.Rules() {
		for i, line := range lines {
			for _, m := range r.Expr.FindAllString(line, -1) {
				if Suppress(m, line, r) {
					continue
				}
				out = append(out, types.Finding{
					File:        path,
					Line:        i + 1,
					Rule:        r.Name,
					Description: r.Description,
					Sample:      Redact(m),
					Match:       m,
					Context:     contextLine(line),
					Entropy:     Round2(Entropy(m)),
				})
			}
		}
	}
	return out
}

// Redact produces the display sample for a matched value: first 4 and last 4
// characters with an ellipsis between, or the value verbatim when it is 8
// characters or shorter.
func Redact(match string) string {
	if len(match) > 8 {
		return match[:4] + "..." + match[len(match)-4:]
	}
	return match
}

func contextLine(line string) string {
	t := strings.TrimSpace(line)
	if len(t) > maxContextLen {
		return t[:maxContextLen] + "..."
	}
	return t
}
