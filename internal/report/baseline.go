package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/secretaudit/secretaudit/internal/types"
)

// Baseline is a set of accepted finding fingerprints. Findings present in the
// baseline are filtered from subsequent scan output so CI only flags new
// exposures.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

// LoadBaseline reads a baseline file; a missing file yields an empty baseline
// and the error for the caller to ignore.
func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	buf, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	_ = json.Unmarshal(buf, &b)
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

// SaveBaseline writes the fingerprints of the given findings.
func SaveBaseline(path string, findings []types.Finding) error {
	b := Baseline{Items: map[string]bool{}}
	for _, f := range findings {
		b.Items[Fingerprint(f)] = true
	}
	buf, _ := json.MarshalIndent(b, "", "  ")
	return os.WriteFile(path, buf, 0o644)
}

// FilterNewFindings returns the findings not present in the baseline.
func FilterNewFindings(findings []types.Finding, base Baseline) []types.Finding {
	var out []types.Finding
	for _, f := range findings {
		if !base.Items[Fingerprint(f)] {
			out = append(out, f)
		}
	}
	return out
}

// Fingerprint identifies a finding by file, rule, and matched text. The
// hashed form keeps raw secret values out of the baseline file.
func Fingerprint(f types.Finding) string {
	sum := xxhash.Sum64String(f.File + "|" + f.Rule + "|" + f.Match)
	return fmt.Sprintf("%016x", sum)
}

// ShouldFail reports whether the run should exit nonzero given the configured
// fail-on categories (comma-separated; default PRODUCTION).
func ShouldFail(findings []types.Finding, failOn string) bool {
	if failOn == "" {
		failOn = string(types.CatProduction)
	}
	want := map[types.Category]bool{}
	for _, c := range strings.Split(failOn, ",") {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			want[types.Category(c)] = true
		}
	}
	for _, f := range findings {
		if want[f.Category] {
			return true
		}
	}
	return false
}
