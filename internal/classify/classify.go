// Package classify assigns a risk category to findings that survived
// false-positive filtering, using file-path, match-text, and context
// heuristics. Categorize is pure and deterministic.
package classify

import (
	"strings"

	"github.com/secretaudit/secretaudit/internal/rules"
	"github.com/secretaudit/secretaudit/internal/types"
)

var placeholderIndicators = []string{
	"your-", "your_", "example", "placeholder", "template", "here",
	"replace-with", "change-this",
}

var testIndicators = []string{
	"test", "spec", "mock", "fixture", "sample", "example", "demo",
	"fake", "dummy", ".test.", ".spec.", "/tests/", "/test/",
	"testing", "__tests__", "readme", "documentation",
}

var encryptedIndicators = []string{
	"cfdj", "encrypted", "cipher", "encoded", "protected",
}

// env-file naming conventions that mark a file as example material
var exampleEnvNames = []string{".env.example", ".env.sample", "example", "sample"}

// Categorize assigns exactly one category to a finding. Precedence:
// EXAMPLE, TEST_DATA, ENCRYPTED, LOW_ENTROPY, then PRODUCTION as the default.
func Categorize(f types.Finding) types.Category {
	path := strings.ToLower(f.File)
	context := strings.ToLower(f.Context)
	match := strings.ToLower(f.Match)

	if containsAny(path, placeholderIndicators) ||
		containsAny(context, placeholderIndicators) ||
		containsAny(match, placeholderIndicators) ||
		containsAny(path, exampleEnvNames) {
		return types.CatExample
	}

	if containsAny(path, testIndicators) || containsAny(context, testIndicators) {
		return types.CatTestData
	}

	if f.Rule == rules.RuleCfDJPrefix || containsAny(context, encryptedIndicators) {
		return types.CatEncrypted
	}

	if f.Entropy < 2.0 {
		return types.CatLowEntropy
	}

	return types.CatProduction
}

func containsAny(s string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(s, ind) {
			return true
		}
	}
	return false
}
