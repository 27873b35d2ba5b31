package scan

import (
	"regexp"
	"strings"

	"github.com/secretaudit/secretaudit/internal/rules"
)

// falsePositiveIndicators are matched against the lower-cased source line of
// every candidate, after rule-specific exclusions. The list is deliberately
// broad: a line containing any of these words never produces a finding, for
// any rule. Fewer false alarms at the cost of completeness.
var falsePositiveIndicators = []*regexp.Regexp{
	regexp.MustCompile(`example`),
	regexp.MustCompile(`placeholder`),
	regexp.MustCompile(`your[-_]`),
	regexp.MustCompile(`template`),
	regexp.MustCompile(`demo`),
	regexp.MustCompile(`test[-_]`),
	regexp.MustCompile(`sample`),
	regexp.MustCompile(`sha\d+`),
	regexp.MustCompile(`integrity`),
	regexp.MustCompile(`checksum`),
}

// Suppress reports whether a raw match should be discarded as a likely false
// positive. Checks run in precedence order; the first that fires wins:
// rule context exclusions, rule entropy floor, rule exact exclusions, then
// the generic indicator list.
func Suppress(match, line string, r rules.Rule) bool {
	lower := strings.ToLower(line)

	for _, ctx := range r.ContextExclusions {
		if strings.Contains(lower, strings.ToLower(ctx)) {
			return true
		}
	}

	if r.MinEntropy > 0 && Entropy(match) < r.MinEntropy {
		return true
	}

	for _, ex := range r.ExactExclusions {
		if strings.EqualFold(match, ex) {
			return true
		}
	}

	for _, re := range falsePositiveIndicators {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}
