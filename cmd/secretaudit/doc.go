// Package secretaudit implements the CLI commands: scan, rules, baseline,
// browse, and completion.
package secretaudit
