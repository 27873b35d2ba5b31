package core

import (
	"github.com/secretaudit/secretaudit/internal/engine"
	"github.com/secretaudit/secretaudit/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Finding = types.Finding
type Category = types.Category
type Result = engine.Result

const (
	CatExample    = types.CatExample
	CatTestData   = types.CatTestData
	CatEncrypted  = types.CatEncrypted
	CatLowEntropy = types.CatLowEntropy
	CatProduction = types.CatProduction
)

// Scan is the stable entrypoint for other programs.
func Scan(cfg Config) ([]Finding, error) {
	return engine.Scan(cfg)
}

// ScanWithStats runs a scan and returns findings along with timing and counts.
func ScanWithStats(cfg Config) (Result, error) {
	return engine.ScanWithStats(cfg)
}
