package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/secretaudit/secretaudit/internal/types"
)

func TestPrintSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, nil, PrintOptions{})
	if !strings.Contains(buf.String(), "No potential secrets found.") {
		t.Fatalf("output=%q", buf.String())
	}
}

func TestPrintSummary(t *testing.T) {
	findings := []types.Finding{
		{File: "a.go", Line: 1, Rule: "aws_access_key", Sample: "AKIA...MNOP", Category: types.CatProduction, Entropy: 3.88},
		{File: "b.cs", Line: 7, Rule: "cfdj_prefix", Sample: "CfDJ...R7t", Category: types.CatEncrypted, Entropy: 4.5},
		{File: "c_test.go", Line: 2, Rule: "aws_access_key", Sample: "AKIA...TTTY", Category: types.CatTestData, Entropy: 3.5},
	}
	var buf bytes.Buffer
	PrintSummary(&buf, findings, PrintOptions{NoColor: true, Duration: 2 * time.Second, FilesScanned: 12})
	out := buf.String()

	for _, want := range []string{
		"Total findings: 3",
		"PRODUCTION",
		"ENCRYPTED",
		"aws_access_key",
		"HIGH RISK (PRODUCTION) FINDINGS: 1",
		"a.go:1",
		"ENCRYPTED SECRETS (PROPERLY PROTECTED): 1",
		"b.cs:7",
		"Files scanned: 12",
		"Scan duration: 2.00s",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[31m") {
		t.Fatal("NoColor output must not contain ANSI escapes")
	}
}

func TestPrintSummaryTruncatesProduction(t *testing.T) {
	var findings []types.Finding
	for i := 0; i < 14; i++ {
		findings = append(findings, types.Finding{
			File: "f.go", Line: i + 1, Rule: "aws_access_key",
			Sample: "AKIA...MNOP", Category: types.CatProduction, Entropy: 3.9,
		})
	}
	var buf bytes.Buffer
	PrintSummary(&buf, findings, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "... and 4 more") {
		t.Fatalf("expected truncation marker, got:\n%s", buf.String())
	}
}
