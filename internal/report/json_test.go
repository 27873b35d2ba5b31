package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/secretaudit/secretaudit/internal/types"
)

func TestWriteJSON(t *testing.T) {
	findings := []types.Finding{
		{File: "a.go", Line: 1, Rule: "github_token", Match: "ghp_x", Category: types.CatTestData, Entropy: 2.5},
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, findings); err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded=%v", decoded)
	}
	if decoded[0]["pattern"] != "github_token" {
		t.Fatalf("rule should serialize under the pattern key, got %v", decoded[0])
	}
	if decoded[0]["full_match"] != "ghp_x" {
		t.Fatalf("full match missing from JSON export: %v", decoded[0])
	}
}

func TestWriteJSONNil(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Fatalf("nil findings should serialize as [], got %q", got)
	}
}
