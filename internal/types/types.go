package types

// Category is the risk classification assigned to a finding.
type Category string

const (
	CatExample    Category = "EXAMPLE"
	CatTestData   Category = "TEST_DATA"
	CatEncrypted  Category = "ENCRYPTED"
	CatLowEntropy Category = "LOW_ENTROPY"
	CatProduction Category = "PRODUCTION"
)

// Finding describes one secret-like match that survived false-positive
// filtering, located at a path and 1-based line. Category is assigned exactly
// once by the classifier before the finding reaches any output.
type Finding struct {
	File        string   `json:"file"`
	Line        int      `json:"line"`
	Rule        string   `json:"pattern"`
	Description string   `json:"description"`
	Sample      string   `json:"sample"`
	Match       string   `json:"full_match"`
	Category    Category `json:"category,omitempty"`
	Entropy     float64  `json:"entropy"`
	Context     string   `json:"context"`
}
