package rules

// RuleCfDJPrefix is the vendor-prefixed opaque token rule; the classifier
// treats its findings as encrypted payloads rather than raw credentials.
const RuleCfDJPrefix = "cfdj_prefix"

var builtin = []Definition{
	{
		Name:        "base64_pem",
		Pattern:     `-----BEGIN [A-Z ]+-----[A-Za-z0-9+/\s]+=*-----END [A-Z ]+-----`,
		Description: "Base64 PEM encoded private keys/certificates",
		MinEntropy:  4.0,
	},
	{
		Name:            "hex_32_40_chars",
		Pattern:         `\b[a-fA-F0-9]{32,40}\b`,
		Description:     "32-40 character hex strings (API keys, tokens)",
		MinEntropy:      3.5,
		ExactExclusions: []string{"0000000000000000", "ffffffffffffffff"},
	},
	{
		Name:              "azure_key_format",
		Pattern:           `[a-zA-Z0-9/+]{43}=`,
		Description:       "Azure storage/service keys (base64, 44 chars ending with =)",
		MinEntropy:        4.0,
		ContextExclusions: []string{"integrity", "sha512", "package-lock"},
	},
	{
		Name:        RuleCfDJPrefix,
		Pattern:     `CfDJ[a-zA-Z0-9_-]+`,
		Description: "ASP.NET Core Data Protection keys (CfDJ prefix)",
		MinEntropy:  4.0,
	},
	{
		Name:              "private_key_markers",
		Pattern:           `(private[_-]?key|privatekey)["']?\s*[:=]\s*["']?[a-zA-Z0-9/+=_-]{20,}`,
		IgnoreCase:        true,
		Description:       "Private key variable assignments",
		ContextExclusions: []string{"your-", "example", "placeholder", "template"},
	},
	{
		Name:              "api_key_patterns",
		Pattern:           `(api[_-]?key|apikey|secret[_-]?key|secretkey|access[_-]?key|accesskey)["']?\s*[:=]\s*["']?[a-zA-Z0-9/+=_-]{20,}`,
		IgnoreCase:        true,
		Description:       "API key variable assignments",
		ContextExclusions: []string{"your-", "your_", "example", "placeholder", "template", "here"},
	},
	{
		Name:        "jwt_tokens",
		Pattern:     `eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*`,
		Description: "JWT tokens (base64url encoded)",
		MinEntropy:  4.0,
	},
	{
		Name:        "aws_access_key",
		Pattern:     `AKIA[0-9A-Z]{16}`,
		Description: "AWS Access Key ID",
	},
	{
		Name:        "github_token",
		Pattern:     `ghp_[a-zA-Z0-9]{36}`,
		Description: "GitHub Personal Access Token",
	},
	{
		Name:              "firebase_config",
		Pattern:           `(firebase[_-]?config|firebaseConfig)["']?\s*[:=]\s*\{[^}]+\}`,
		IgnoreCase:        true,
		Description:       "Firebase configuration objects",
		ContextExclusions: []string{"your-", "example", "placeholder"},
	},
	{
		Name:              "connection_strings",
		Pattern:           `(connection[_-]?string|connectionstring|database[_-]?url)["']?\s*[:=]\s*["'][^"']{20,}["']`,
		IgnoreCase:        true,
		Description:       "Database connection strings",
		ContextExclusions: []string{"$", "your-", "example"},
	},
	{
		Name:              "oauth_secrets",
		Pattern:           `(client[_-]?secret|clientsecret|oauth[_-]?secret)["']?\s*[:=]\s*["']?[a-zA-Z0-9/+=_-]{20,}`,
		IgnoreCase:        true,
		Description:       "OAuth client secrets",
		ContextExclusions: []string{"your-", "example", "placeholder"},
	},
}

var defaultRegistry = MustBuild(builtin)

// Default returns the built-in registry. It is constructed once at package
// init and read-only for the lifetime of the run.
func Default() *Registry { return defaultRegistry }
