// Package redact scrubs sensitive values from error text before it is logged.
// MongoDB driver errors routinely echo connection strings, server addresses
// and the key values of rejected writes; none of that may reach the logs or
// an HTTP response.
package redact

import "regexp"

// Placeholders substituted for redacted values.
const (
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

// rule replaces every match of pattern with placeholder.
type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; later rules see the output of earlier ones.
var rules = []rule{
	// userinfo of a connection string, including mongodb+srv seed lists
	{
		regexp.MustCompile(`(?i)(postgres|mysql|mongodb(?:\+srv)?|db|database|connection)://[^@]+@`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		RedactedKeyPlaceholder,
	},
	{
		regexp.MustCompile(`(AKIA|AccessKey(Id)?)([^a-zA-Z0-9])?[A-Z0-9]{8,}`),
		RedactedKeyPlaceholder,
	},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`), RedactedPathPlaceholder},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), "[STACK_TRACE_REDACTED]"},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`), "[REDACTED_EMAIL]"},
	// E11000 write errors echo the rejected document key: dup key: { task_id: "..." }
	{regexp.MustCompile(`dup key: \{[^}]*\}`), "dup key: [REDACTED_DUP_KEY]"},
	{regexp.MustCompile(`(?:at )?line ?\d+`), "[REDACTED_LINE_NUMBER]"},
	{regexp.MustCompile(`(?i)syntax error|syntax problem|parse error`), "[REDACTED_SYNTAX_ERROR]"},
	// replica set members and namespaces, e.g. db0.example.net:27017
	{
		regexp.MustCompile(`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`),
		"[REDACTED_HOST]",
	},
	{
		regexp.MustCompile(`(?i)(?:no such file|file not found|can't open|cannot open|file error)`),
		"[REDACTED_FILE_ERROR]",
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
