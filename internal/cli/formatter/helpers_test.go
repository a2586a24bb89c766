package formatter

import "regexp"

// ansiPattern matches ANSI escape sequences so assertions can run against
// plain text regardless of terminal support.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
