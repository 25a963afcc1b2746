package token

import "strings"

// Split breaks an input line into whitespace-delimited tokens, the
// trivial tokenizing step that precedes classification (spec §4.8).
func Split(line string) []string {
	return strings.Fields(line)
}
