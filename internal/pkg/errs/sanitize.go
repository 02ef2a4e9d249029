package errs

import "strings"

// sanitize flattens user-supplied values before they are embedded in error
// messages, so a multi-line value cannot break log lines.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}
