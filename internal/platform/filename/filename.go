package filename

import (
	"regexp"
	"strings"
)

var unsafeRun = regexp.MustCompile(`[^0-9A-Za-z_-]+`)

// Sanitize trims input and replaces every run of characters outside
// [0-9A-Za-z_-] with a single underscore.
func Sanitize(input string) string {
	s := strings.TrimSpace(input)
	if s == "" {
		return ""
	}
	return unsafeRun.ReplaceAllString(s, "_")
}
