package sanitizer

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	unsafe     = regexp.MustCompile(`[^A-Za-z0-9._+-]`)
	dots       = regexp.MustCompile(`\.+`)
)

// SanitizeComponent cleans up a string for use inside a filename.
// Returns the sanitized value and a boolean indicating if changes were made
func SanitizeComponent(s string) (string, bool) {
	original := s

	// Trim leading/trailing whitespace
	cleaned := strings.TrimSpace(s)

	// Replace internal spaces with dots
	cleaned = whitespace.ReplaceAllString(cleaned, ".")

	// Path separators and shell metacharacters become underscores
	cleaned = unsafe.ReplaceAllString(cleaned, "_")

	// Clean up any double dots that might result
	cleaned = dots.ReplaceAllString(cleaned, ".")

	// Trim leading/trailing dots so the result is never hidden or "."/".."
	cleaned = strings.Trim(cleaned, ".")

	return cleaned, cleaned != original
}

// ArchiveFilename builds the local name of a restore archive, matching the
// names burp-ui gives its own downloads.
func ArchiveFilename(client, server string, backup int, at time.Time, format string) string {
	cleanClient, _ := SanitizeComponent(client)
	if cleanClient == "" {
		cleanClient = "client"
	}

	cleanFormat, _ := SanitizeComponent(format)
	if cleanFormat == "" {
		cleanFormat = "zip"
	}

	stamp := at.UTC().Format("2006-01-02_15_04_05")

	if cleanServer, _ := SanitizeComponent(server); cleanServer != "" {
		return fmt.Sprintf("restoration_%d_%s_on_%s_at_%s.%s", backup, cleanClient, cleanServer, stamp, cleanFormat)
	}
	return fmt.Sprintf("restoration_%d_%s_at_%s.%s", backup, cleanClient, stamp, cleanFormat)
}
