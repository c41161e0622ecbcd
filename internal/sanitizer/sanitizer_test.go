package sanitizer

import (
	"testing"
	"time"
)

func TestSanitizeComponent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		changed  bool
	}{
		{
			input:    "web01 ",
			expected: "web01",
			changed:  true,
		},
		{
			input:    "Finance Laptop (Bob)",
			expected: "Finance.Laptop._Bob_",
			changed:  true,
		},
		{
			input:    "../../etc/passwd",
			expected: "_.._etc_passwd",
			changed:  true,
		},
		{
			input:    "  Multiple    Internal    Spaces  ",
			expected: "Multiple.Internal.Spaces",
			changed:  true,
		},
		{
			input:    "already-clean.host",
			expected: "already-clean.host",
			changed:  false,
		},
		{
			input:    "tar.gz",
			expected: "tar.gz",
			changed:  false,
		},
		{
			input:    "",
			expected: "",
			changed:  false,
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result, changed := SanitizeComponent(test.input)
			if result != test.expected {
				t.Errorf("SanitizeComponent(%q) = %q, expected %q", test.input, result, test.expected)
			}
			if changed != test.changed {
				t.Errorf("SanitizeComponent(%q) changed = %v, expected %v", test.input, changed, test.changed)
			}
		})
	}
}

func TestArchiveFilename(t *testing.T) {
	at := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	tests := []struct {
		name     string
		client   string
		server   string
		backup   int
		format   string
		expected string
	}{
		{
			name:     "single server",
			client:   "web01",
			backup:   12,
			format:   "zip",
			expected: "restoration_12_web01_at_2024-03-05_14_07_09.zip",
		},
		{
			name:     "multi server",
			client:   "web01",
			server:   "agent1",
			backup:   3,
			format:   "tar.gz",
			expected: "restoration_3_web01_on_agent1_at_2024-03-05_14_07_09.tar.gz",
		},
		{
			name:     "hostile client name",
			client:   "../../root",
			backup:   1,
			format:   "",
			expected: "restoration_1_.._root_at_2024-03-05_14_07_09.zip",
		},
		{
			name:     "empty client",
			client:   "   ",
			backup:   1,
			format:   "tar.bz2",
			expected: "restoration_1_client_at_2024-03-05_14_07_09.tar.bz2",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := ArchiveFilename(test.client, test.server, test.backup, at, test.format)
			if got != test.expected {
				t.Errorf("ArchiveFilename() = %q, expected %q", got, test.expected)
			}
		})
	}
}
