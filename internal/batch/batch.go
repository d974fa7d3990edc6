// Package batch reads sentence files for batch translation.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// ReadSentences reads sentences from a file, one per line. Blank lines and
// lines starting with '#' are skipped.
func ReadSentences(filename string) ([]string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var sentences []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sentences = append(sentences, line)
	}

	return sentences, nil
}
