// Copyright Niklas Bubeck, 2026. All rights reserved.

// Package secrets loads API keys from a directory of plain-text files: the
// filename is the key name and the trimmed file contents are the value.
//
// The only key scholar-page uses is semantic-scholar-api-key.
package secrets

import (
	"os"
	"path/filepath"
	"strings"
)

// SemanticScholarKeyFile is the filename of the Semantic Scholar API key.
const SemanticScholarKeyFile = "semantic-scholar-api-key"

// read returns the trimmed contents of one key file. A missing or unreadable
// file is not an error; the key is simply not configured.
func read(dir, name string) string {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SemanticScholarKey loads the Semantic Scholar API key from dir, returning
// "" when it is not configured.
func SemanticScholarKey(dir string) string {
	return read(dir, SemanticScholarKeyFile)
}
