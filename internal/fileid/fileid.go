// Package fileid derives stable identifiers and report names from file paths.
package fileid

import (
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
)

const (
	prefix       = "file:"
	shortHash    = 12
	reportSuffix = ".json"
)

// DocID returns a stable document ID for the given path. The same cleaned
// path always yields the same ID.
func DocID(path string) string {
	return prefix + hashPath(path)
}

// ReportName returns the file name of the JSON report for path:
// "<base name without extension>-<12 hex digits of the path hash>.json".
// Files sharing a base name in different directories get distinct reports.
func ReportName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		stem = "document"
	}
	return stem + "-" + hashPath(path)[:shortHash] + reportSuffix
}

func hashPath(path string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(path)))
	return hex.EncodeToString(sum[:])
}
