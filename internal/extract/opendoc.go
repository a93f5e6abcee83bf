package extract

import (
	"fmt"
	"strings"

	"github.com/lu4p/cat"
)

// extractOpenDocument handles .odt and .rtf. cat detects the concrete format
// from the content itself.
func extractOpenDocument(content []byte) (string, error) {
	text, err := cat.FromBytes(content)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return strings.TrimSpace(text), nil
}
