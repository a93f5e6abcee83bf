package extract

import (
	"strings"
	"unicode/utf8"
)

// extractPlain returns content as UTF-8 with a leading byte order mark
// removed. Invalid sequences become the replacement character.
func extractPlain(content []byte) (string, error) {
	s := strings.TrimPrefix(string(content), "\ufeff")
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "\ufffd")
	}
	return s, nil
}
