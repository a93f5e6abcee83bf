package embedding

import (
	"hash/fnv"
	"strings"
	"unicode"
)

const (
	clsToken  = 101
	sepToken  = 102
	vocabBase = 1000
	vocabSize = 30522
)

// Tokenizer produces BERT-style model inputs.
type Tokenizer interface {
	Tokenize(text string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64)
}

// HashTokenizer maps lower-cased words to hashed vocabulary IDs. It is a
// stand-in for a real WordPiece vocabulary.
type HashTokenizer struct{}

// Tokenize returns [CLS] words... [SEP] padded to maxTokens (default 256).
func (HashTokenizer) Tokenize(text string, maxTokens int) (inputIDs, attentionMask, tokenTypeIDs []int64) {
	if maxTokens <= 2 {
		maxTokens = 256
	}
	inputIDs = make([]int64, maxTokens)
	attentionMask = make([]int64, maxTokens)
	tokenTypeIDs = make([]int64, maxTokens)

	inputIDs[0], attentionMask[0] = clsToken, 1
	pos := 1
	for _, w := range Words(text) {
		if pos >= maxTokens-1 {
			break
		}
		inputIDs[pos] = tokenID(w)
		attentionMask[pos] = 1
		pos++
	}
	inputIDs[pos], attentionMask[pos] = sepToken, 1
	return inputIDs, attentionMask, tokenTypeIDs
}

// Words splits text into lower-case runs of letters and digits.
func Words(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func tokenID(word string) int64 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return vocabBase + int64(h.Sum32()%(vocabSize-vocabBase))
}
