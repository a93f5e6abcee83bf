package summarize

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
)

// focusQueries are the search terms used for each known focus area. Other
// areas are searched by their own name.
var focusQueries = map[string]string{
	"parties":     "party parties agreement company employer employee client contractor vendor landlord tenant buyer seller licensor licensee",
	"obligations": "shall must obligation obligations required agrees responsible duty",
	"terms":       "term terms payment compensation fee fees price salary consideration",
	"conditions":  "condition conditions provided subject unless except contingent",
	"dates":       "date dates day days month months year years effective deadline expiration commence",
}

// FocusQuery returns the search terms for area.
func FocusQuery(area string) string {
	if q, ok := focusQueries[area]; ok {
		return q
	}
	return area
}

// FocusRetriever finds the sentences of one document that best match a
// focus area, using an in-memory Bleve index.
type FocusRetriever struct {
	index     bleve.Index
	sentences []string
}

// NewFocusRetriever indexes sentences. Call Close when done.
func NewFocusRetriever(sentences []string) (*FocusRetriever, error) {
	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = standard.Name
	docMapping.AddFieldMappingsAt("text", textField)
	im.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("failed to create focus index: %w", err)
	}
	batch := index.NewBatch()
	for i, s := range sentences {
		if err := batch.Index(strconv.Itoa(i), map[string]interface{}{"text": s}); err != nil {
			index.Close()
			return nil, fmt.Errorf("failed to index sentence %d: %w", i, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		index.Close()
		return nil, fmt.Errorf("failed to index sentences: %w", err)
	}
	return &FocusRetriever{index: index, sentences: sentences}, nil
}

// Retrieve returns up to n sentences matching area, in document order.
func (r *FocusRetriever) Retrieve(ctx context.Context, area string, n int) ([]string, error) {
	if n <= 0 || len(r.sentences) == 0 {
		return nil, nil
	}
	q := bleve.NewMatchQuery(FocusQuery(area))
	q.SetField("text")
	req := bleve.NewSearchRequestOptions(q, n, 0, false)
	res, err := r.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("focus search failed: %w", err)
	}
	idxs := make([]int, 0, len(res.Hits))
	for _, hit := range res.Hits {
		i, err := strconv.Atoi(hit.ID)
		if err != nil || i < 0 || i >= len(r.sentences) {
			continue
		}
		idxs = append(idxs, i)
	}
	sort.Ints(idxs)
	out := make([]string, len(idxs))
	for k, i := range idxs {
		out[k] = r.sentences[i]
	}
	return out, nil
}

// Close releases the index.
func (r *FocusRetriever) Close() error {
	return r.index.Close()
}
