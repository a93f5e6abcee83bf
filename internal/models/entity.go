package models

// Entity is a labelled span of the analysed text. Start and End are rune
// offsets, the same unit the tagging service reports.
type Entity struct {
	Text        string `json:"text"`
	Label       string `json:"label"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Description string `json:"description"`
}

// EntityResult is the output of entity tagging. TotalCount is always len(Entities).
type EntityResult struct {
	Entities   []Entity            `json:"entities"`
	Groups     map[string][]Entity `json:"groups"`
	TotalCount int                 `json:"total_count"`
}

// NewEntityResult groups entities by label, keeping input order inside each group.
func NewEntityResult(entities []Entity) EntityResult {
	if entities == nil {
		entities = []Entity{}
	}
	groups := make(map[string][]Entity)
	for _, e := range entities {
		groups[e.Label] = append(groups[e.Label], e)
	}
	return EntityResult{
		Entities:   entities,
		Groups:     groups,
		TotalCount: len(entities),
	}
}

// TaggedSpan is what an external NLP tagging service returns for one entity.
// Start and End are character (rune) offsets into the submitted text.
type TaggedSpan struct {
	Text  string `json:"text"`
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// DateMention is a date or duration phrase with up to 50 characters of
// context on each side. Position is a rune offset.
type DateMention struct {
	Date     string `json:"date"`
	Context  string `json:"context"`
	Position int    `json:"position"`
}

// Citation is a statute, regulation, or case reference found in the text.
// Start and End are rune offsets.
type Citation struct {
	Text  string `json:"text"`
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}
