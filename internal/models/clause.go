package models

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// RiskLevel is the assessed risk of a clause.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// RiskLevels lists the levels from most to least severe.
var RiskLevels = []RiskLevel{RiskHigh, RiskMedium, RiskLow}

// ClauseTypeGeneral is the type given to clauses no keyword table matched.
const ClauseTypeGeneral = "general"

// Clause is one numbered segment of a document with its classification.
type Clause struct {
	ID               string    `json:"-"`
	Text             string    `json:"text"`
	Type             string    `json:"type"`
	RiskLevel        RiskLevel `json:"risk_level"`
	KeyTerms         []string  `json:"key_terms"`
	Obligations      []string  `json:"obligations"`
	Dates            []string  `json:"dates"`
	PartiesMentioned []string  `json:"parties_mentioned"`
}

// ClauseSet is an ordered list of clauses. It encodes to JSON as an object keyed
// by clause ID, in clause order.
type ClauseSet []Clause

// Get returns the clause with the given ID.
func (cs ClauseSet) Get(id string) (Clause, bool) {
	for _, c := range cs {
		if c.ID == id {
			return c, true
		}
	}
	return Clause{}, false
}

// MarshalJSON writes the clauses as {"clause_1": {...}, "clause_2": {...}}.
func (cs ClauseSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range cs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.ID)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the object form back, ordering clauses by their numeric suffix.
func (cs *ClauseSet) UnmarshalJSON(data []byte) error {
	var m map[string]Clause
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	out := make(ClauseSet, 0, len(m))
	for id, c := range m {
		c.ID = id
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return clauseOrdinal(out[i].ID) < clauseOrdinal(out[j].ID)
	})
	*cs = out
	return nil
}

func clauseOrdinal(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "clause_"))
	if err != nil {
		return -1
	}
	return n
}
