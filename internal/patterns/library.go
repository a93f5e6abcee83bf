// Package patterns holds the keyword tables and regular expressions the
// analysis engine matches against. A Library is built once, compiled, and
// then shared read-only between requests.
package patterns

import (
	"fmt"
	"regexp"
	"sync"
)

// KeywordSet is a named list of keywords. Tables of keyword sets are ordered;
// lookups that stop at the first match depend on that order.
type KeywordSet struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// RiskIndicators are the keyword lists that raise a clause's risk level.
type RiskIndicators struct {
	High   []string `yaml:"high"`
	Medium []string `yaml:"medium"`
	Low    []string `yaml:"low"`
}

// Jurisdiction is the signature of one legal system.
type Jurisdiction struct {
	Tag           string   `yaml:"tag"`
	Keywords      []string `yaml:"keywords"`
	DateFormats   []string `yaml:"date_formats"`
	ContractTypes []string `yaml:"contract_types"`

	dateFormats []*regexp.Regexp
}

// DateFormatRegexps returns the compiled date formats.
func (j Jurisdiction) DateFormatRegexps() []*regexp.Regexp {
	return j.dateFormats
}

// PatternSet is a labelled list of regular expressions.
type PatternSet struct {
	Label    string   `yaml:"label"`
	Patterns []string `yaml:"patterns"`

	compiled []*regexp.Regexp
}

// Regexps returns the compiled patterns in declaration order.
func (p PatternSet) Regexps() []*regexp.Regexp {
	return p.compiled
}

// ClauseSplit holds the clause boundary markers. Line matches a numbered
// marker at the start of a line. Inline matches a marker after a sentence
// terminator; its first capture group is the marker itself.
type ClauseSplit struct {
	Line   string `yaml:"line"`
	Inline string `yaml:"inline"`
}

// Limits are the numeric knobs of the clause and date extractors.
type Limits struct {
	MinClauseLength   int `yaml:"min_clause_length"`
	MaxObligations    int `yaml:"max_obligations"`
	MaxClauseParties  int `yaml:"max_clause_parties"`
	DateContextWindow int `yaml:"date_context_window"`
}

// Library is the full vocabulary of the analysis engine. Fields hold the
// source form so a Library can be read from YAML; call Compile (or use
// Default or LoadFile) before handing it to the analyzers.
type Library struct {
	LegalSections        []string       `yaml:"legal_sections"`
	ClauseTypes          []KeywordSet   `yaml:"clause_types"`
	SecondaryClauseTypes []KeywordSet   `yaml:"secondary_clause_types"`
	Risk                 RiskIndicators `yaml:"risk"`
	Jurisdictions        []Jurisdiction `yaml:"jurisdictions"`
	Compliance           []KeywordSet   `yaml:"compliance"`
	LegalImportance      []string       `yaml:"legal_importance"`

	Entities            []PatternSet `yaml:"entities"`
	Citations           []PatternSet `yaml:"citations"`
	DatePatterns        []string     `yaml:"date_patterns"`
	PartyPatterns       []string     `yaml:"party_patterns"`
	PartyCleanup        string       `yaml:"party_cleanup"`
	ClauseDatePatterns  []string     `yaml:"clause_date_patterns"`
	ClausePartyPatterns []string     `yaml:"clause_party_patterns"`
	KeyTermPattern      string       `yaml:"key_term_pattern"`
	ObligationPatterns  []string     `yaml:"obligation_patterns"`
	ClauseSplit         ClauseSplit  `yaml:"clause_split"`
	Limits              Limits       `yaml:"limits"`

	compiled *compiledSet
}

type compiledSet struct {
	dates         []*regexp.Regexp
	parties       []*regexp.Regexp
	partyCleanup  *regexp.Regexp
	clauseDates   []*regexp.Regexp
	clauseParties []*regexp.Regexp
	keyTerm       *regexp.Regexp
	obligations   []*regexp.Regexp
	splitLine     *regexp.Regexp
	splitInline   *regexp.Regexp
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
)

// Default returns the built-in vocabulary, compiled once per process.
func Default() *Library {
	defaultOnce.Do(func() {
		lib := builtin()
		if err := lib.Compile(); err != nil {
			panic(fmt.Sprintf("patterns: built-in vocabulary does not compile: %v", err))
		}
		defaultLib = lib
	})
	return defaultLib
}

// Compile compiles every regular expression in the library. The error names
// the pattern that failed.
func (l *Library) Compile() error {
	var err error
	c := &compiledSet{}

	for i := range l.Jurisdictions {
		j := &l.Jurisdictions[i]
		if j.dateFormats, err = compileAll("jurisdictions."+j.Tag+".date_formats", j.DateFormats); err != nil {
			return err
		}
	}
	for i := range l.Entities {
		e := &l.Entities[i]
		if e.compiled, err = compileAll("entities."+e.Label, e.Patterns); err != nil {
			return err
		}
	}
	for i := range l.Citations {
		ct := &l.Citations[i]
		if ct.compiled, err = compileAll("citations."+ct.Label, ct.Patterns); err != nil {
			return err
		}
	}
	if c.dates, err = compileAll("date_patterns", l.DatePatterns); err != nil {
		return err
	}
	if c.parties, err = compileAll("party_patterns", l.PartyPatterns); err != nil {
		return err
	}
	if c.partyCleanup, err = compileOne("party_cleanup", l.PartyCleanup); err != nil {
		return err
	}
	if c.clauseDates, err = compileAll("clause_date_patterns", l.ClauseDatePatterns); err != nil {
		return err
	}
	if c.clauseParties, err = compileAll("clause_party_patterns", l.ClausePartyPatterns); err != nil {
		return err
	}
	if c.keyTerm, err = compileOne("key_term_pattern", l.KeyTermPattern); err != nil {
		return err
	}
	if c.obligations, err = compileAll("obligation_patterns", l.ObligationPatterns); err != nil {
		return err
	}
	if c.splitLine, err = compileOne("clause_split.line", l.ClauseSplit.Line); err != nil {
		return err
	}
	if c.splitInline, err = compileOne("clause_split.inline", l.ClauseSplit.Inline); err != nil {
		return err
	}
	if c.splitInline.NumSubexp() < 1 {
		return fmt.Errorf("pattern clause_split.inline: needs a capture group around the marker")
	}

	l.compiled = c
	return nil
}

// Compiled reports whether Compile has succeeded on this library.
func (l *Library) Compiled() bool {
	return l.compiled != nil
}

func compileAll(name string, srcs []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(srcs))
	for i, src := range srcs {
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, fmt.Errorf("pattern %s[%d] %q: %w", name, i, src, err)
		}
		out = append(out, re)
	}
	return out, nil
}

func compileOne(name, src string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("pattern %s %q: %w", name, src, err)
	}
	return re, nil
}

func (l *Library) mustCompiled() *compiledSet {
	if l.compiled == nil {
		panic("patterns: library used before Compile")
	}
	return l.compiled
}

// DateRegexps returns the document-level date and duration patterns.
func (l *Library) DateRegexps() []*regexp.Regexp { return l.mustCompiled().dates }

// PartyRegexps returns the document-level party patterns.
func (l *Library) PartyRegexps() []*regexp.Regexp { return l.mustCompiled().parties }

// PartyCleanupRegexp matches the characters stripped from party names.
func (l *Library) PartyCleanupRegexp() *regexp.Regexp { return l.mustCompiled().partyCleanup }

// ClauseDateRegexps returns the date patterns applied inside a clause.
func (l *Library) ClauseDateRegexps() []*regexp.Regexp { return l.mustCompiled().clauseDates }

// ClausePartyRegexps returns the party patterns applied inside a clause.
func (l *Library) ClausePartyRegexps() []*regexp.Regexp { return l.mustCompiled().clauseParties }

// KeyTermRegexp returns the key term pattern.
func (l *Library) KeyTermRegexp() *regexp.Regexp { return l.mustCompiled().keyTerm }

// ObligationRegexps returns the obligation patterns; each captures the obligation phrase.
func (l *Library) ObligationRegexps() []*regexp.Regexp { return l.mustCompiled().obligations }

// SplitLineRegexp returns the line-start clause marker.
func (l *Library) SplitLineRegexp() *regexp.Regexp { return l.mustCompiled().splitLine }

// SplitInlineRegexp returns the inline clause marker.
func (l *Library) SplitInlineRegexp() *regexp.Regexp { return l.mustCompiled().splitInline }
