package patterns

const months = `January|February|March|April|May|June|July|August|September|October|November|December`

// builtin returns a fresh, uncompiled copy of the default vocabulary.
func builtin() *Library {
	return &Library{
		LegalSections: []string{
			"parties",
			"obligations",
			"termination",
			"indemnity",
			"confidentiality",
			"intellectual_property",
			"governing_law",
			"dispute_resolution",
			"payment_terms",
			"liability",
			"force_majeure",
			"definitions",
		},
		ClauseTypes: []KeywordSet{
			{Name: "confidentiality", Keywords: []string{"confidential", "non-disclosure", "proprietary", "trade secret"}},
			{Name: "termination", Keywords: []string{"terminate", "termination", "end", "expire", "dissolution"}},
			{Name: "indemnity", Keywords: []string{"indemnify", "indemnification", "hold harmless", "defend"}},
			{Name: "intellectual_property", Keywords: []string{"copyright", "trademark", "patent", "intellectual property", "IP"}},
			{Name: "governing_law", Keywords: []string{"governing law", "jurisdiction", "applicable law"}},
			{Name: "dispute_resolution", Keywords: []string{"arbitration", "mediation", "dispute"}},
			{Name: "payment_terms", Keywords: []string{"payment", "invoice", "fee", "compensation"}},
			{Name: "liability", Keywords: []string{"liable", "liability", "damages", "loss", "responsible"}},
			{Name: "force_majeure", Keywords: []string{"force majeure", "act of god", "unforeseeable circumstances"}},
			{Name: "definitions", Keywords: []string{"shall mean", "defined as", "definitions", "hereinafter referred to"}},
			{Name: "obligations", Keywords: []string{"obligation", "covenant", "undertake"}},
			{Name: "parties", Keywords: []string{"party", "parties", "hereinafter"}},
		},
		SecondaryClauseTypes: []KeywordSet{
			{Name: "payment_terms", Keywords: []string{"payment", "compensation", "salary", "fee"}},
			{Name: "intellectual_property", Keywords: []string{"intellectual property", "copyright", "patent"}},
			{Name: "dispute_resolution", Keywords: []string{"dispute", "arbitration", "litigation"}},
		},
		Risk: RiskIndicators{
			High:   []string{"indemnify", "liable", "penalty", "breach", "liquidated damages"},
			Medium: []string{"terminate", "confidential", "non-compete", "exclusive", "warranty"},
			Low:    []string{"notice", "amendment", "assignment", "governing law", "severability"},
		},
		Jurisdictions: []Jurisdiction{
			{
				Tag:           "US",
				Keywords:      []string{"United States", "U.S.", "federal", "state law"},
				DateFormats:   []string{`\d{1,2}/\d{1,2}/\d{4}`, `\d{1,2}-\d{1,2}-\d{4}`},
				ContractTypes: []string{"employment", "service", "purchase", "lease", "NDA"},
			},
			{
				Tag:           "UK",
				Keywords:      []string{"United Kingdom", "UK", "English law", "British"},
				DateFormats:   []string{`\d{1,2}/\d{1,2}/\d{4}`, `\d{1,2}\.\d{1,2}\.\d{4}`},
				ContractTypes: []string{"employment", "service", "sale", "tenancy", "confidentiality"},
			},
			{
				Tag:           "EU",
				Keywords:      []string{"European Union", "EU", "GDPR", "European law"},
				DateFormats:   []string{`\d{1,2}\.\d{1,2}\.\d{4}`, `\d{1,2}/\d{1,2}/\d{4}`},
				ContractTypes: []string{"employment", "service", "supply", "lease", "data protection"},
			},
			{
				Tag:           "INDIA",
				Keywords:      []string{"India", "Indian law", "Supreme Court", "High Court"},
				DateFormats:   []string{`\d{1,2}/\d{1,2}/\d{4}`, `\d{1,2}-\d{1,2}-\d{4}`},
				ContractTypes: []string{"employment", "service", "sale", "lease", "partnership"},
			},
		},
		Compliance: []KeywordSet{
			{Name: "GDPR", Keywords: []string{"personal data", "data subject", "data controller", "consent", "privacy"}},
			{Name: "SOX", Keywords: []string{"financial reporting", "internal controls", "audit", "disclosure"}},
			{Name: "HIPAA", Keywords: []string{"protected health information", "PHI", "healthcare", "medical records"}},
			{Name: "PCI", Keywords: []string{"payment card", "cardholder data", "PCI DSS", "credit card"}},
		},
		LegalImportance: []string{
			"agreement", "contract", "party", "parties", "shall", "hereby", "whereas",
			"confidentiality", "termination", "liability", "indemnification", "property",
			"intellectual", "disclosure", "non-disclosure", "employment", "compensation",
			"damages", "breach", "arbitration", "jurisdiction", "governing law",
			"force majeure", "amendment",
		},
		Entities: []PatternSet{
			{Label: "ORG", Patterns: []string{
				`\b[A-Z][a-zA-Z\s&,.-]*(?:Inc\.?|LLC|Corp\.?|Corporation|Company|Ltd\.?)\b`,
				`\b[A-Z][a-zA-Z\s&,.-]*(?:University|Institute|Foundation)\b`,
			}},
			{Label: "PERSON", Patterns: []string{
				`\b[A-Z][a-z]+\s+[A-Z][a-z]+\b`,
				`\bMr\.?\s+[A-Z][a-z]+\b`,
				`\bMs\.?\s+[A-Z][a-z]+\b`,
				`\bDr\.?\s+[A-Z][a-z]+\b`,
			}},
			{Label: "DATE", Patterns: []string{
				`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`,
				`(?i)\b(?:` + months + `)\s+\d{1,2},?\s+\d{2,4}\b`,
			}},
			{Label: "MONEY", Patterns: []string{
				`\$[\d,]+(?:\.\d{2})?`,
				`(?i)\b\d+\s+dollars?\b`,
			}},
		},
		Citations: []PatternSet{
			{Label: "usc", Patterns: []string{
				`\b\d+\s+U\.?S\.?C\.?\s+(?:§§?\s*|(?:Section|Sec\.?)\s+)\d+[a-z]?(?:[-–]\d+[a-z]?)?`,
			}},
			{Label: "cfr", Patterns: []string{
				`\b\d+\s+C\.?F\.?R\.?\s+(?:Parts?\s+|§\s*)?\d+(?:\.\d+)?`,
			}},
			{Label: "public_law", Patterns: []string{
				`\b(?:Public\s+Law|Pub\.?\s*L\.?)\s+\d+[-–]\d+`,
			}},
			{Label: "case", Patterns: []string{
				`[A-Z][a-zA-Z'\-]+(?:\s+[a-zA-Z'\-]+)*\s+v\.?\s+[A-Z][a-zA-Z'\-]+(?:\s+[a-zA-Z'\-]+)*,?\s+\d+\s+(?:U\.S\.|S\.\s*Ct\.|F\.\d+[a-z]*|F\.\s*Supp\.\s*\d*[a-z]*)\s+\d+\s+\(\d{4}\)`,
			}},
			{Label: "eu_regulation", Patterns: []string{
				`Regulation\s+\(E[CU]\)\s+(?:No\s+)?\d+/\d+`,
			}},
			{Label: "eu_directive", Patterns: []string{
				`Directive\s+(?:\(E[CU]\)\s+)?\d+/\d+(?:/EC|/EU)?`,
			}},
			{Label: "article", Patterns: []string{
				`\bArticles?\s+\d+(?:\(\d+\))?(?:\([a-z]\))?`,
			}},
			{Label: "section", Patterns: []string{
				`(?:\bSection|§)\s*\d+(?:\.\d+)*(?:\([a-z0-9]+\))?`,
			}},
		},
		DatePatterns: []string{
			`(?i)\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`,
			`(?i)\b\d{1,2}\s+(?:` + months + `)\s+\d{2,4}\b`,
			`(?i)\b(?:` + months + `)\s+\d{1,2},?\s+\d{2,4}\b`,
			`(?i)\b\d{1,2}\s+days?\b`,
			`(?i)\b\d{1,2}\s+months?\b`,
			`(?i)\b\d{1,2}\s+years?\b`,
		},
		PartyPatterns: []string{
			`(?i)between\s+([^,\n]+)\s+and\s+([^,\n]+)`,
			`(?i)party\s+of\s+the\s+first\s+part[:\s]*([^,\n]+)`,
			`(?i)party\s+of\s+the\s+second\s+part[:\s]*([^,\n]+)`,
			`(?i)contracting\s+parties[:\s]*([^,\n]+)`,
			`(?i)(?:company|corporation|llc|inc\.?|ltd\.?)[:\s]*([^,\n]+)`,
		},
		PartyCleanup: `[^\p{L}\p{N}_\s&,.-]`,
		ClauseDatePatterns: []string{
			`(?i)\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`,
			`(?i)\b(?:` + months + `)\s+\d{1,2},?\s+\d{2,4}\b`,
			`(?i)\b\d{1,2}\s+(?:days?|months?|years?)\b`,
		},
		ClausePartyPatterns: []string{
			`(?i)\b(?:company|corporation|employer|employee|contractor|client|customer|vendor|supplier)\b`,
			`\b[A-Z][a-z]+ [A-Z][a-z]+\b`,
			`\b[A-Z][a-z]+ (?:Inc|Corp|LLC|Ltd)\.?`,
		},
		KeyTermPattern: `(?i)\b(?:shall|must|may|will|agree[sd]?|require[sd]?|obligated?|responsible|liable|indemnif[iy]|warrant[sy]?)\b`,
		ObligationPatterns: []string{
			`(?i)(?:shall|must|will|agree to)\s+([^.;]+)`,
			`(?i)(?:is|are)\s+(?:required|obligated)\s+to\s+([^.;]+)`,
			`(?i)(?:employee|party|company)\s+(?:shall|must|will)\s+([^.;]+)`,
		},
		ClauseSplit: ClauseSplit{
			Line:   `(?m)^[ \t]*\d+\.?[ \t]+`,
			Inline: `[.;][ \t]+(\d+\.[ \t]+)`,
		},
		Limits: Limits{
			MinClauseLength:   50,
			MaxObligations:    5,
			MaxClauseParties:  3,
			DateContextWindow: 50,
		},
	}
}
