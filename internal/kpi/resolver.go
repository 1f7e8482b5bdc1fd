// Package kpi builds the per-operation profitability metrics (income,
// funding cost, utility) with the Spanish-locale month/week breakdown.
package kpi

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"andescapital/cxc-etl/internal/dateutils"
)

// Similarity thresholds for executive-name reconciliation. Partial ratio
// drives the main match; the plain ratio is the weaker secondary check.
const (
	UmbralPartialRatio = 75
	UmbralRatio        = 60
)

// NameResolver reconciles an executive-name variant against a canonical
// set. Implementations must return a usable name for any input.
type NameResolver interface {
	Resolve(candidate string, canonical []string) string
}

// FuzzyResolver matches by partial ratio against the canonical set.
// Unmatched names are Spanish-title-cased and kept as-is, so manually
// curated sheets can introduce executives the system does not know yet.
type FuzzyResolver struct{}

// Resolve returns the canonical name whose partial ratio against the
// candidate is highest and at least UmbralPartialRatio, falling back to a
// plain-ratio match at UmbralRatio, then to the title-cased candidate.
func (FuzzyResolver) Resolve(candidate string, canonical []string) string {
	if candidate == "" {
		return ""
	}

	bestPartial, bestPartialScore := "", 0
	bestPlain, bestPlainScore := "", 0
	for _, name := range canonical {
		if score := fuzzy.PartialRatio(candidate, name); score > bestPartialScore {
			bestPartial, bestPartialScore = name, score
		}
		if score := fuzzy.Ratio(candidate, name); score > bestPlainScore {
			bestPlain, bestPlainScore = name, score
		}
	}

	if bestPartialScore >= UmbralPartialRatio {
		return bestPartial
	}
	if bestPlainScore >= UmbralRatio {
		return bestPlain
	}
	return dateutils.TitleCaseSpanish(candidate)
}
