// Package tagging derives BIO-style token tags from the reference
// annotations of legal-case records and assembles them into instances for
// sequence-tagging models.
package tagging

import "strings"

const (
	// referenceSeparator delimits citation strings inside references_all.
	referenceSeparator = "；"
	// crossTrialMarker flags references carried over between trials; it is
	// annotation metadata and never part of the citation text.
	crossTrialMarker = "|"
	// missingCellPlaceholder stands in for an absent references_all cell.
	// A missing cell therefore parses to ["NaN"] rather than an empty
	// list, preserving the behavior downstream models were trained on.
	missingCellPlaceholder = "NaN"
)

// ParseReferences splits a raw references_all cell into candidate citation
// strings: the full-width separator is trimmed from both ends, every
// cross-trial marker is deleted, and the remainder is split on the
// separator. An empty or whitespace-only cell is treated as missing.
func ParseReferences(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		cell = missingCellPlaceholder
	}

	cell = strings.Trim(cell, referenceSeparator)
	cell = strings.ReplaceAll(cell, crossTrialMarker, "")

	return strings.Split(cell, referenceSeparator)
}
