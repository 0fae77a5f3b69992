package corpus

import "fmt"

// Default driving columns of the annotation corpus.
const (
	DefaultTextColumn       = "full_text"
	DefaultReferencesColumn = "references_all"
)

// CaseRecord is one row of the annotation corpus. Only FullText and
// ReferencesAll drive the tagging transformation; the remaining documented
// columns ride along untouched for provenance.
type CaseRecord struct {
	CaseNumber    string
	Procedure     string
	DateOfTrial   string
	CaseSector    string
	Province      string
	CourtName     string
	Coder         string
	FullText      string
	ReferencesAll string

	// Fields holds every other column of the row, keyed by normalized
	// column name.
	Fields map[string]string
}

// Records materializes the table as CaseRecords. textColumn and
// referencesColumn name the driving columns (empty selects the defaults);
// both must exist in the table.
func (t *Table) Records(textColumn, referencesColumn string) ([]CaseRecord, error) {
	if textColumn == "" {
		textColumn = DefaultTextColumn
	}
	if referencesColumn == "" {
		referencesColumn = DefaultReferencesColumn
	}

	ti, ok := t.Column(textColumn)
	if !ok {
		return nil, fmt.Errorf("corpus is missing column %q", textColumn)
	}
	ri, ok := t.Column(referencesColumn)
	if !ok {
		return nil, fmt.Errorf("corpus is missing column %q", referencesColumn)
	}

	captured := map[string]bool{
		"case_number":   true,
		"procedure":     true,
		"date_of_trial": true,
		"case_sector":   true,
		"province":      true,
		"court_name":    true,
		"coder":         true,
	}
	captured[NormalizeColumnName(textColumn)] = true
	captured[NormalizeColumnName(referencesColumn)] = true

	records := make([]CaseRecord, len(t.Rows))
	for r, row := range t.Rows {
		rec := CaseRecord{
			CaseNumber:    t.Cell(r, "case_number"),
			Procedure:     t.Cell(r, "procedure"),
			DateOfTrial:   t.Cell(r, "date_of_trial"),
			CaseSector:    t.Cell(r, "case_sector"),
			Province:      t.Cell(r, "province"),
			CourtName:     t.Cell(r, "court_name"),
			Coder:         t.Cell(r, "coder"),
			FullText:      row[ti],
			ReferencesAll: row[ri],
			Fields:        make(map[string]string),
		}
		for c, h := range t.Headers {
			if !captured[h] {
				rec.Fields[h] = row[c]
			}
		}
		records[r] = rec
	}

	return records, nil
}
