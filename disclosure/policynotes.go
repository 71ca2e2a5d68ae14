/*
policynotes.go - Accounting-policy note assembly

PURPOSE:
  Assembles the accounting-policy section of the financial statement
  notes: a numbered list of policy texts under a header naming the
  reporting entity and fiscal year. Pure assembly, no branching beyond
  validation and ordering.
*/
package disclosure

import (
	"fmt"
	"sort"

	"github.com/warp/finance-engine/fincore"
)

// =============================================================================
// ACCOUNTING POLICY NOTES
// =============================================================================

// NotesHeader identifies the filing the notes belong to. Both fields are
// required descriptive fields.
type NotesHeader struct {
	ReportingEntityName string `json:"reporting_entity_name"`
	FiscalYear          int    `json:"fiscal_year"`
}

// PolicyText is one accounting policy to disclose.
type PolicyText struct {
	Topic string `json:"topic"` // "revenue_recognition", "leases", ...
	Text  string `json:"text"`
}

// PolicyNote is one assembled, numbered note.
type PolicyNote struct {
	NoteNumber int    `json:"note_number"`
	Topic      string `json:"topic"`
	Text       string `json:"text"`
}

// PolicyNoteSet is the assembled section.
type PolicyNoteSet struct {
	Header NotesHeader  `json:"header"`
	Notes  []PolicyNote `json:"notes"`
}

type policyNotesInputs struct {
	Header   NotesHeader  `json:"header"`
	Policies []PolicyText `json:"policies"`
}

// PolicyNotes numbers the policies in topic order under the header.
// A missing entity name or fiscal year is a validation failure.
func PolicyNotes(header NotesHeader, policies []PolicyText) (fincore.Result[PolicyNoteSet], error) {
	if header.ReportingEntityName == "" {
		return fincore.Result[PolicyNoteSet]{}, &fincore.ValidationError{
			Code:    "missing_entity_name",
			Message: "accounting policy notes require reportingEntityName",
		}
	}
	if header.FiscalYear == 0 {
		return fincore.Result[PolicyNoteSet]{}, &fincore.ValidationError{
			Code:    "missing_fiscal_year",
			Message: "accounting policy notes require fiscalYear",
			Ref:     header.ReportingEntityName,
		}
	}

	ordered := make([]PolicyText, len(policies))
	copy(ordered, policies)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Topic < ordered[j].Topic })

	set := PolicyNoteSet{Header: header, Notes: make([]PolicyNote, 0, len(ordered))}
	for i, p := range ordered {
		set.Notes = append(set.Notes, PolicyNote{NoteNumber: i + 1, Topic: p.Topic, Text: p.Text})
	}

	return fincore.NewResult(
		set,
		policyNotesInputs{Header: header, Policies: policies},
		fmt.Sprintf("assembled %d policy notes for %s FY%d",
			len(set.Notes), header.ReportingEntityName, header.FiscalYear),
	), nil
}
