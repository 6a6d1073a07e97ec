package diavgeia

import "github.com/shopspring/decimal"

// SearchResult is one page of the advanced search endpoint.
type SearchResult struct {
	Decisions []Decision `json:"decisions"`
	Info      PageInfo   `json:"info"`
}

type PageInfo struct {
	Query      string `json:"query"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	ActualSize int    `json:"actualSize"`
	Total      int    `json:"total"`
}

// Decision is a published act. Only the fields the tool reads are mapped.
type Decision struct {
	ADA         string            `json:"ada"`
	Subject     string            `json:"subject"`
	IssueDate   int64             `json:"issueDate"` // ms since epoch
	DocumentURL string            `json:"documentUrl"`
	URL         string            `json:"url"`
	Status      string            `json:"status"`
	ExtraFields *ExtraFieldValues `json:"extraFieldValues"`
}

// ExtraFieldValues holds the type specific part of a decision. Sponsors is
// nil when the decision carries no sponsor field at all.
type ExtraFieldValues struct {
	Org      *Organization  `json:"org"`
	Sponsors []SponsorEntry `json:"sponsor"`
}

type Organization struct {
	AFM  string `json:"afm"`
	Name string `json:"name"`
}

type SponsorEntry struct {
	AFMName       *AFMName       `json:"sponsorAFMName"`
	ExpenseAmount *ExpenseAmount `json:"expenseAmount"`
}

type AFMName struct {
	AFM      string `json:"afm"`
	Name     string `json:"name"`
	NoVATOrg bool   `json:"noVATOrg"`
}

type ExpenseAmount struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// HasSponsors reports whether the sponsor field is present.
func (d *Decision) HasSponsors() bool {
	return d.ExtraFields != nil && d.ExtraFields.Sponsors != nil
}

// Organization returns the issuing organization, or an empty one when the
// decision does not name it.
func (d *Decision) Organization() Organization {
	if d.ExtraFields == nil || d.ExtraFields.Org == nil {
		return Organization{}
	}
	return *d.ExtraFields.Org
}

// SponsorFor returns the first sponsor entry paid to afm.
func (d *Decision) SponsorFor(afm string) (SponsorEntry, bool) {
	if !d.HasSponsors() {
		return SponsorEntry{}, false
	}
	for _, sp := range d.ExtraFields.Sponsors {
		if sp.AFMName != nil && sp.AFMName.AFM == afm {
			return sp, true
		}
	}
	return SponsorEntry{}, false
}

// Amount returns the expense amount, zero when the entry has none.
func (s SponsorEntry) Amount() decimal.Decimal {
	if s.ExpenseAmount == nil {
		return decimal.Zero
	}
	return s.ExpenseAmount.Amount
}

// Next reports whether another page follows this one for a fixed page size.
func (p PageInfo) Next(pageSize, page int) bool {
	if p.ActualSize == 0 {
		return false
	}
	return pageSize*page+p.ActualSize < p.Total
}
