package report

import (
	"github.com/hance08/findpayments/internal/model"
	"github.com/shopspring/decimal"
)

// OrgTotal is the running sum of payments issued by one organization.
type OrgTotal struct {
	AFM   string
	Name  string
	Total decimal.Decimal
	Count int
}

// Totals accumulates payments per issuing organization, keyed by the
// organization AFM, remembering the order organizations were first seen.
type Totals struct {
	orgs  []*OrgTotal
	index map[string]*OrgTotal
	grand decimal.Decimal
	count int
}

func NewTotals() *Totals {
	return &Totals{index: make(map[string]*OrgTotal)}
}

func (t *Totals) Add(p model.Payment) {
	org, ok := t.index[p.OrgAFM]
	if !ok {
		org = &OrgTotal{AFM: p.OrgAFM}
		t.index[p.OrgAFM] = org
		t.orgs = append(t.orgs, org)
	}

	// last name wins when an organization was renamed
	org.Name = p.Org
	org.Total = org.Total.Add(p.Amount)
	org.Count++

	t.grand = t.grand.Add(p.Amount)
	t.count++
}

// Organizations returns a copy of the per-organization totals in first-seen order.
func (t *Totals) Organizations() []OrgTotal {
	out := make([]OrgTotal, 0, len(t.orgs))
	for _, o := range t.orgs {
		out = append(out, *o)
	}
	return out
}

// Organization looks up the total for one organization AFM.
func (t *Totals) Organization(afm string) (OrgTotal, bool) {
	o, ok := t.index[afm]
	if !ok {
		return OrgTotal{}, false
	}
	return *o, true
}

func (t *Totals) Grand() decimal.Decimal {
	return t.grand
}

func (t *Totals) Count() int {
	return t.count
}
