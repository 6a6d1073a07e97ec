package service

import (
	"context"
	"fmt"

	"github.com/hance08/findpayments/internal/config"
	"github.com/hance08/findpayments/internal/diavgeia"
	"github.com/shopspring/decimal"
)

type searchCall struct {
	Query string
	Page  int
	Size  int
}

// fakeSearcher serves canned pages keyed by page index.
type fakeSearcher struct {
	pages map[int]*diavgeia.SearchResult
	fail  map[int]error
	calls []searchCall
}

func (f *fakeSearcher) Search(_ context.Context, q string, page, size int) (*diavgeia.SearchResult, error) {
	f.calls = append(f.calls, searchCall{Query: q, Page: page, Size: size})
	if err, ok := f.fail[page]; ok {
		return nil, err
	}
	res, ok := f.pages[page]
	if !ok {
		return nil, fmt.Errorf("unexpected page %d", page)
	}
	return res, nil
}

func (f *fakeSearcher) pagesFetched() []int {
	var out []int
	for _, c := range f.calls {
		out = append(out, c.Page)
	}
	return out
}

func testConfig() *config.Config {
	cfg := config.NewDefault()
	cfg.Defaults.Timezone = "UTC"
	return cfg
}

func sponsor(afm, name, amount string) diavgeia.SponsorEntry {
	return diavgeia.SponsorEntry{
		AFMName:       &diavgeia.AFMName{AFM: afm, Name: name},
		ExpenseAmount: &diavgeia.ExpenseAmount{Amount: decimal.RequireFromString(amount), Currency: "EUR"},
	}
}

func decision(ada string, org diavgeia.Organization, sponsors ...diavgeia.SponsorEntry) diavgeia.Decision {
	return diavgeia.Decision{
		ADA:         ada,
		Subject:     "subject " + ada,
		IssueDate:   1420070400000, // 2015-01-01T00:00:00Z
		DocumentURL: "https://diavgeia.gov.gr/doc/" + ada,
		ExtraFields: &diavgeia.ExtraFieldValues{
			Org:      &org,
			Sponsors: sponsors,
		},
	}
}

func noSponsorDecision(ada string) diavgeia.Decision {
	return diavgeia.Decision{
		ADA:         ada,
		ExtraFields: &diavgeia.ExtraFieldValues{Org: &diavgeia.Organization{AFM: "997654320", Name: "ORG"}},
	}
}
