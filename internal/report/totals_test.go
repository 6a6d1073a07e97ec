package report

import (
	"testing"

	"github.com/hance08/findpayments/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func payment(ada, org, orgAFM, amount string) model.Payment {
	return model.Payment{
		ADA:     ada,
		Org:     org,
		OrgAFM:  orgAFM,
		Subject: "subject " + ada,
		Date:    "01-01-2015",
		Amount:  decimal.RequireFromString(amount),
		URL:     "https://diavgeia.gov.gr/doc/" + ada,
	}
}

func samplePayments() []model.Payment {
	return []model.Payment{
		payment("A1", "ΔΗΜΟΣ Β", "044198763", "100.10"),
		payment("A2", "ΔΗΜΟΣ Α", "997654320", "0.20"),
		payment("A3", "ΔΗΜΟΣ Β", "044198763", "50"),
		payment("A4", "ΔΗΜΟΣ Α ΝΕΟ", "997654320", "1234.56"),
	}
}

func TestTotals_SumsPerOrganization(t *testing.T) {
	totals := NewTotals()
	payments := samplePayments()
	for _, p := range payments {
		totals.Add(p)
	}

	want := map[string]decimal.Decimal{}
	for _, p := range payments {
		want[p.OrgAFM] = want[p.OrgAFM].Add(p.Amount)
	}

	orgs := totals.Organizations()
	require.Len(t, orgs, 2)

	sum := decimal.Zero
	for _, o := range orgs {
		require.True(t, want[o.AFM].Equal(o.Total), "org %s: want %s got %s", o.AFM, want[o.AFM], o.Total)
		sum = sum.Add(o.Total)
	}
	require.True(t, sum.Equal(totals.Grand()))
	require.True(t, totals.Grand().Equal(decimal.RequireFromString("1384.86")))
	require.Equal(t, 4, totals.Count())
}

func TestTotals_FirstSeenOrder(t *testing.T) {
	totals := NewTotals()
	for _, p := range samplePayments() {
		totals.Add(p)
	}

	orgs := totals.Organizations()
	require.Equal(t, "044198763", orgs[0].AFM)
	require.Equal(t, 2, orgs[0].Count)
	require.Equal(t, "997654320", orgs[1].AFM)
	require.Equal(t, "ΔΗΜΟΣ Α ΝΕΟ", orgs[1].Name, "latest name is shown")
}

func TestTotals_Organization(t *testing.T) {
	totals := NewTotals()
	totals.Add(payment("A1", "ΔΗΜΟΣ Β", "044198763", "3"))

	org, ok := totals.Organization("044198763")
	require.True(t, ok)
	require.True(t, org.Total.Equal(decimal.NewFromInt(3)))

	_, ok = totals.Organization("missing")
	require.False(t, ok)
}

func TestTotals_Empty(t *testing.T) {
	totals := NewTotals()
	require.Empty(t, totals.Organizations())
	require.True(t, totals.Grand().IsZero())
	require.Zero(t, totals.Count())
}
