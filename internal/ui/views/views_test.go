package views

import (
	"bytes"
	"testing"

	"github.com/hance08/findpayments/internal/model"
	"github.com/hance08/findpayments/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCandidateListTable(t *testing.T) {
	data := NewCandidateListView().Table([]model.Candidate{
		{AFM: "090000045", Names: []string{"ΠΑΠΑΔΟΠΟΥΛΟΣ ΓΕΩΡΓΙΟΣ", "ΠΑΠΑΔΟΠΟΥΛΟΣ Γ."}, Similarity: 1},
		{AFM: "123456783", Names: []string{"ACME"}, Similarity: 0.5},
	})

	require.Len(t, data, 3)
	require.Equal(t, []string{"AFM", "Name(s)", "Match"}, data[0])
	require.Equal(t, []string{"090000045", "ΠΑΠΑΔΟΠΟΥΛΟΣ ΓΕΩΡΓΙΟΣ, ΠΑΠΑΔΟΠΟΥΛΟΣ Γ.", "100%"}, data[1])
	require.Equal(t, "ACME", data[2][1])
	require.Equal(t, "50%", data[2][2])
}

func TestTotalsTable(t *testing.T) {
	totals := report.NewTotals()
	totals.Add(model.Payment{Org: "ΔΗΜΟΣ Β", OrgAFM: "044198763", Amount: decimal.RequireFromString("10.5")})
	totals.Add(model.Payment{Org: "ΔΗΜΟΣ Α", OrgAFM: "997654320", Amount: decimal.RequireFromString("1")})
	totals.Add(model.Payment{Org: "ΔΗΜΟΣ Β", OrgAFM: "044198763", Amount: decimal.RequireFromString("2")})

	data := NewTotalsView().Table(totals)
	require.Equal(t, [][]string{
		{"Organization", "AFM", "Payments", "Total"},
		{"ΔΗΜΟΣ Β", "044198763", "2", "12.50"},
		{"ΔΗΜΟΣ Α", "997654320", "1", "1.00"},
	}, [][]string(data))
}

func TestTotalsRenderWritesToWriter(t *testing.T) {
	totals := report.NewTotals()
	totals.Add(model.Payment{Org: "ΔΗΜΟΣ Β", OrgAFM: "044198763", Amount: decimal.RequireFromString("10.5")})
	totals.Add(model.Payment{Org: "ΔΗΜΟΣ Β", OrgAFM: "044198763", Amount: decimal.RequireFromString("2")})

	var buf bytes.Buffer
	require.NoError(t, NewTotalsView().Render(&buf, totals))

	out := buf.String()
	require.Contains(t, out, "Totals by organization")
	require.Contains(t, out, "044198763")
	require.Contains(t, out, "Total payments: 12.50 (2 payments)")
}

func TestCandidateListRenderWithoutCandidates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCandidateListView().Render(&buf, "ACME", nil))
	require.Contains(t, buf.String(), `No receivers named "ACME" found`)
}
