package diavgeia

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const sampleDecisions = `{
  "decisions": [
    {
      "ada": "ΩΛΚ4465ΦΘΘ-ΑΒΓ",
      "subject": "Πληρωμή δαπάνης",
      "issueDate": 1420070400000,
      "documentUrl": "https://diavgeia.gov.gr/doc/ΩΛΚ4465ΦΘΘ-ΑΒΓ",
      "extraFieldValues": {
        "org": {"afm": "997654320", "name": "ΔΗΜΟΣ ΑΘΗΝΑΙΩΝ"},
        "sponsor": [
          {"sponsorAFMName": {"afm": "044198763", "name": "OTHER"}, "expenseAmount": {"amount": 10, "currency": "EUR"}},
          {"sponsorAFMName": {"afm": "090000045", "name": "ACME"}, "expenseAmount": {"amount": 1234.56, "currency": "EUR"}},
          {"sponsorAFMName": {"afm": "090000045", "name": "ACME"}, "expenseAmount": {"amount": 99, "currency": "EUR"}}
        ]
      }
    },
    {
      "ada": "ΒΛΑ1465ΦΘΘ-ΧΨΩ",
      "subject": "Ανάθεση",
      "issueDate": 1420070400000,
      "documentUrl": "https://diavgeia.gov.gr/doc/ΒΛΑ1465ΦΘΘ-ΧΨΩ",
      "extraFieldValues": {"org": {"afm": "997654320", "name": "ΔΗΜΟΣ ΑΘΗΝΑΙΩΝ"}}
    },
    {
      "ada": "ΧΩΡΙΣ-ΠΕΔΙΑ",
      "subject": "Χωρίς πεδία",
      "issueDate": 1420070400000
    }
  ],
  "info": {"query": "q", "page": 0, "size": 50, "actualSize": 3, "total": 3}
}`

func TestDecodeSearchResult(t *testing.T) {
	var res SearchResult
	require.NoError(t, json.Unmarshal([]byte(sampleDecisions), &res))

	require.Len(t, res.Decisions, 3)
	require.Equal(t, 3, res.Info.ActualSize)
	require.Equal(t, 3, res.Info.Total)

	withSponsors := res.Decisions[0]
	require.True(t, withSponsors.HasSponsors())
	require.Equal(t, "ΔΗΜΟΣ ΑΘΗΝΑΙΩΝ", withSponsors.Organization().Name)

	sp, ok := withSponsors.SponsorFor("090000045")
	require.True(t, ok)
	require.True(t, sp.Amount().Equal(decimal.RequireFromString("1234.56")), "first match wins")

	_, ok = withSponsors.SponsorFor("123456783")
	require.False(t, ok)

	require.False(t, res.Decisions[1].HasSponsors())
	require.False(t, res.Decisions[2].HasSponsors())
	require.Equal(t, Organization{}, res.Decisions[2].Organization())
}

func TestSponsorEntryAmountMissing(t *testing.T) {
	require.True(t, SponsorEntry{}.Amount().IsZero())
}

func TestPageInfoNext(t *testing.T) {
	require.True(t, PageInfo{ActualSize: 50, Total: 120}.Next(50, 0))
	require.True(t, PageInfo{ActualSize: 50, Total: 120}.Next(50, 1))
	require.False(t, PageInfo{ActualSize: 20, Total: 120}.Next(50, 2))
	require.False(t, PageInfo{ActualSize: 50, Total: 50}.Next(50, 0))
	require.False(t, PageInfo{ActualSize: 0, Total: 500}.Next(50, 3))
}
