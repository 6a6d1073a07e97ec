package model

import "github.com/shopspring/decimal"

// Payment is one sponsor line of a decision that matched the searched AFM.
type Payment struct {
	ADA     string
	Org     string
	OrgAFM  string
	Subject string
	Date    string
	Amount  decimal.Decimal
	URL     string
}

// Candidate groups the distinct receiver names seen for one AFM.
type Candidate struct {
	AFM        string
	Names      []string
	Similarity float64
}

func (c *Candidate) HasName(name string) bool {
	for _, n := range c.Names {
		if n == name {
			return true
		}
	}
	return false
}
