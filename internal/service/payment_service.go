package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hance08/findpayments/internal/config"
	"github.com/hance08/findpayments/internal/constants"
	"github.com/hance08/findpayments/internal/diavgeia"
	"github.com/hance08/findpayments/internal/model"
	"github.com/hance08/findpayments/internal/utils"
)

type PaymentService struct {
	searcher Searcher
	loc      *time.Location
}

func NewPaymentService(searcher Searcher, cfg *config.Config) (*PaymentService, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &PaymentService{searcher: searcher, loc: loc}, nil
}

// CollectPayments returns every payment to afm issued in year.
func (ps *PaymentService) CollectPayments(ctx context.Context, afm string, year int) ([]model.Payment, error) {
	return ps.CollectFrom(ctx, afm, year, 0)
}

// CollectFrom walks the result pages starting at startPage until the
// reported total is covered. Records keep page, decision and sponsor order.
// A failed page discards everything gathered so far.
func (ps *PaymentService) CollectFrom(ctx context.Context, afm string, year, startPage int) ([]model.Payment, error) {
	afm = strings.TrimSpace(afm)
	if afm == "" {
		return nil, ErrEmptyAFM
	}

	q := diavgeia.ReceiverAFMQuery(afm, year)
	var payments []model.Payment
	for page := startPage; ; page++ {
		res, err := ps.searcher.Search(ctx, q, page, constants.PageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to collect payments for %s: %w", afm, err)
		}

		for _, dec := range res.Decisions {
			if p, ok := ps.toPayment(dec, afm); ok {
				payments = append(payments, p)
			}
		}

		slog.DebugContext(ctx, "collected page",
			"afm", afm, "page", page, "actual_size", res.Info.ActualSize, "total", res.Info.Total)

		if !res.Info.Next(constants.PageSize, page) {
			break
		}
	}

	return payments, nil
}

func (ps *PaymentService) toPayment(dec diavgeia.Decision, afm string) (model.Payment, bool) {
	if !dec.HasSponsors() {
		return model.Payment{}, false
	}

	// first match wins, further entries for the same AFM are not summed
	sp, ok := dec.SponsorFor(afm)
	if !ok {
		slog.Debug("no sponsor entry for AFM", "ada", dec.ADA, "afm", afm)
		return model.Payment{}, false
	}
	if sp.ExpenseAmount == nil {
		slog.Warn("sponsor entry without amount", "ada", dec.ADA, "afm", afm)
	}

	org := dec.Organization()
	return model.Payment{
		ADA:     dec.ADA,
		Org:     org.Name,
		OrgAFM:  org.AFM,
		Subject: dec.Subject,
		Date:    utils.FormatEpochMillis(dec.IssueDate, ps.loc),
		Amount:  sp.Amount(),
		URL:     dec.DocumentURL,
	}, true
}
