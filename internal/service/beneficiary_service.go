package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/hance08/findpayments/internal/constants"
	"github.com/hance08/findpayments/internal/diavgeia"
	"github.com/hance08/findpayments/internal/model"
)

type BeneficiaryService struct {
	searcher Searcher
}

func NewBeneficiaryService(searcher Searcher) *BeneficiaryService {
	return &BeneficiaryService{searcher: searcher}
}

// ResolveName lists the AFMs whose sponsor entries appear in decisions
// naming name as receiver, each with the distinct names recorded for it.
// Only the first page of results is inspected.
func (bs *BeneficiaryService) ResolveName(ctx context.Context, name string) ([]model.Candidate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	res, err := bs.searcher.Search(ctx, diavgeia.ReceiverNameQuery(name), 0, constants.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to search receiver name: %w", err)
	}

	if res.Info.Total > len(res.Decisions) {
		slog.WarnContext(ctx, "name search truncated to first page",
			"name", name, "returned", len(res.Decisions), "total", res.Info.Total)
	}

	return collectCandidates(name, res.Decisions), nil
}

func collectCandidates(query string, decisions []diavgeia.Decision) []model.Candidate {
	var candidates []model.Candidate
	index := make(map[string]int)

	for _, dec := range decisions {
		if !dec.HasSponsors() {
			continue
		}

		for _, sp := range dec.ExtraFields.Sponsors {
			if sp.AFMName == nil {
				slog.Debug("sponsor entry without AFM", "ada", dec.ADA)
				continue
			}

			i, ok := index[sp.AFMName.AFM]
			if !ok {
				i = len(candidates)
				index[sp.AFMName.AFM] = i
				candidates = append(candidates, model.Candidate{AFM: sp.AFMName.AFM})
			}

			if !candidates[i].HasName(sp.AFMName.Name) {
				candidates[i].Names = append(candidates[i].Names, sp.AFMName.Name)
			}
		}
	}

	for i := range candidates {
		candidates[i].Similarity = bestSimilarity(query, candidates[i].Names)
	}

	return candidates
}

func bestSimilarity(query string, names []string) float64 {
	query = strings.ToUpper(query)

	var best float64
	for _, n := range names {
		sim := matchr.JaroWinkler(query, strings.ToUpper(n), false)
		if sim > best {
			best = sim
		}
	}
	return best
}
