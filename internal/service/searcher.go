package service

import (
	"context"

	"github.com/hance08/findpayments/internal/diavgeia"
)

// Searcher is the slice of the registry API the services need.
type Searcher interface {
	Search(ctx context.Context, q string, page, size int) (*diavgeia.SearchResult, error)
}
