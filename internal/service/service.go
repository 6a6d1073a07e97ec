package service

import (
	"github.com/hance08/findpayments/internal/config"
)

type Service struct {
	Beneficiary *BeneficiaryService
	Payment     *PaymentService
	Config      *config.Config
}

func NewService(searcher Searcher, cfg *config.Config) (*Service, error) {
	payments, err := NewPaymentService(searcher, cfg)
	if err != nil {
		return nil, err
	}

	return &Service{
		Beneficiary: NewBeneficiaryService(searcher),
		Payment:     payments,
		Config:      cfg,
	}, nil
}
