package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finance_client/internal/apperrors"
	"github.com/SscSPs/finance_client/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/finance_client/internal/core/ports/services"
	"github.com/SscSPs/finance_client/internal/dto"
	"github.com/SscSPs/finance_client/internal/state"
)

type conversionService struct {
	BaseService
	gateway  gateways.ConversionGateway
	store    *state.Store
	resolver *RateResolver
}

// NewConversionService creates a conversion service reading rates from store.
func NewConversionService(gateway gateways.ConversionGateway, store *state.Store, resolver *RateResolver) portssvc.ConversionSvcFacade {
	if resolver == nil {
		resolver = NewRateResolver("")
	}
	return &conversionService{gateway: gateway, store: store, resolver: resolver}
}

func (s *conversionService) Convert(ctx context.Context, fromID, toID int, amount float64) (*dto.ConvertSimpleResponse, error) {
	if amount <= 0 {
		return nil, apperrors.Validationf("amount must be positive")
	}
	resp, err := s.gateway.ConvertSimple(ctx, dto.ConvertSimpleRequest{
		FromCurrencyID: fromID,
		ToCurrencyID:   toID,
		Amount:         amount,
	})
	if err != nil {
		s.LogWarn(ctx, err, "Server conversion failed",
			slog.Int("from_currency_id", fromID),
			slog.Int("to_currency_id", toID),
		)
		return nil, err
	}
	return resp, nil
}

func (s *conversionService) Rate(fromCode, toCode string) dto.RateResponse {
	rate, ok := s.resolver.ResolveState(s.store.State(), fromCode, toCode)
	return dto.RateResponse{From: fromCode, To: toCode, Rate: rate, Resolved: ok}
}

func (s *conversionService) Equivalents(amount float64, fromCode string, codes []string) []dto.EquivalentResponse {
	return s.resolver.EquivalentsState(s.store.State(), amount, fromCode, codes)
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)
