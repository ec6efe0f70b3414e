package service

import (
	"context"
	"errors"

	"github.com/cafelagoa/stock-service/internal/domain/dto"
	"github.com/cafelagoa/stock-service/internal/domain/model"
	"github.com/cafelagoa/stock-service/internal/repository"
)

var (
	// ErrPriceListNotFound is returned when a client has no price list.
	ErrPriceListNotFound = errors.New("no price list for client")
	// ErrNoPriceForProduct is returned when a product has no negotiated price
	// and the price list carries no private label fallback.
	ErrNoPriceForProduct = errors.New("no price available for product")
)

// PricingService prices selections against client price lists.
type PricingService interface {
	// Quote prices a selection line by line. Line subtotals keep full
	// precision; rounding to centavos happens once per line subtotal and once
	// for the total.
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.Quote, error)
	// UpsertPriceList replaces a client's price list.
	UpsertPriceList(ctx context.Context, clientID string, req dto.UpsertPriceListRequest) (*model.PriceList, error)
	// PriceList returns a client's price list, or ErrPriceListNotFound.
	PriceList(ctx context.Context, clientID string) (*model.PriceList, error)
}

// PricingServiceImpl implements PricingService.
type PricingServiceImpl struct {
	priceLists repository.PriceListsRepositoryInterface
	products   repository.ProductsRepositoryInterface
}

// NewPricingService creates a new pricing service.
func NewPricingService(
	priceLists repository.PriceListsRepositoryInterface,
	products repository.ProductsRepositoryInterface,
) *PricingServiceImpl {
	return &PricingServiceImpl{priceLists: priceLists, products: products}
}

// Quote prices each selection line via the client's per-kg price, derived from
// the negotiated 250g package price or the private label fallback.
func (s *PricingServiceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.Quote, error) {
	priceList, err := s.priceLists.FindByClient(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if priceList == nil {
		return nil, ErrPriceListNotFound
	}

	quote := &dto.Quote{
		ClientID: req.ClientID,
		Lines:    make([]dto.QuoteLine, 0, len(req.Lines)),
	}

	var total float64
	for _, line := range req.Lines {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrProductNotFound
		}

		kg, err := line.EquivalentKg()
		if err != nil {
			return nil, err
		}

		pricePerKg, ok := priceList.PricePerKg(line.ProductID)
		if !ok {
			return nil, ErrNoPriceForProduct
		}

		subtotal := kg * pricePerKg
		total += subtotal
		quote.TotalKg += kg

		quote.Lines = append(quote.Lines, dto.QuoteLine{
			ProductID:     line.ProductID.Hex(),
			PackagingSize: line.PackagingSize,
			Quantity:      line.Quantity,
			EquivalentKg:  kg,
			PricePerKg:    pricePerKg,
			Subtotal:      model.RoundBRL(subtotal),
		})
	}

	quote.Total = model.RoundBRL(total)
	return quote, nil
}

// UpsertPriceList replaces a client's price list.
func (s *PricingServiceImpl) UpsertPriceList(ctx context.Context, clientID string, req dto.UpsertPriceListRequest) (*model.PriceList, error) {
	if clientID == "" {
		return nil, &dto.ValidationError{Field: "client_id", Message: "is required"}
	}
	for productID, price := range req.Prices250g {
		if price < 0 {
			return nil, &dto.ValidationError{Field: "prices_250g." + productID, Message: "must not be negative"}
		}
	}
	if req.PrivateLabel250g < 0 {
		return nil, &dto.ValidationError{Field: "private_label_250g", Message: "must not be negative"}
	}

	priceList := &model.PriceList{
		ClientID:         clientID,
		Prices250g:       req.Prices250g,
		PrivateLabel250g: req.PrivateLabel250g,
	}
	if priceList.Prices250g == nil {
		priceList.Prices250g = map[string]float64{}
	}

	return s.priceLists.Upsert(ctx, priceList)
}

// PriceList returns a client's price list.
func (s *PricingServiceImpl) PriceList(ctx context.Context, clientID string) (*model.PriceList, error) {
	priceList, err := s.priceLists.FindByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if priceList == nil {
		return nil, ErrPriceListNotFound
	}
	return priceList, nil
}
